package store

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/plasmahub/plasma-builder-backend/internal/logger"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	fs, err := NewFileStore(t.TempDir(), logger.NewNop())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return fs
}

func TestFileStoreRoundTrip(t *testing.T) {
	fs := newTestStore(t)
	ctx := context.Background()
	blob := []byte(`{"designSystem":{"name":"plasma_b2c"}}`)

	if err := fs.Save(ctx, "plasma_b2c", "0.1.0", blob); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, found, err := fs.Load(ctx, "plasma_b2c", "0.1.0")
	if err != nil || !found {
		t.Fatalf("Load: found=%v err=%v", found, err)
	}
	if string(got) != string(blob) {
		t.Errorf("Load = %q", got)
	}
}

func TestFileStoreMiss(t *testing.T) {
	fs := newTestStore(t)
	_, found, err := fs.Load(context.Background(), "nope", "1.0.0")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if found {
		t.Error("missing blob reported found")
	}
}

func TestFileStoreRejectsInvalidJSON(t *testing.T) {
	fs := newTestStore(t)
	if err := fs.Save(context.Background(), "a", "1", []byte("{not json")); err == nil {
		t.Error("invalid JSON accepted")
	}
}

func TestFileStoreOverwrite(t *testing.T) {
	fs := newTestStore(t)
	ctx := context.Background()
	if err := fs.Save(ctx, "a", "1", []byte(`{"v":1}`)); err != nil {
		t.Fatal(err)
	}
	if err := fs.Save(ctx, "a", "1", []byte(`{"v":2}`)); err != nil {
		t.Fatal(err)
	}
	got, _, _ := fs.Load(ctx, "a", "1")
	if string(got) != `{"v":2}` {
		t.Errorf("Load after overwrite = %q", got)
	}
}

func TestFileStoreListSorted(t *testing.T) {
	fs := newTestStore(t)
	ctx := context.Background()
	for _, k := range []Key{
		{Name: "beta", Version: "2.0.0"},
		{Name: "alpha", Version: "1.1.0"},
		{Name: "alpha", Version: "1.0.0"},
	} {
		if err := fs.Save(ctx, k.Name, k.Version, []byte(`{}`)); err != nil {
			t.Fatal(err)
		}
	}
	keys, err := fs.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []Key{
		{Name: "alpha", Version: "1.0.0"},
		{Name: "alpha", Version: "1.1.0"},
		{Name: "beta", Version: "2.0.0"},
	}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("List = %v, want %v", keys, want)
	}
}

func TestFileStoreRemove(t *testing.T) {
	fs := newTestStore(t)
	ctx := context.Background()
	if err := fs.Save(ctx, "a", "1", []byte(`{}`)); err != nil {
		t.Fatal(err)
	}
	if err := fs.Remove(ctx, "a", "1"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, found, _ := fs.Load(ctx, "a", "1"); found {
		t.Error("removed blob still loads")
	}
	// removing again is fine
	if err := fs.Remove(ctx, "a", "1"); err != nil {
		t.Errorf("second Remove: %v", err)
	}
}

func TestFileStorePathEscape(t *testing.T) {
	root := t.TempDir()
	fs, err := NewFileStore(root, logger.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	escape := ".." + string(os.PathSeparator) + "escape"
	if err := fs.Save(context.Background(), escape, "1", []byte(`{}`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(root), "escape")); err == nil {
		t.Error("crafted name escaped the store root")
	}
}
