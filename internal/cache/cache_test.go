package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/plasmahub/plasma-builder-backend/internal/logger"
)

type fakeRedis struct {
	mu     sync.Mutex
	values map[string][]byte
	gets   int
	sets   int
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: make(map[string][]byte)}
}

func (f *fakeRedis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *fakeRedis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets++
	f.values[key] = value
	return nil
}

func (f *fakeRedis) Del(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, key)
	return nil
}

func (f *fakeRedis) Purge(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = make(map[string][]byte)
	return nil
}

func TestExportCacheBuildOnce(t *testing.T) {
	c := NewExportCache(logger.NewNop(), 8, time.Minute, nil)
	var builds int
	build := func(context.Context) ([]byte, error) {
		builds++
		return []byte("payload"), nil
	}

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		blob, err := c.GetOrBuild(ctx, "k", build)
		if err != nil {
			t.Fatalf("GetOrBuild: %v", err)
		}
		if string(blob) != "payload" {
			t.Fatalf("blob = %q", blob)
		}
	}
	if builds != 1 {
		t.Errorf("builds = %d, want 1", builds)
	}
}

func TestExportCacheBuildError(t *testing.T) {
	c := NewExportCache(logger.NewNop(), 8, time.Minute, nil)
	wantErr := errors.New("db down")
	_, err := c.GetOrBuild(context.Background(), "k", func(context.Context) ([]byte, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v", err)
	}
	// a failed build must not poison the key
	blob, err := c.GetOrBuild(context.Background(), "k", func(context.Context) ([]byte, error) {
		return []byte("ok"), nil
	})
	if err != nil || string(blob) != "ok" {
		t.Errorf("recovery: blob=%q err=%v", blob, err)
	}
}

func TestExportCacheInvalidate(t *testing.T) {
	c := NewExportCache(logger.NewNop(), 8, time.Minute, nil)
	ctx := context.Background()
	var builds int
	build := func(context.Context) ([]byte, error) {
		builds++
		return []byte(fmt.Sprintf("v%d", builds)), nil
	}

	if _, err := c.GetOrBuild(ctx, "k", build); err != nil {
		t.Fatal(err)
	}
	c.Invalidate(ctx, "k")
	blob, err := c.GetOrBuild(ctx, "k", build)
	if err != nil {
		t.Fatal(err)
	}
	if string(blob) != "v2" {
		t.Errorf("blob after invalidate = %q", blob)
	}
}

func TestExportCacheClear(t *testing.T) {
	redis := newFakeRedis()
	c := NewExportCache(logger.NewNop(), 8, time.Minute, redis)
	ctx := context.Background()
	build := func(context.Context) ([]byte, error) { return []byte("x"), nil }

	if _, err := c.GetOrBuild(ctx, "a", build); err != nil {
		t.Fatal(err)
	}
	if _, err := c.GetOrBuild(ctx, "b", build); err != nil {
		t.Fatal(err)
	}
	c.Clear(ctx)
	if len(redis.values) != 0 {
		t.Errorf("redis layer not purged: %v", redis.values)
	}
}

func TestExportCacheRedisLayering(t *testing.T) {
	redis := newFakeRedis()
	ctx := context.Background()
	build := func(context.Context) ([]byte, error) { return []byte("shared"), nil }

	first := NewExportCache(logger.NewNop(), 8, time.Minute, redis)
	if _, err := first.GetOrBuild(ctx, "k", build); err != nil {
		t.Fatal(err)
	}
	if redis.sets != 1 {
		t.Fatalf("redis sets = %d, want 1", redis.sets)
	}

	// a second instance with a cold local cache hits the shared layer, not
	// the builder
	second := NewExportCache(logger.NewNop(), 8, time.Minute, redis)
	blob, err := second.GetOrBuild(ctx, "k", func(context.Context) ([]byte, error) {
		t.Fatal("builder called despite shared-layer hit")
		return nil, nil
	})
	if err != nil || string(blob) != "shared" {
		t.Fatalf("blob=%q err=%v", blob, err)
	}
}

func TestExportCacheSingleFlight(t *testing.T) {
	c := NewExportCache(logger.NewNop(), 8, time.Minute, nil)
	ctx := context.Background()

	var builds atomic.Int32
	release := make(chan struct{})
	build := func(context.Context) ([]byte, error) {
		builds.Add(1)
		<-release
		return []byte("x"), nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.GetOrBuild(ctx, "k", build); err != nil {
				t.Errorf("GetOrBuild: %v", err)
			}
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := builds.Load(); got != 1 {
		t.Errorf("builds = %d, want 1", got)
	}
}

func TestExportCacheTTLExpiry(t *testing.T) {
	c := NewExportCache(logger.NewNop(), 8, 30*time.Millisecond, nil)
	ctx := context.Background()
	var builds int
	build := func(context.Context) ([]byte, error) {
		builds++
		return []byte("x"), nil
	}

	if _, err := c.GetOrBuild(ctx, "k", build); err != nil {
		t.Fatal(err)
	}
	time.Sleep(80 * time.Millisecond)
	if _, err := c.GetOrBuild(ctx, "k", build); err != nil {
		t.Fatal(err)
	}
	if builds != 2 {
		t.Errorf("builds = %d, want rebuild after expiry", builds)
	}
}
