package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/plasmahub/plasma-builder-backend/internal/logger"
)

// FileStore keeps one JSON file per (name, version) under a root directory.
type FileStore struct {
	root string
	log  *logger.Logger
	mu   sync.RWMutex
}

func NewFileStore(root string, baseLog *logger.Logger) (*FileStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create store root: %w", err)
	}
	return &FileStore{
		root: root,
		log:  baseLog.With("store", "FileStore"),
	}, nil
}

func (s *FileStore) Save(ctx context.Context, name, version string, blob []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !json.Valid(blob) {
		return fmt.Errorf("blob for %s@%s is not valid JSON", name, version)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(name, version)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create design system dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o644); err != nil {
		return fmt.Errorf("write blob: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("commit blob: %w", err)
	}
	s.log.Debug("Saved design system blob", "name", name, "version", version, "bytes", len(blob))
	return nil
}

func (s *FileStore) Load(ctx context.Context, name, version string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	blob, err := os.ReadFile(s.path(name, version))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read blob: %w", err)
	}
	return blob, true, nil
}

func (s *FileStore) List(ctx context.Context) ([]Key, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []Key
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("list store root: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		versions, err := os.ReadDir(filepath.Join(s.root, entry.Name()))
		if err != nil {
			continue
		}
		for _, v := range versions {
			if v.IsDir() || !strings.HasSuffix(v.Name(), ".json") {
				continue
			}
			keys = append(keys, Key{
				Name:    entry.Name(),
				Version: strings.TrimSuffix(v.Name(), ".json"),
			})
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Name != keys[j].Name {
			return keys[i].Name < keys[j].Name
		}
		return keys[i].Version < keys[j].Version
	})
	return keys, nil
}

func (s *FileStore) Remove(ctx context.Context, name, version string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(name, version))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove blob: %w", err)
	}
	return nil
}

// path sanitizes the key segments so a crafted name cannot escape the root.
func (s *FileStore) path(name, version string) string {
	clean := func(segment string) string {
		segment = strings.ReplaceAll(segment, string(os.PathSeparator), "_")
		return strings.ReplaceAll(segment, "..", "_")
	}
	return filepath.Join(s.root, clean(name), clean(version)+".json")
}
