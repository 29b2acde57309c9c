package rag

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// ErrNoSnapshot is returned by Load when no index has been persisted.
var ErrNoSnapshot = errors.New("no index snapshot persisted")

// IndexStore is the persistence capability injected into the pipeline.
// Exactly one index lives in the store at a time: Clear wipes the previous
// one before a rebuild.
type IndexStore interface {
	Clear() error
	Save(ix *Index) error
	Load() (*Index, error)
}

const snapshotFileName = "index.json"

// FileStore persists the index snapshot as JSON under a fixed directory.
type FileStore struct {
	Dir string
}

var _ IndexStore = &FileStore{}

func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = "./vector_store"
	}
	return &FileStore{Dir: dir}
}

func (s *FileStore) Clear() error {
	return os.RemoveAll(s.Dir)
}

func (s *FileStore) Save(ix *Index) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return err
	}

	data, err := json.Marshal(ix.Snapshot())
	if err != nil {
		return err
	}

	// Write-then-rename keeps a reader from seeing a half-written snapshot.
	tmp := filepath.Join(s.Dir, snapshotFileName+".tmp")
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, filepath.Join(s.Dir, snapshotFileName))
}

func (s *FileStore) Load() (*Index, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir, snapshotFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSnapshot
		}
		return nil, err
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return FromSnapshot(&snap), nil
}

// MemoryStore keeps the snapshot in memory. Used in tests.
type MemoryStore struct {
	snap *Snapshot
}

var _ IndexStore = &MemoryStore{}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Clear() error {
	s.snap = nil
	return nil
}

func (s *MemoryStore) Save(ix *Index) error {
	s.snap = ix.Snapshot()
	return nil
}

func (s *MemoryStore) Load() (*Index, error) {
	if s.snap == nil {
		return nil, ErrNoSnapshot
	}
	return FromSnapshot(s.snap), nil
}
