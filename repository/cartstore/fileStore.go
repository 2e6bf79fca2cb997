package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vipinrawat0001/closet-carousel-commerce/model"
)

// FileStore keeps one JSON document per session under a data directory.
// It is the default adapter: no TTL, survives restarts, last write wins.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(sessionID string) string {
	// Session IDs are UUIDs minted by our middleware; anything else is
	// flattened so a crafted ID cannot escape the data dir.
	return filepath.Join(s.dir, filepath.Base(sessionID)+".json")
}

func (s *FileStore) Load(ctx context.Context, sessionID string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var snap Snapshot
	data, err := os.ReadFile(s.path(sessionID))
	if errors.Is(err, fs.ErrNotExist) {
		return snap, nil
	}
	if err != nil {
		return snap, err
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		// A corrupt file must not wedge the session; start clean.
		return Snapshot{}, nil
	}
	return snap, nil
}

func (s *FileStore) SaveBuy(ctx context.Context, sessionID string, lines []model.BuyLine) error {
	return s.update(sessionID, func(snap *Snapshot) { snap.Buy = lines })
}

func (s *FileStore) SaveRent(ctx context.Context, sessionID string, lines []model.RentLine) error {
	return s.update(sessionID, func(snap *Snapshot) { snap.Rent = lines })
}

func (s *FileStore) SaveMode(ctx context.Context, sessionID string, mode model.ShoppingMode) error {
	return s.update(sessionID, func(snap *Snapshot) { snap.Mode = string(mode) })
}

func (s *FileStore) update(sessionID string, apply func(*Snapshot)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var snap Snapshot
	if data, err := os.ReadFile(s.path(sessionID)); err == nil {
		_ = json.Unmarshal(data, &snap)
	}
	apply(&snap)

	data, err := json.Marshal(&snap)
	if err != nil {
		return err
	}
	tmp := s.path(sessionID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(sessionID))
}
