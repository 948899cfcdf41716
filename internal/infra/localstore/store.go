// Package localstore persists the marketplace collections as a single JSON
// document on disk. All mutations rewrite the file through a clone-and-swap
// commit, serialized by one store-wide lock, which is what gives the
// transaction manager its atomicity.
package localstore

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"agriconnect/config"

	"github.com/pkg/errors"
)

// storeData is the on-disk document. The top-level keys are fixed; clients
// syncing the same document rely on them.
type storeData struct {
	Users        []*userModel        `json:"agri_users"`
	Crops        []*cropModel        `json:"agri_crops"`
	Transactions []*transactionModel `json:"agri_txs"`
}

func (d *storeData) normalize() {
	if d.Users == nil {
		d.Users = []*userModel{}
	}
	if d.Crops == nil {
		d.Crops = []*cropModel{}
	}
	if d.Transactions == nil {
		d.Transactions = []*transactionModel{}
	}
}

// seedData is the fallback document used when no file exists or the existing
// one cannot be parsed: one verified demo farmer with a single open listing.
func seedData() *storeData {
	now := time.Now()

	return &storeData{
		Users: []*userModel{
			{
				ID:        "f1",
				Name:      "Ramesh Singh",
				Phone:     "9876543210",
				Location:  "Punjab",
				Role:      "FARMER",
				Verified:  true,
				CreatedAt: now,
				UpdatedAt: now,
			},
		},
		Crops: []*cropModel{
			{
				ID:             "c1",
				FarmerID:       "f1",
				FarmerName:     "Ramesh Singh",
				FarmerPhone:    "9876543210",
				FarmerLocation: "Punjab",
				Name:           "Wheat",
				Price:          22,
				Quantity:       100,
				Unit:           "kg",
				Category:       "Grains",
				Description:    "Freshly harvested wheat",
				Verified:       true,
				CreatedAt:      now,
			},
		},
		Transactions: []*transactionModel{},
	}
}

// accessor is the data access contract shared by the store itself and a
// commit in progress. Repositories work against this, so the same
// implementations serve both standalone calls and calls inside Execute.
type accessor interface {
	read(fn func(data *storeData) error) error
	write(fn func(data *storeData) error) error
}

// Store owns the document and the lock that serializes commits.
type Store struct {
	path   string
	logger *slog.Logger

	mu   sync.RWMutex
	data *storeData
}

// NewStore loads the document at cfg.Store.Path, falling back to the seed
// document when the file is absent or malformed. An empty path keeps the
// store memory-only.
func NewStore(cfg *config.Config, logger *slog.Logger) (*Store, error) {
	store := &Store{
		path:   cfg.Store.Path,
		logger: logger,
	}

	data, err := store.load()
	if err != nil {
		return nil, err
	}
	store.data = data

	if store.path != "" {
		if err := store.persist(data); err != nil {
			return nil, err
		}
	}

	return store, nil
}

func (s *Store) load() (*storeData, error) {
	if s.path == "" {
		return seedData(), nil
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return seedData(), nil
		}

		return nil, errors.Wrap(err, "failed to read store file")
	}

	data := &storeData{}
	if err := json.Unmarshal(raw, data); err != nil {
		s.logger.Warn("store file malformed, reseeding",
			slog.String("path", s.path),
			slog.Any("error", err),
		)

		return seedData(), nil
	}
	data.normalize()

	return data, nil
}

// persist writes the document atomically via a temp file rename. Callers must
// hold the write lock.
func (s *Store) persist(data *storeData) error {
	if s.path == "" {
		return nil
	}

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode store document")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create store directory")
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return errors.Wrap(err, "failed to write store file")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrap(err, "failed to swap store file")
	}

	return nil
}

func (s *Store) cloneData() (*storeData, error) {
	raw, err := json.Marshal(s.data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to clone store document")
	}

	clone := &storeData{}
	if err := json.Unmarshal(raw, clone); err != nil {
		return nil, errors.Wrap(err, "failed to clone store document")
	}
	clone.normalize()

	return clone, nil
}

func (s *Store) read(fn func(data *storeData) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(s.data)
}

// write applies fn to a clone of the document and swaps it in only after the
// new version is on disk. A failed fn or a failed persist leaves the current
// document untouched.
func (s *Store) write(fn func(data *storeData) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone, err := s.cloneData()
	if err != nil {
		return err
	}

	if err := fn(clone); err != nil {
		return err
	}

	if err := s.persist(clone); err != nil {
		return err
	}
	s.data = clone

	return nil
}
