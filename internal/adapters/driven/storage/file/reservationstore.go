package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/ports/driven"
)

// Ensure ReservationStore implements the interface.
var _ driven.ReservationStore = (*ReservationStore)(nil)

// SnapshotFile is the name of the snapshot inside the data directory.
const SnapshotFile = "reservations.json"

// ErrCorruptSnapshot indicates the snapshot file exists but is not a JSON array of reservations.
var ErrCorruptSnapshot = errors.New("corrupt reservation snapshot")

// ReservationStore keeps reservations in a single JSON file.
type ReservationStore struct {
	mu   sync.Mutex
	path string
}

// NewReservationStore creates a store writing to dataDir/reservations.json.
// If dataDir is empty, defaults to ~/.foodiespot/data.
func NewReservationStore(dataDir string) (*ReservationStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".foodiespot", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &ReservationStore{path: filepath.Join(dataDir, SnapshotFile)}, nil
}

// Load reads the snapshot. A missing or blank file yields no reservations
// and leaves an empty array on disk.
func (s *ReservationStore) Load(_ context.Context) ([]domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		empty := []domain.Reservation{}
		if err := s.write(empty); err != nil {
			return nil, err
		}
		return empty, nil
	}

	var reservations []domain.Reservation
	if err := json.Unmarshal(data, &reservations); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptSnapshot, s.path, err)
	}
	if reservations == nil {
		reservations = []domain.Reservation{}
	}
	return reservations, nil
}

// Save replaces the snapshot with reservations.
func (s *ReservationStore) Save(ctx context.Context, reservations []domain.Reservation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if reservations == nil {
		reservations = []domain.Reservation{}
	}
	return s.write(reservations)
}

// Location returns the snapshot path.
func (s *ReservationStore) Location() string {
	return s.path
}

// write encodes reservations and swaps them into place (caller must hold lock).
func (s *ReservationStore) write(reservations []domain.Reservation) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(reservations); err != nil {
		return fmt.Errorf("encoding reservations: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".reservations-*.json")
	if err != nil {
		return fmt.Errorf("creating temp snapshot: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp snapshot: %w", err)
	}
	if err := os.Chmod(tmpName, 0600); err != nil {
		return fmt.Errorf("setting snapshot permissions: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}
