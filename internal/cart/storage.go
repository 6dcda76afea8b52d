package cart

import (
	"encoding/json"
	"os"
	"time"

	"github.com/Gusmack1/charlesmackaybooks-order-service/internal/domain"
)

// Snapshot is the full cart state written after every mutation.
type Snapshot struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Items       []domain.CartItem `json:"items"`
}

// Storage is the durable client-side store the cart persists through.
type Storage interface {
	Save(snap Snapshot) error
	Load() (Snapshot, error)
}

// FileStorage keeps the snapshot as a JSON file.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (f *FileStorage) Save(snap Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o644)
}

func (f *FileStorage) Load() (Snapshot, error) {
	var snap Snapshot
	data, err := os.ReadFile(f.path)
	if err != nil {
		return snap, err
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}
