// Package jsonfile persists favorites as a single JSON document on disk,
// the default storage backend.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
	portsrepo "github.com/ConversorDuo/currency_converter_app/internal/core/ports/repositories"
)

type FavoriteRepository struct {
	path   string
	logger *slog.Logger
	mu     sync.Mutex
}

// NewFavoriteRepository creates the file-backed favorites store at path.
func NewFavoriteRepository(path string, logger *slog.Logger) portsrepo.FavoriteRepositoryFacade {
	return &FavoriteRepository{path: path, logger: logger}
}

// LoadAll reads the stored list. A missing file means no favorites yet; a
// file that cannot be parsed is treated the same way rather than blocking
// startup.
func (r *FavoriteRepository) LoadAll(ctx context.Context) ([]domain.SavedConversion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.SavedConversion{}, nil
		}
		return nil, fmt.Errorf("failed to read favorites file %s: %w", r.path, err)
	}

	favorites := []domain.SavedConversion{}
	if err := json.Unmarshal(data, &favorites); err != nil {
		r.logger.Warn("favorites file is corrupt, starting empty",
			slog.String("path", r.path), slog.String("error", err.Error()))
		return []domain.SavedConversion{}, nil
	}

	return favorites, nil
}

// ReplaceAll writes the full list through a temp file and rename, so a crash
// mid-write never leaves a half-written document behind.
func (r *FavoriteRepository) ReplaceAll(ctx context.Context, favorites []domain.SavedConversion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.MarshalIndent(favorites, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create favorites directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "favorites-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp favorites file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write favorites: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp favorites file: %w", err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace favorites file %s: %w", r.path, err)
	}
	return nil
}
