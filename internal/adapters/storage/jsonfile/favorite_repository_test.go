package jsonfile_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/ConversorDuo/currency_converter_app/internal/adapters/storage/jsonfile"
	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAll_MissingFileIsEmptyList(t *testing.T) {
	repo := jsonfile.NewFavoriteRepository(filepath.Join(t.TempDir(), "favorites.json"), slog.Default())

	favorites, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestLoadAll_CorruptFileIsEmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repo := jsonfile.NewFavoriteRepository(path, slog.Default())

	favorites, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestReplaceAll_RoundTripPreservesOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")
	repo := jsonfile.NewFavoriteRepository(path, slog.Default())
	ctx := context.Background()

	saved := []domain.SavedConversion{
		{ID: "b", Amount: 20, From: "USD", To: "GBP", FromFlag: "🇺🇸", ToFlag: "🇬🇧"},
		{ID: "a", Amount: 10, From: "USD", To: "EUR", FromFlag: "🇺🇸", ToFlag: "🇪🇺"},
	}
	require.NoError(t, repo.ReplaceAll(ctx, saved))

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestReplaceAll_OverwritesPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")
	repo := jsonfile.NewFavoriteRepository(path, slog.Default())
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []domain.SavedConversion{{ID: "a"}, {ID: "b"}}))
	require.NoError(t, repo.ReplaceAll(ctx, []domain.SavedConversion{{ID: "b"}}))

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "b", loaded[0].ID)
}

func TestReplaceAll_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "favorites.json")
	repo := jsonfile.NewFavoriteRepository(path, slog.Default())

	require.NoError(t, repo.ReplaceAll(context.Background(), []domain.SavedConversion{{ID: "a"}}))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
