package pgsql

import (
	"context"
	"fmt"

	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
	portsrepo "github.com/ConversorDuo/currency_converter_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFavoriteRepository struct {
	pool *pgxpool.Pool
}

// NewPgxFavoriteRepository creates a new repository for persisted favorites.
func NewPgxFavoriteRepository(pool *pgxpool.Pool) portsrepo.FavoriteRepositoryFacade {
	return &PgxFavoriteRepository{pool: pool}
}

// LoadAll retrieves the full favorites list, most-recently-added first.
func (r *PgxFavoriteRepository) LoadAll(ctx context.Context) ([]domain.SavedConversion, error) {
	query := `
		SELECT favorite_id, amount, from_code, to_code, from_flag, to_flag
		FROM favorites
		ORDER BY position ASC;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	favorites := []domain.SavedConversion{}
	for rows.Next() {
		var fav domain.SavedConversion
		err := rows.Scan(&fav.ID, &fav.Amount, &fav.From, &fav.To, &fav.FromFlag, &fav.ToFlag)
		if err != nil {
			return nil, fmt.Errorf("failed to scan favorite row: %w", err)
		}
		favorites = append(favorites, fav)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating favorite rows: %w", err)
	}

	return favorites, nil
}

// ReplaceAll persists the full list in one transaction, position column
// preserving the list order.
func (r *PgxFavoriteRepository) ReplaceAll(ctx context.Context, favorites []domain.SavedConversion) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin favorites transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM favorites;`); err != nil {
		return fmt.Errorf("failed to clear favorites: %w", err)
	}

	insert := `
		INSERT INTO favorites (favorite_id, amount, from_code, to_code, from_flag, to_flag, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for i, fav := range favorites {
		_, err := tx.Exec(ctx, insert, fav.ID, fav.Amount, fav.From, fav.To, fav.FromFlag, fav.ToFlag, i)
		if err != nil {
			return fmt.Errorf("failed to insert favorite %s: %w", fav.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit favorites transaction: %w", err)
	}
	return nil
}
