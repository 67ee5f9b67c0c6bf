package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/rosterpick/internal/models"
)

// RosterRepo handles all roster-related database operations.
type RosterRepo struct {
	db *sql.DB
}

// NewRosterRepo creates a new RosterRepo wrapping the given database connection.
func NewRosterRepo(db *sql.DB) *RosterRepo {
	return &RosterRepo{db: db}
}

// ListItems returns every roster item in position order
func (r *RosterRepo) ListItems(ctx context.Context) ([]models.Item, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM roster_items ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query roster items: %w", err)
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.Name); err != nil {
			return nil, fmt.Errorf("failed to scan roster item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate roster items: %w", err)
	}
	return items, nil
}

// ReplaceItems swaps the stored roster for items in a single transaction.
// Each item's position is its index in the slice.
func (r *RosterRepo) ReplaceItems(ctx context.Context, items []models.Item) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM roster_items`); err != nil {
		return fmt.Errorf("failed to clear roster items: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO roster_items (id, name, position) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for pos, item := range items {
		if _, err := stmt.ExecContext(ctx, item.ID, item.Name, pos); err != nil {
			return fmt.Errorf("failed to insert roster item %d: %w", item.ID, err)
		}
	}

	return tx.Commit()
}

// Count returns the number of stored roster items
func (r *RosterRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM roster_items`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
