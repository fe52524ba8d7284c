package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pocketprep/pocketprep/internal/common"
	"github.com/pocketprep/pocketprep/internal/model"
)

// AddItem persists a single item into its list.
func (s *SQLiteStore) AddItem(ctx context.Context, item *model.Item) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateItem(item); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := insertItemTx(ctx, tx, item); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit item insert: %w", err)
	}
	return nil
}

func insertItemTx(ctx context.Context, tx *sql.Tx, item *model.Item) error {
	if err := validateItem(item); err != nil {
		return err
	}

	_, err := tx.ExecContext(ctx, `
		INSERT INTO items (id, list_id, name, icon, category, notes, packed, times_used, last_packed_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.ListID, item.Name, item.Icon, item.Category, item.Notes,
		item.Packed, item.TimesUsed, item.LastPackedAt, item.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

// GetItem returns a single item by ID.
func (s *SQLiteStore) GetItem(ctx context.Context, id string) (*model.Item, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, list_id, name, icon, category, notes, packed, times_used, last_packed_at, created_at
		FROM items WHERE id = ?`, id)

	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: item %s", common.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

// UpdateItem updates an item's editable fields.
func (s *SQLiteStore) UpdateItem(ctx context.Context, item *model.Item) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateItem(item); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE items SET name = ?, icon = ?, category = ?, notes = ?, packed = ?
		WHERE id = ?`,
		item.Name, item.Icon, item.Category, item.Notes, item.Packed, item.ID)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	return requireRowAffected(result, "item", item.ID)
}

// ToggleItem flips an item's packed flag. Packing an item bumps its usage
// count and stamps the packing time; unpacking leaves history untouched.
func (s *SQLiteStore) ToggleItem(ctx context.Context, id string) (*model.Item, error) {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Packed = !item.Packed
	if item.Packed {
		item.TimesUsed++
		now := time.Now()
		item.LastPackedAt = &now
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE items SET packed = ?, times_used = ?, last_packed_at = ?
		WHERE id = ?`,
		item.Packed, item.TimesUsed, item.LastPackedAt, item.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle item: %w", err)
	}

	return item, nil
}

// DeleteItem removes a single item.
func (s *SQLiteStore) DeleteItem(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	return requireRowAffected(result, "item", id)
}

func (s *SQLiteStore) itemsForList(ctx context.Context, listID string) ([]model.Item, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, list_id, name, icon, category, notes, packed, times_used, last_packed_at, created_at
		FROM items WHERE list_id = ?
		ORDER BY created_at ASC`, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}
	return items, nil
}

func scanItem(row scanner) (*model.Item, error) {
	var item model.Item
	var lastPacked sql.NullTime
	if err := row.Scan(&item.ID, &item.ListID, &item.Name, &item.Icon,
		&item.Category, &item.Notes, &item.Packed, &item.TimesUsed,
		&lastPacked, &item.CreatedAt); err != nil {
		return nil, err
	}
	if lastPacked.Valid {
		item.LastPackedAt = &lastPacked.Time
	}
	return &item, nil
}
