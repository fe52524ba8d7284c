package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pocketprep/pocketprep/internal/common"
	"github.com/pocketprep/pocketprep/internal/model"
)

// CreateList persists a list together with any items it already carries.
func (s *SQLiteStore) CreateList(ctx context.Context, list *model.PackingList) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateList(list); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO lists (id, name, icon, color_hex, is_template, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		list.ID, list.Name, list.Icon, list.ColorHex, list.IsTemplate, list.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert list: %w", err)
	}

	for i := range list.Items {
		if err := insertItemTx(ctx, tx, &list.Items[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit list creation: %w", err)
	}
	return nil
}

// GetList returns a single list with its items loaded.
func (s *SQLiteStore) GetList(ctx context.Context, id string) (*model.PackingList, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, icon, color_hex, is_template, created_at
		FROM lists WHERE id = ?`, id)

	list, err := scanList(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: list %s", common.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get list: %w", err)
	}

	items, err := s.itemsForList(ctx, list.ID)
	if err != nil {
		return nil, err
	}
	list.Items = items

	return list, nil
}

// GetLists returns all non-template lists, newest first, with items loaded.
func (s *SQLiteStore) GetLists(ctx context.Context) ([]model.PackingList, error) {
	return s.queryLists(ctx, false)
}

// GetTemplates returns all template lists, newest first, with items loaded.
func (s *SQLiteStore) GetTemplates(ctx context.Context) ([]model.PackingList, error) {
	return s.queryLists(ctx, true)
}

func (s *SQLiteStore) queryLists(ctx context.Context, templates bool) ([]model.PackingList, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, icon, color_hex, is_template, created_at
		FROM lists WHERE is_template = ?
		ORDER BY created_at DESC`, templates)
	if err != nil {
		return nil, fmt.Errorf("failed to query lists: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var lists []model.PackingList
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan list: %w", err)
		}
		lists = append(lists, *list)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lists: %w", err)
	}

	for i := range lists {
		items, err := s.itemsForList(ctx, lists[i].ID)
		if err != nil {
			return nil, err
		}
		lists[i].Items = items
	}

	return lists, nil
}

// UpdateList updates a list's display fields. Items are managed through the
// item operations, not here.
func (s *SQLiteStore) UpdateList(ctx context.Context, list *model.PackingList) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateList(list); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE lists SET name = ?, icon = ?, color_hex = ?, is_template = ?
		WHERE id = ?`,
		list.Name, list.Icon, list.ColorHex, list.IsTemplate, list.ID)
	if err != nil {
		return fmt.Errorf("failed to update list: %w", err)
	}

	return requireRowAffected(result, "list", list.ID)
}

// DeleteList removes a list. Its items go with it via the cascade.
func (s *SQLiteStore) DeleteList(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, "DELETE FROM lists WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
	}

	return requireRowAffected(result, "list", id)
}

// ResetList marks every item in the list as unpacked.
func (s *SQLiteStore) ResetList(ctx context.Context, listID string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(listID, "listID"); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx,
		"UPDATE items SET packed = 0 WHERE list_id = ?", listID); err != nil {
		return fmt.Errorf("failed to reset list: %w", err)
	}
	return nil
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanList(row scanner) (*model.PackingList, error) {
	var list model.PackingList
	if err := row.Scan(&list.ID, &list.Name, &list.Icon, &list.ColorHex,
		&list.IsTemplate, &list.CreatedAt); err != nil {
		return nil, err
	}
	return &list, nil
}

func requireRowAffected(result sql.Result, kind, id string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s %s", common.ErrNotFound, kind, id)
	}
	return nil
}
