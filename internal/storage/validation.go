package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pocketprep/pocketprep/internal/model"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
	ErrInvalidList  = errors.New("invalid packing list")
	ErrInvalidItem  = errors.New("invalid item")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateList validates a packing list.
func validateList(list *model.PackingList) error {
	if list == nil {
		return fmt.Errorf("%w: list", ErrNilParameter)
	}
	if list.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidList)
	}
	if strings.TrimSpace(list.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidList)
	}
	return nil
}

// validateItem validates an item.
func validateItem(item *model.Item) error {
	if item == nil {
		return fmt.Errorf("%w: item", ErrNilParameter)
	}
	if item.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidItem)
	}
	if item.ListID == "" {
		return fmt.Errorf("%w: missing list ID", ErrInvalidItem)
	}
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidItem)
	}
	return nil
}
