// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/pocketprep/pocketprep/internal/model"
)

// Store defines the contract for the persistence layer.
type Store interface {
	// List operations
	CreateList(ctx context.Context, list *model.PackingList) error
	GetList(ctx context.Context, id string) (*model.PackingList, error)
	GetLists(ctx context.Context) ([]model.PackingList, error)
	GetTemplates(ctx context.Context) ([]model.PackingList, error)
	UpdateList(ctx context.Context, list *model.PackingList) error
	DeleteList(ctx context.Context, id string) error
	ResetList(ctx context.Context, listID string) error

	// Item operations
	AddItem(ctx context.Context, item *model.Item) error
	GetItem(ctx context.Context, id string) (*model.Item, error)
	UpdateItem(ctx context.Context, item *model.Item) error
	ToggleItem(ctx context.Context, id string) (*model.Item, error)
	DeleteItem(ctx context.Context, id string) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
