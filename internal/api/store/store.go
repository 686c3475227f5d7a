package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/clientdesk/internal/api/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface implemented by the drivers.
type Store interface {
	Clients() Clients

	ApplyMigrations() error

	// Close releases the underlying database handle.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Clients interface {
	// ListClients returns every client in creation order.
	ListClients(ctx context.Context) ([]domain.Client, error)

	// GetClientBySharedKey returns ErrNotFound when no client has the key.
	GetClientBySharedKey(ctx context.Context, sharedKey string) (domain.Client, error)

	// CreateClient inserts c (id and created_at are provided by the caller).
	// Returns ErrAlreadyExists when the shared key is taken.
	CreateClient(ctx context.Context, c domain.Client) error
}
