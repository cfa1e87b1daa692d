package repository

import (
	"context"

	"layoutlens/internal/model"
)

// ProjectRepository defines data access for projects.
// No business logic here, strictly storage operations.
// Implementations must be safe for concurrent use.
type ProjectRepository interface {
	// Insert adds or overwrites the project stored under id.
	Insert(ctx context.Context, id string, p model.Project) error

	// Get returns a copy of the project stored under id, or ErrNotFound.
	Get(ctx context.Context, id string) (*model.Project, error)

	// Replace overwrites the project stored under id only if one already exists.
	// The existence check and the write happen atomically. Returns ErrNotFound
	// without modifying anything when id is absent.
	Replace(ctx context.Context, id string, p model.Project) (*model.Project, error)

	// Len reports how many projects are stored.
	Len() int
}
