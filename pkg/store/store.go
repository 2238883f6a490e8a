// Package store persists walk artifacts: the precomputed base-12 digit
// sequence of each data source together with its display metadata. The
// HTTP API serves these documents; points are derived on demand.
package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no walk exists under the requested ID.
var ErrNotFound = errors.New("walk not found")

// Walk is one persisted walk artifact.
type Walk struct {
	ID          string    `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Category    string    `bson:"category" json:"category"`
	Subcategory string    `bson:"subcategory" json:"subcategory"`
	Mapping     string    `bson:"mapping" json:"mapping"`
	URL         string    `bson:"url,omitempty" json:"url,omitempty"`
	Base12      []uint8   `bson:"base12" json:"base12"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// Store is the walk artifact storage interface.
type Store interface {
	// Put inserts or replaces a walk by ID.
	Put(ctx context.Context, w Walk) error

	// Get returns the walk with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (Walk, error)

	// List returns all walks ordered by category then ID.
	List(ctx context.Context) ([]Walk, error)

	// Delete removes a walk. Deleting a missing ID returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
