package repositories

import (
	"context"
	"strings"
)

// ===========================================================================
// Repository base types
// Shared by all repositories
// ===========================================================================

// FindOptions query options for list methods
type FindOptions struct {
	// Offset start position (pagination)
	Offset int

	// Limit max records, 0 means no limit
	Limit int

	// OrderBy sort column
	OrderBy string

	// OrderDir "asc" or "desc"
	OrderDir string
}

// SetDefaults fills in the default ordering (newest id first)
func (o *FindOptions) SetDefaults() {
	if o.OrderBy == "" {
		o.OrderBy = "id"
	}
	if o.OrderDir == "" {
		o.OrderDir = "desc"
	}
}

// GetOrderClause returns the ORDER BY clause
func (o *FindOptions) GetOrderClause() string {
	dir := strings.ToLower(o.OrderDir)
	if dir != "asc" && dir != "desc" {
		dir = "desc"
	}
	return o.OrderBy + " " + dir
}

// ===========================================================================
// Generic Repository Interface
// ===========================================================================

// Repository basic CRUD shared by the catalog repositories
type Repository[T any] interface {
	// FindByID finds a record by ID
	FindByID(ctx context.Context, id uint) (*T, error)

	// Create inserts a new record
	Create(ctx context.Context, entity *T) error

	// Update saves all fields of the record
	Update(ctx context.Context, entity *T) error

	// Delete hard deletes the record
	Delete(ctx context.Context, id uint) error
}
