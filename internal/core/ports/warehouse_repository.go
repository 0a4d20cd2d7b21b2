// Package ports defines repository interfaces for the allocation domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"allocation/internal/core/domain/model/kernel"
	"allocation/internal/core/domain/model/warehouse"
)

// WarehouseRepository defines the persistence contract for warehouse
// aggregates. Warehouses are created by external admin workflows; the
// allocation core only reads them.
type WarehouseRepository interface {
	// Add persists a new warehouse aggregate to storage.
	Add(ctx context.Context, warehouse *warehouse.Warehouse) error

	// Get retrieves a warehouse by its unique identifier.
	// Returns an errs.ObjectNotFoundError when the warehouse does not exist.
	Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error)

	// GetAll retrieves every warehouse, ordered by name, for the
	// multi-warehouse orchestration run.
	GetAll(ctx context.Context) ([]*warehouse.Warehouse, error)
}
