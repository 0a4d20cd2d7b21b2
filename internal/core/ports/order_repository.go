package ports

import (
	"context"

	"allocation/internal/core/domain/model/kernel"
	"allocation/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetPendingByWarehouse retrieves a warehouse's orders in pending
	// status, ordered by creation date ascending then priority ascending.
	// This fetch order is the stable-sort tie-break for equal allocation
	// scores.
	GetPendingByWarehouse(ctx context.Context, warehouseID kernel.UUID) ([]*order.Order, error)
}
