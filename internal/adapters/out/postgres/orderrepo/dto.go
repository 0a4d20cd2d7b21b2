// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"allocation/internal/core/domain/model/kernel"
	"allocation/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The status is stored as its lowercase string form, and the composite index
// on (warehouse_id, status) serves the pending-orders fetch of each cycle.
type OrderDTO struct {
	ID               uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Number           string      `gorm:"type:varchar(64);uniqueIndex;not null"`
	CustomerName     string      `gorm:"type:varchar(255);not null"`
	CustomerAddress  string      `gorm:"type:text"`
	CustomerLocation GeoPointDTO `gorm:"embedded;embeddedPrefix:customer_location_"`
	WarehouseID      uuid.UUID   `gorm:"type:uuid;index:idx_orders_warehouse_status"`
	WeightKg         float64     `gorm:"type:decimal(8,2)"`
	Priority         int         `gorm:"not null"`
	Status           string      `gorm:"type:varchar(16);index:idx_orders_warehouse_status"`
	AssignedAgentID  *uuid.UUID  `gorm:"type:uuid;index"`
	CreatedDate      time.Time   `gorm:"type:timestamptz;not null"`
	DeliveryDate     *time.Time  `gorm:"type:timestamptz"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// GeoPointDTO represents the embedded delivery coordinates within the order
// table, at the domain's six decimal place precision.
type GeoPointDTO struct {
	Latitude  float64 `gorm:"type:decimal(9,6)"`
	Longitude float64 `gorm:"type:decimal(9,6)"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	var agentID *uuid.UUID
	if id := o.AssignedAgent(); id != nil {
		raw := id.Bytes()
		agentID = &raw
	}

	return OrderDTO{
		ID:              o.ID().Bytes(),
		Number:          o.Number(),
		CustomerName:    o.CustomerName(),
		CustomerAddress: o.CustomerAddress(),
		CustomerLocation: GeoPointDTO{
			Latitude:  o.CustomerLocation().Latitude(),
			Longitude: o.CustomerLocation().Longitude(),
		},
		WarehouseID:     o.WarehouseID().Bytes(),
		WeightKg:        o.WeightKg(),
		Priority:        o.Priority(),
		Status:          o.Status().String(),
		AssignedAgentID: agentID,
		CreatedDate:     o.CreatedDate(),
		DeliveryDate:    o.DeliveryDate(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and agent assignment
// using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return nil, err
	}

	var agentID *kernel.UUID
	if dto.AssignedAgentID != nil {
		aID, agentErr := kernel.UUIDFromBytes((*dto.AssignedAgentID)[:])
		if agentErr != nil {
			return nil, agentErr
		}

		agentID = &aID
	}

	location, err := kernel.NewGeoPoint(dto.CustomerLocation.Latitude, dto.CustomerLocation.Longitude)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.Number,
		dto.CustomerName,
		dto.CustomerAddress,
		location,
		warehouseID,
		dto.WeightKg,
		dto.Priority,
		status,
		agentID,
		dto.CreatedDate,
		dto.DeliveryDate,
	)
}
