// Package warehouserepo provides data transfer objects and mapping functions
// for warehouse persistence. Warehouses are read-mostly reference data for the
// allocation cycle.
package warehouserepo

import (
	"allocation/internal/core/domain/model/kernel"
	"allocation/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
)

// WarehouseDTO represents the database structure for persisting warehouse
// aggregates.
type WarehouseDTO struct {
	ID       uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name     string      `gorm:"type:varchar(255);not null"`
	Location GeoPointDTO `gorm:"embedded;embeddedPrefix:location_"`
	Capacity int
}

// TableName specifies the database table name for warehouse entities.
func (WarehouseDTO) TableName() string {
	return "warehouses"
}

// GeoPointDTO represents embedded geographic coordinates. Six decimal places
// match the domain's fixed-point coordinate precision.
type GeoPointDTO struct {
	Latitude  float64 `gorm:"type:decimal(9,6)"`
	Longitude float64 `gorm:"type:decimal(9,6)"`
}

// fromDomain converts a warehouse domain aggregate to its database representation.
func fromDomain(wh *warehouse.Warehouse) WarehouseDTO {
	return WarehouseDTO{
		ID:   wh.ID().Bytes(),
		Name: wh.Name(),
		Location: GeoPointDTO{
			Latitude:  wh.Location().Latitude(),
			Longitude: wh.Location().Longitude(),
		},
		Capacity: wh.Capacity(),
	}
}

// toDomain converts a database DTO to a warehouse domain aggregate.
func toDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return nil, err
	}

	return warehouse.RestoreWarehouse(id, dto.Name, location, dto.Capacity)
}
