// Package agentrepo provides data transfer objects and mapping functions for
// agent persistence.
package agentrepo

import (
	"time"

	"allocation/internal/core/domain/model/agent"
	"allocation/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AgentDTO represents the database structure for persisting agent aggregates.
// The employee ID carries a unique index because it doubles as the stable
// scan order of the allocation cycle.
type AgentDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"type:varchar(255);not null"`
	EmployeeID  string     `gorm:"type:varchar(64);uniqueIndex;not null"`
	WarehouseID uuid.UUID  `gorm:"type:uuid;index"`
	Active      bool       `gorm:"not null;default:true"`
	CheckedInAt *time.Time `gorm:"type:timestamptz"`
}

// TableName specifies the database table name for agent entities.
func (AgentDTO) TableName() string {
	return "agents"
}

// fromDomain converts an agent domain aggregate to its database representation.
func fromDomain(a *agent.Agent) AgentDTO {
	return AgentDTO{
		ID:          a.ID().Bytes(),
		Name:        a.Name(),
		EmployeeID:  a.EmployeeID(),
		WarehouseID: a.WarehouseID().Bytes(),
		Active:      a.IsActive(),
		CheckedInAt: a.CheckedInAt(),
	}
}

// toDomain converts a database DTO to an agent domain aggregate.
func toDomain(dto AgentDTO) (*agent.Agent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return nil, err
	}

	return agent.RestoreAgent(id, dto.Name, dto.EmployeeID, warehouseID, dto.Active, dto.CheckedInAt)
}
