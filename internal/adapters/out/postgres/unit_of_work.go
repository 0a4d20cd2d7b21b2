// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. The Unit of Work pattern maintains a list of objects affected by a
// business transaction and coordinates writing out changes.
//
// The allocation cycle leans on one property of this implementation: Commit
// and Rollback both clear the transaction, so a single unit of work can run a
// sequence of short per-order transactions:
//
//	uow := factory.Create()
//	for _, candidate := range rankedOrders {
//	    if err := uow.Begin(ctx); err != nil {
//	        return err
//	    }
//
//	    if err := uow.OrderRepository().Update(ctx, candidate.Order); err != nil {
//	        uow.Rollback(ctx)
//	        return err
//	    }
//
//	    if err := uow.Commit(ctx); err != nil {
//	        return err
//	    }
//	}
//
// Outside a transaction the repository accessors bind to the base connection,
// so reads that need no atomicity work on the same instance.
//
// Concurrency: each UnitOfWork instance carries its own transaction state;
// concurrent goroutines must use separate instances from the factory.
package postgres

import (
	"context"

	"allocation/internal/adapters/out/postgres/agentrepo"
	"allocation/internal/adapters/out/postgres/assignmentlogrepo"
	"allocation/internal/adapters/out/postgres/metricsrepo"
	"allocation/internal/adapters/out/postgres/orderrepo"
	"allocation/internal/adapters/out/postgres/warehouserepo"
	"allocation/internal/core/domain/model/kernel"
	"allocation/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// This is useful for implementing patterns like event sourcing or outbox pattern.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{} // Will be changed to a common Aggregate interface in the future
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database
// connections. Each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// The provided database connection is shared by all created instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction
// management. Each instance maintains its own transaction state and aggregate
// tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate
// changes for business operations. Implements the Unit of Work pattern using
// GORM's transaction capabilities.
//
// The unit of work tracks all aggregates modified during the transaction,
// enabling patterns like domain event publishing after successful commits.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Subsequent repository operations execute within this transaction context.
// Calling Begin while a transaction is active is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction and clears
// it, so the instance can Begin again for the next write group.
//
// Returns error if no active transaction exists or if the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction and
// clears it.
//
// Returns error if no active transaction exists or if the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// WarehouseRepository provides warehouse persistence operations within the
// unit of work, bound to the current transaction if one is active.
func (uow *GormUnitOfWork) WarehouseRepository() ports.WarehouseRepository {
	return warehouserepo.NewGormWarehouseRepository(uow.conn(), uow)
}

// AgentRepository provides agent persistence operations within the unit of
// work, bound to the current transaction if one is active.
func (uow *GormUnitOfWork) AgentRepository() ports.AgentRepository {
	return agentrepo.NewGormAgentRepository(uow.conn(), uow)
}

// OrderRepository provides order persistence operations within the unit of
// work, bound to the current transaction if one is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// MetricsRepository provides daily metrics persistence operations within the
// unit of work, bound to the current transaction if one is active.
func (uow *GormUnitOfWork) MetricsRepository() ports.MetricsRepository {
	return metricsrepo.NewGormMetricsRepository(uow.conn(), uow)
}

// AssignmentLogRepository provides assignment log persistence operations
// within the unit of work, bound to the current transaction if one is active.
func (uow *GormUnitOfWork) AssignmentLogRepository() ports.AssignmentLogRepository {
	return assignmentlogrepo.NewGormAssignmentLogRepository(uow.conn(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Called by repository implementations on writes; the tracked
// aggregates enable post-transaction processing such as event publishing.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
