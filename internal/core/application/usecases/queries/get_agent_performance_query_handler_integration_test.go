package queries_test

import (
	"context"
	"testing"
	"time"

	"allocation/internal/adapters/out/postgres/metricsrepo"
	"allocation/internal/core/application/usecases/queries"
	"allocation/internal/core/domain/model/agent"
	"allocation/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAgentPerformanceQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAgentPerformanceQueryHandler
}

func (suite *GetAgentPerformanceQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&metricsrepo.DailyMetricsDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAgentPerformanceQueryHandler(db)
}

func (suite *GetAgentPerformanceQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAgentPerformanceQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE agent_daily_metrics").Error
	suite.Require().NoError(err)
}

func (suite *GetAgentPerformanceQueryHandlerTestSuite) seedDay(agentID kernel.UUID, date time.Time, orders int, distanceKm float64) {
	ctx := context.Background()
	repo := metricsrepo.NewGormMetricsRepository(suite.db, &mockAggregateTracker{})

	_, err := repo.GetOrCreate(ctx, agentID, date)
	suite.Require().NoError(err)

	loaded, err := agent.RestoreDailyMetrics(agentID, date, orders, distanceKm, distanceKm*5/60)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Update(ctx, loaded))
}

func (suite *GetAgentPerformanceQueryHandlerTestSuite) TestHandle_NoDaysWorked_ReturnsLowTierZeroes() {
	query, err := queries.NewGetAgentPerformanceQuery(
		kernel.NewUUID(),
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)

	performance, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("2025-06-01 to 2025-06-30", performance.Period)
	suite.Equal(0, performance.TotalDaysWorked)
	suite.Equal(0, performance.TotalOrdersDelivered)
	suite.InDelta(0.0, performance.AvgOrdersPerDay, 0.001)
	suite.Equal(queries.TierLow, performance.PerformanceTier)
}

func (suite *GetAgentPerformanceQueryHandlerTestSuite) TestHandle_AggregatesWorkedDays() {
	agentID := kernel.NewUUID()
	// Three identical days: 30 orders each puts the agent in the medium tier
	// (30 * 35 = 1050 earnings per day).
	for day := 10; day <= 12; day++ {
		suite.seedDay(agentID, time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC), 30, 20.0)
	}
	// Outside the requested range and belonging to another agent.
	suite.seedDay(agentID, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), 50, 40.0)
	suite.seedDay(kernel.NewUUID(), time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), 50, 40.0)

	query, err := queries.NewGetAgentPerformanceQuery(
		agentID,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)

	performance, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(3, performance.TotalDaysWorked)
	suite.Equal(90, performance.TotalOrdersDelivered)
	suite.InDelta(3150.0, performance.TotalEarnings, 0.01)
	suite.InDelta(60.0, performance.TotalDistanceKm, 0.01)
	suite.InDelta(30.0, performance.AvgOrdersPerDay, 0.01)
	suite.InDelta(1050.0, performance.AvgEarningsPerDay, 0.01)
	suite.Equal(queries.TierMedium, performance.PerformanceTier)
}

func (suite *GetAgentPerformanceQueryHandlerTestSuite) TestHandle_HighTier() {
	agentID := kernel.NewUUID()
	suite.seedDay(agentID, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), 55, 60.0)

	query, err := queries.NewGetAgentPerformanceQuery(
		agentID,
		time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)

	performance, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(1, performance.TotalDaysWorked)
	suite.InDelta(55.0, performance.AvgOrdersPerDay, 0.01)
	suite.Equal(queries.TierHigh, performance.PerformanceTier)
}

func (suite *GetAgentPerformanceQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAgentPerformanceQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
}

func TestGetAgentPerformanceQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAgentPerformanceQueryHandlerTestSuite))
}
