// Package http exposes the allocation use cases over a REST API.
package http

import (
	"errors"
	"net/http"
	"time"

	"allocation/internal/core/application/usecases/commands"
	"allocation/internal/core/application/usecases/queries"
	"allocation/internal/core/domain/model/kernel"
	"allocation/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// defaultPerformancePeriodDays bounds the agent performance report when the
// caller gives no explicit range.
const defaultPerformancePeriodDays = 30

// ErrorResponse is the JSON error payload of the API.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	allocateOrdersHandler     commands.AllocateOrdersCommandHandler
	runDailyAllocationHandler commands.RunDailyAllocationCommandHandler

	// Query handlers
	getDailySummaryHandler     queries.GetDailySummaryQueryHandler
	getAgentPerformanceHandler queries.GetAgentPerformanceQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	allocateOrdersHandler commands.AllocateOrdersCommandHandler,
	runDailyAllocationHandler commands.RunDailyAllocationCommandHandler,
	getDailySummaryHandler queries.GetDailySummaryQueryHandler,
	getAgentPerformanceHandler queries.GetAgentPerformanceQueryHandler,
) *Server {
	return &Server{
		allocateOrdersHandler:      allocateOrdersHandler,
		runDailyAllocationHandler:  runDailyAllocationHandler,
		getDailySummaryHandler:     getDailySummaryHandler,
		getAgentPerformanceHandler: getAgentPerformanceHandler,
	}
}

// RegisterRoutes attaches the API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/warehouses/:warehouseId/allocate", s.AllocateOrders)
	e.POST("/api/v1/allocations/run", s.RunAllocations)
	e.GET("/api/v1/reports/daily-summary", s.GetDailySummary)
	e.GET("/api/v1/reports/agents/:agentId/performance", s.GetAgentPerformance)
	e.GET("/health", s.Health)
}

// AllocateOrders handles POST /api/v1/warehouses/:warehouseId/allocate -
// runs one allocation cycle for the warehouse and returns its summary.
func (s *Server) AllocateOrders(ctx echo.Context) error {
	warehouseID, err := kernel.UUIDFromString(ctx.Param("warehouseId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid warehouse ID",
		})
	}

	cmd, err := commands.NewAllocateOrdersCommand(warehouseID, time.Now().UTC())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid allocation request: " + err.Error(),
		})
	}

	summary, err := s.allocateOrdersHandler.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Warehouse not found",
		})
	}
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Allocation cycle failed",
		})
	}

	return ctx.JSON(http.StatusOK, summary)
}

// RunAllocations handles POST /api/v1/allocations/run - runs allocation
// cycles for every warehouse and returns the aggregated report.
func (s *Server) RunAllocations(ctx echo.Context) error {
	cmd, err := commands.NewRunDailyAllocationCommand(time.Now().UTC())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to build allocation run",
		})
	}

	report, err := s.runDailyAllocationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Allocation run failed",
		})
	}

	return ctx.JSON(http.StatusOK, report)
}

// GetDailySummary handles GET /api/v1/reports/daily-summary - returns the
// aggregated report for one day. The optional date query parameter uses the
// 2006-01-02 layout and defaults to today.
func (s *Server) GetDailySummary(ctx echo.Context) error {
	date := time.Now().UTC()
	if raw := ctx.QueryParam("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid date, expected YYYY-MM-DD",
			})
		}
		date = parsed
	}

	query, err := queries.NewGetDailySummaryQuery(date)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid report request: " + err.Error(),
		})
	}

	summary, err := s.getDailySummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to build daily summary",
		})
	}

	return ctx.JSON(http.StatusOK, summary)
}

// GetAgentPerformance handles GET /api/v1/reports/agents/:agentId/performance -
// returns an agent's aggregated performance over a date range. The optional
// from/to query parameters use the 2006-01-02 layout and default to the last
// 30 days.
func (s *Server) GetAgentPerformance(ctx echo.Context) error {
	agentID, err := kernel.UUIDFromString(ctx.Param("agentId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid agent ID",
		})
	}

	endDate := time.Now().UTC()
	startDate := endDate.AddDate(0, 0, -defaultPerformancePeriodDays)

	if raw := ctx.QueryParam("from"); raw != "" {
		startDate, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid from date, expected YYYY-MM-DD",
			})
		}
	}

	if raw := ctx.QueryParam("to"); raw != "" {
		endDate, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid to date, expected YYYY-MM-DD",
			})
		}
	}

	query, err := queries.NewGetAgentPerformanceQuery(agentID, startDate, endDate)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid performance request: " + err.Error(),
		})
	}

	performance, err := s.getAgentPerformanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to build agent performance report",
		})
	}

	return ctx.JSON(http.StatusOK, performance)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}
