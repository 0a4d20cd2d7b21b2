// Package queries contains read-only operations for reporting.
// Implements the Query side of the CQRS architecture: handlers read
// denormalized rows straight from the database, bypassing the domain model.
package queries

import (
	"errors"
	"time"

	"allocation/internal/pkg/errs"
	"allocation/internal/pkg/guard"
)

var ErrGetDailySummaryQueryIsNotConstructed = errors.New(
	"GetDailySummaryQuery must be created via NewGetDailySummaryQuery constructor",
)

// GetDailySummaryQuery retrieves the aggregated outcome of one working day:
// agent totals, averages, performance tiers and the deferred order count.
//
// Example:
//
//	query, err := NewGetDailySummaryQuery(time.Now())
//	if err != nil {
//	    return err
//	}
//	summary, err := handler.Handle(ctx, query)
type GetDailySummaryQuery struct {
	date time.Time

	guard guard.ConstructorGuard
}

// NewGetDailySummaryQuery creates a query for the given report date.
func NewGetDailySummaryQuery(date time.Time) (GetDailySummaryQuery, error) {
	if date.IsZero() {
		return GetDailySummaryQuery{}, errs.NewValueIsRequiredError("date")
	}

	return GetDailySummaryQuery{
		date:  date,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Date returns the report date.
func (q GetDailySummaryQuery) Date() time.Time {
	return q.date
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDailySummaryQueryIsNotConstructed if validation fails.
func (q GetDailySummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetDailySummaryQueryIsNotConstructed)
}

// GetDailySummaryQueryResponse is the daily report read model.
// Monetary and distance figures are rounded to 2 decimal places.
type GetDailySummaryQueryResponse struct {
	ReportDate          string  `json:"report_date"`
	TotalAgents         int     `json:"total_agents"`
	TotalOrders         int     `json:"total_orders"`
	TotalDistanceKm     float64 `json:"total_distance_km"`
	TotalEarnings       float64 `json:"total_earnings"`
	DeferredOrders      int     `json:"deferred_orders"`
	AvgOrdersPerAgent   float64 `json:"avg_orders_per_agent"`
	AvgDistancePerAgent float64 `json:"avg_distance_per_agent"`
	AvgEarningsPerAgent float64 `json:"avg_earnings_per_agent"`
	HighPerformers      int     `json:"high_performers"`
	MediumPerformers    int     `json:"medium_performers"`
	LowPerformers       int     `json:"low_performers"`
	CostPerOrder        float64 `json:"cost_per_order"`
}
