// Package agent provides domain entities for field delivery agents and their
// per-day workload accounting.
//
// The package includes:
//   - Agent: the aggregate root for an agent's identity, warehouse
//     affiliation, active flag and daily check-in marker
//   - DailyMetrics: the mutable per-(agent, date) accumulator of assigned
//     orders, traveled distance, working hours and derived earnings
//
// Key business rules:
//   - Only active, checked-in agents participate in an allocation cycle
//   - Per-day ceilings: 100 km of travel and 10 working hours, with travel
//     time fixed at 5 minutes per kilometer
//   - Earnings are recomputed from the day's order count on every change
//     using the tiered scheme (42/35/20 per order, 500 minimum)
package agent
