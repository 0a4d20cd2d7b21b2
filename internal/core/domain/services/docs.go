// Package services contains domain services implementing the allocation
// policy that spans multiple aggregates.
//
// The package includes:
//   - Allocator: priority scoring, score-ranked ordering and the greedy
//     agent-selection policy (load-balancing floor, best-distance fallback)
//   - MetricsAggregator: cycle summaries built from final per-agent metrics
//     (utilization tiers, total daily cost)
//
// Both services are stateless; all cycle state lives in the aggregates and
// the per-cycle metrics accumulator passed in by the application layer.
package services
