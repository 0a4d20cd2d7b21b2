package services

import (
	"math"
	"sort"

	"allocation/internal/core/domain/model/agent"
	"allocation/internal/core/domain/model/kernel"
	"allocation/internal/core/domain/model/order"
	"allocation/internal/core/domain/model/warehouse"
	"allocation/internal/pkg/errs"
)

// scoreOffset prevents the proximity term from blowing up when an order is
// at the warehouse itself (distance 0).
const scoreOffset = 0.1

// loadBalancingFloor is the order count under which agents are preferred for
// new assignments regardless of distance, spreading load before optimizing.
const loadBalancingFloor = 30

// ScoredOrder pairs an order with its warehouse distance and priority score
// for one allocation cycle.
type ScoredOrder struct {
	Order      *order.Order
	DistanceKm float64
	Score      float64
}

// Allocator is a domain service implementing the per-cycle matching policy:
// it ranks pending orders by a proximity/urgency score and selects an agent
// for each order under the daily distance and working-hour ceilings.
//
// Selection policy per order:
//   - Agents are scanned in their fetched order (employee ID ascending)
//   - The first constraint-satisfying agent under the load-balancing floor
//     (30 orders) wins and short-circuits the scan
//   - Otherwise the constraint-satisfying agent with the smallest distance
//     among those scanned wins
//   - If no agent satisfies the constraints the order is deferred
type Allocator struct{}

// NewAllocator creates a new Allocator instance.
func NewAllocator() Allocator {
	return Allocator{}
}

// Score computes the priority score of an order relative to its warehouse:
//
//	score = (1 / (distance + 0.1)) * priority
//
// Closer orders and higher declared priority both increase the score.
func (Allocator) Score(o *order.Order, wh *warehouse.Warehouse) (float64, error) {
	if err := o.Validate(); err != nil {
		return 0, err
	}
	if err := wh.Validate(); err != nil {
		return 0, err
	}

	distanceKm, err := wh.Location().DistanceTo(o.CustomerLocation())
	if err != nil {
		return 0, err
	}

	return scoreFor(distanceKm, o.Priority()), nil
}

// RankOrders computes distance and score for every order and returns them
// sorted by score descending. The sort is stable, so orders with equal
// scores keep their fetch order (creation date, then priority).
func (a Allocator) RankOrders(orders []*order.Order, wh *warehouse.Warehouse) ([]ScoredOrder, error) {
	if err := wh.Validate(); err != nil {
		return nil, err
	}

	scored := make([]ScoredOrder, 0, len(orders))
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}

		distanceKm, err := wh.Location().DistanceTo(o.CustomerLocation())
		if err != nil {
			return nil, err
		}

		scored = append(scored, ScoredOrder{
			Order:      o,
			DistanceKm: distanceKm,
			Score:      scoreFor(distanceKm, o.Priority()),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored, nil
}

// SelectAgent picks the agent to receive an order at the given distance,
// applying the load-balancing floor and best-distance fallback against each
// agent's current cycle metrics. Returns false when no agent satisfies the
// constraint ceilings - the caller defers the order; that outcome is
// expected control flow, not an error.
func (Allocator) SelectAgent(
	agents []*agent.Agent,
	metricsByAgent map[kernel.UUID]*agent.DailyMetrics,
	distanceKm float64,
) (*agent.Agent, bool, error) {
	var (
		bestAgent    *agent.Agent
		bestDistance = math.MaxFloat64
	)

	for _, candidate := range agents {
		if err := candidate.Validate(); err != nil {
			return nil, false, err
		}

		metrics, ok := metricsByAgent[candidate.ID()]
		if !ok {
			return nil, false, errs.NewObjectNotFoundError("agent metrics", candidate.ID().String())
		}

		allowed, _ := metrics.CanAssign(distanceKm)
		if !allowed {
			continue
		}

		if metrics.TotalOrders() < loadBalancingFloor {
			return candidate, true, nil
		}

		if distanceKm < bestDistance {
			bestAgent = candidate
			bestDistance = distanceKm
		}
	}

	if bestAgent == nil {
		return nil, false, nil
	}

	return bestAgent, true, nil
}

func scoreFor(distanceKm float64, priority int) float64 {
	return (1 / (distanceKm + scoreOffset)) * float64(priority)
}
