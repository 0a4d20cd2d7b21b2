// Package order provides domain entities and business logic for delivery
// order management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: the aggregate root managing order identity, customer details,
//     warehouse affiliation, priority and lifecycle
//   - Status: a state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid identifier, order number, warehouse and
//     customer coordinate; priority is 1-5, weight positive
//   - Only pending orders enter an allocation cycle; a cycle moves each one
//     to exactly assigned or deferred
//   - Assignment records the agent and the delivery date together
package order
