// Package order provides domain entities and business logic for order management
// in the orders service. It implements the Order aggregate root with its line
// items, totals and lifecycle status.
//
// The package includes:
//   - Order: The aggregate root that owns line items and derives totals from them
//   - LineItem: A priced line whose price is a snapshot taken at order time
//   - RequestedItem: An unpriced line as submitted by a caller
//   - Status: The lifecycle enum (PENDING, PAID, DELIVERED, CANCELLED)
//   - CreatedEvent / StatusChangedEvent: Domain events relayed through the outbox
//
// Key business rules:
//   - Orders start in PENDING status with at least one line item
//   - Totals always equal the sums over line items
//   - Setting the current status again is a no-op and records no event
package order
