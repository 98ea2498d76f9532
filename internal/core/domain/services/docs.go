// Package services provides domain services that operate across domain
// entities of the orders service: logic that needs both an order and the
// product catalog and so belongs to neither.
//
// The package includes:
//   - OrderPricer: prices requested items against authoritative catalog records
package services
