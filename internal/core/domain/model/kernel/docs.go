// Package kernel provides the shared domain primitives of the orders service:
//   - UUID: a validated identifier value object
//   - DomainEvent / EventSource: the contract between aggregates and the outbox
package kernel
