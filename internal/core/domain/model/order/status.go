package order

import (
	"fmt"
	"strings"

	"orders/internal/pkg/errs"
)

// ErrInvalidStatus is wrapped by every status parsing and validation failure.
var ErrInvalidStatus = errs.NewValueIsInvalidError("status")

// Status represents the lifecycle state of an order.
//
//	PENDING ──> PAID ──> DELIVERED
//	   │          │          │
//	   └──────────┴──────────┴──> CANCELLED
//
// The diagram shows the usual business flow only. No transition table is
// enforced: any valid status may follow any other, and setting the current
// status again is a no-op.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every new order.
	Pending

	// Paid indicates payment was confirmed by an upstream system.
	Paid

	// Delivered indicates the order reached the customer.
	Delivered

	// Cancelled indicates the order was abandoned.
	Cancelled
)

var statusNames = map[Status]string{
	Pending:   "PENDING",
	Paid:      "PAID",
	Delivered: "DELIVERED",
	Cancelled: "CANCELLED",
}

// AllStatuses lists the valid statuses in declaration order.
func AllStatuses() []Status {
	return []Status{Pending, Paid, Delivered, Cancelled}
}

// ParseStatus converts the wire representation (case-insensitive) to a Status.
func ParseStatus(raw string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	for status, name := range statusNames {
		if name == normalized {
			return status, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q is not one of %s", ErrInvalidStatus, raw, validNames())
}

// Validate reports whether s is one of the declared statuses.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return fmt.Errorf("%w: %d is not a valid status", ErrInvalidStatus, int(s))
	}
	return nil
}

// String returns the wire name, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

func validNames() string {
	names := make([]string, 0, len(statusNames))
	for _, s := range AllStatuses() {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}
