package assignment

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the delivery lifecycle state of an assignment.
// The absence of an assignment row is the "unassigned" state and is
// deliberately not a Status value.
//
// State transitions:
//
//	(unassigned) ──> ToDelivery ──> InDelivery ──> Delivered
//	                      │              │
//	                      └──────────────┴───────> Canceled
//
// Delivered and Canceled are terminal: no further transition is accepted.
// Within the non-terminal states the graph is not strictly enforced: a
// status may be re-applied or set out of order by the owning delivery
// person. Lifecycle timestamps are stamped only on first entry, so a
// repeated status does not move them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// ToDelivery is the initial status after a delivery person is assigned.
	ToDelivery

	// InDelivery indicates the delivery person has picked the order up.
	InDelivery

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Canceled indicates the delivery was called off. Terminal.
	Canceled
)

// getStatusKeys returns the wire/storage key for every Status value.
func getStatusKeys() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		ToDelivery: "to_delivery",
		InDelivery: "in_delivery",
		Delivered:  "delivered",
		Canceled:   "canceled",
	}
}

// getValidStatusKeys returns only the statuses accepted from callers.
func getValidStatusKeys() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		ToDelivery: "to_delivery",
		InDelivery: "in_delivery",
		Delivered:  "delivered",
		Canceled:   "canceled",
	}
}

// StatusFromKey parses a wire/storage key into a Status.
// Returns a validation error for unknown keys; malformed input is rejected
// before any persistence is touched.
func StatusFromKey(key string) (Status, error) {
	for status, k := range getValidStatusKeys() {
		if k == key {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status key", key),
	)
}

// Validate checks that the Status is one of the accepted values.
func (s Status) Validate() error {
	if _, ok := getValidStatusKeys()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// Key returns the wire/storage key of the status ("to_delivery", ...).
// Returns "unknown" for invalid values.
func (s Status) Key() string {
	if key, ok := getStatusKeys()[s]; ok {
		return key
	}
	return "unknown"
}

// String implements fmt.Stringer using the status key.
func (s Status) String() string {
	return s.Key()
}

// IsTerminal reports whether the status accepts no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Canceled
}
