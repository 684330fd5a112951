// Package assignment provides the domain model for linking orders to delivery
// persons and tracking the delivery lifecycle.
//
// The package includes:
//   - Assignment: The aggregate root mapping one order to at most one delivery person
//   - Status: The delivery lifecycle state machine (to_delivery -> in_delivery -> delivered | canceled)
//
// Key business rules:
//   - An order has at most one assignment; a missing row means unassigned
//   - Lifecycle timestamps (ConfirmedAt, PickedUpAt, DeliveredAt, CanceledAt)
//     are stamped exactly once, on first entry into the matching status
//   - Delivered and Canceled are terminal; terminal assignments accept no mutation
//   - Only the currently assigned delivery person may transition the status;
//     a mismatched actor is a silent no-op, not an error
package assignment
