package order

import (
	"fmt"

	"wholesale/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so every status
// change in the system goes through one edge table.
//
// State transitions:
//
//	New ──> Confirmed ──> Paid ──> Shipped
//	 │          │           │
//	 └──────────┴───────────┴──> Cancelled
//
// Shipped and Cancelled are terminal; no transition leaves them.
// Stock is reserved on the New -> Confirmed edge and released on the
// Confirmed/Paid -> Cancelled edges.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status. Items can be added, removed and
	// resized only while the order is New. No stock is reserved yet.
	New

	// Confirmed indicates the buyer committed to the order and stock
	// has been reserved for every item.
	Confirmed

	// Paid indicates payment was registered. No inventory effect.
	Paid

	// Shipped indicates the goods left the warehouse and an accounting
	// document was produced. Terminal.
	Shipped

	// Cancelled indicates the order was abandoned before shipping.
	// Any reserved stock has been released. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		New:       "New",
		Confirmed: "Confirmed",
		Paid:      "Paid",
		Shipped:   "Shipped",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:       "New",
		Confirmed: "Confirmed",
		Paid:      "Paid",
		Shipped:   "Shipped",
		Cancelled: "Cancelled",
	}
}

// StatusFromString parses a status name as produced by String.
// Unknown is not accepted.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return s == Shipped || s == Cancelled
}

// HoldsReservation reports whether stock is reserved while an order sits in
// this status. Used by cancellation to decide whether a release is due.
func (s Status) HoldsReservation() bool {
	return s == Confirmed || s == Paid
}

// AllowsItemChanges reports whether the order's item set may still be
// modified. Items are frozen as soon as the order leaves New.
func (s Status) AllowsItemChanges() bool {
	return s == New
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - New -> Confirmed
//
// Any other source status yields an InvalidTransitionError.
func (s Status) Confirm() (Status, error) {
	if s != New {
		return 0, errs.NewInvalidTransitionError(s.String(), Confirmed.String())
	}
	return Confirmed, nil
}

// Pay transitions the status to Paid.
//
// Valid transitions:
//   - Confirmed -> Paid
//
// Any other source status yields an InvalidTransitionError.
func (s Status) Pay() (Status, error) {
	if s != Confirmed {
		return 0, errs.NewInvalidTransitionError(s.String(), Paid.String())
	}
	return Paid, nil
}

// Ship transitions the status to Shipped.
//
// Valid transitions:
//   - Paid -> Shipped
//
// Any other source status yields an InvalidTransitionError.
func (s Status) Ship() (Status, error) {
	if s != Paid {
		return 0, errs.NewInvalidTransitionError(s.String(), Shipped.String())
	}
	return Shipped, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - New -> Cancelled
//   - Confirmed -> Cancelled
//   - Paid -> Cancelled
//
// Shipped orders cannot be cancelled, and cancelling twice is rejected.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() || s == Unknown {
		return 0, errs.NewInvalidTransitionError(s.String(), Cancelled.String())
	}
	return Cancelled, nil
}
