package order

import (
	"errors"
	"time"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the central aggregate of the wholesale system. It ties a buyer
// organization, a seller organization and the creating employee to a set of
// order lines, and owns the status state machine driving the lifecycle.
//
// Order follows these invariants:
//   - buyer, seller and employee identifiers are valid and immutable
//   - the order number is assigned once at creation and never changes
//   - items can only be added, removed or resized while the order is New
//   - totalAmount always equals the sum of the items' amounts; it is
//     recomputed after every mutation, never adjusted incrementally
//   - statusChangeDate is updated on every status transition
//   - the document reference is set exactly once, on the Paid -> Shipped edge
//
// Inventory side effects (reserve on confirm, release on cancel) are
// orchestrated by the command handlers; the aggregate only answers whether
// its previous status held a reservation.
type Order struct {
	id               kernel.UUID
	buyerID          kernel.UUID
	sellerID         kernel.UUID
	employeeID       kernel.UUID
	status           Status
	orderNumber      string
	orderDate        time.Time
	statusChangeDate time.Time
	totalAmount      decimal.Decimal
	comments         string
	documentID       *kernel.UUID
	items            []*Item

	isConstructed bool
}

// NewOrder creates an Order in New status with no items. The order number
// comes from the numbering authority and is immutable afterwards.
//
// An order with no items is legal: the first item is added right after
// creation, and removing the last item deliberately does not cancel the order.
func NewOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	sellerID kernel.UUID,
	employeeID kernel.UUID,
	orderNumber string,
	comments string,
	now time.Time,
) (*Order, error) {
	order := &Order{
		status:           New,
		orderDate:        now,
		statusChangeDate: now,
		totalAmount:      decimal.Zero,
		comments:         comments,
		isConstructed:    true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setBuyerID(buyerID),
		order.setSellerID(sellerID),
		order.setEmployeeID(employeeID),
		order.setOrderNumber(orderNumber),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence, including its status,
// dates, document reference and items. The total is recomputed from the
// items rather than trusted from storage.
func RestoreOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	sellerID kernel.UUID,
	employeeID kernel.UUID,
	status Status,
	orderNumber string,
	orderDate time.Time,
	statusChangeDate time.Time,
	comments string,
	documentID *kernel.UUID,
	items []*Item,
) (*Order, error) {
	order, err := NewOrder(id, buyerID, sellerID, employeeID, orderNumber, comments, orderDate)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err = item.Validate(); err != nil {
			return nil, err
		}
	}

	if documentID != nil {
		if err = documentID.Validate(); err != nil {
			return nil, err
		}
	}

	order.status = status
	order.statusChangeDate = statusChangeDate
	order.documentID = documentID
	order.items = items
	order.recomputeTotal()
	return order, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// BuyerID returns the identifier of the buying organization.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// SellerID returns the identifier of the selling organization.
func (o *Order) SellerID() kernel.UUID {
	return o.sellerID
}

// EmployeeID returns the identifier of the employee who created the order.
func (o *Order) EmployeeID() kernel.UUID {
	return o.employeeID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// OrderNumber returns the immutable order number, e.g. "b{buyer}_s{seller}/7".
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// OrderDate returns the creation time of the order.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// StatusChangeDate returns the time of the latest status transition.
func (o *Order) StatusChangeDate() time.Time {
	return o.statusChangeDate
}

// TotalAmount returns the sum of the items' amounts.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// Comments returns the free-form comments attached to the order.
func (o *Order) Comments() string {
	return o.comments
}

// DocumentID returns the identifier of the accounting document produced at
// shipment. Nil until the order is shipped.
func (o *Order) DocumentID() *kernel.UUID {
	return o.documentID
}

// Items returns the order lines. The slice is a copy; the lines themselves
// are shared and must only be mutated through the aggregate.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// AddItem appends a line to the order and recomputes the total.
// Allowed only while the order is New.
func (o *Order) AddItem(item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	if err := o.ensureItemsMutable(); err != nil {
		return err
	}

	o.items = append(o.items, item)
	o.recomputeTotal()
	return nil
}

// RemoveItem deletes the line with the given identifier and recomputes the
// total. Allowed only while the order is New. Removing the last item leaves
// an empty New order; it is not auto-cancelled.
func (o *Order) RemoveItem(itemID kernel.UUID) error {
	if err := o.ensureItemsMutable(); err != nil {
		return err
	}

	for idx, item := range o.items {
		if item.ID().IsEqual(itemID) {
			o.items = append(o.items[:idx], o.items[idx+1:]...)
			o.recomputeTotal()
			return nil
		}
	}

	return errs.NewObjectNotFoundError("orderItem", itemID.String())
}

// ChangeItemQuantity resizes the line with the given identifier and
// recomputes the total. Allowed only while the order is New. The caller is
// responsible for checking the new quantity against available stock before
// invoking this method.
func (o *Order) ChangeItemQuantity(itemID kernel.UUID, quantity decimal.Decimal) error {
	if err := o.ensureItemsMutable(); err != nil {
		return err
	}

	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			if err := item.changeQuantity(quantity); err != nil {
				return err
			}
			o.recomputeTotal()
			return nil
		}
	}

	return errs.NewObjectNotFoundError("orderItem", itemID.String())
}

// Item returns the line with the given identifier.
func (o *Order) Item(itemID kernel.UUID) (*Item, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("orderItem", itemID.String())
}

// Confirm transitions the order New -> Confirmed. The caller must reserve
// stock for every item within the same transaction; if any reservation
// fails the whole transition is rolled back.
func (o *Order) Confirm(now time.Time) error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.applyStatus(newStatus, now)
	return nil
}

// Pay transitions the order Confirmed -> Paid. No inventory effect.
func (o *Order) Pay(now time.Time) error {
	newStatus, err := o.status.Pay()
	if err != nil {
		return err
	}

	o.applyStatus(newStatus, now)
	return nil
}

// Ship transitions the order Paid -> Shipped and attaches the accounting
// document produced for it. This is the only transition with an external
// side effect baked in: a failed document creation must roll back the
// status change, which is why both run in one transaction.
func (o *Order) Ship(documentID kernel.UUID, now time.Time) error {
	if err := documentID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.applyStatus(newStatus, now)
	o.documentID = &documentID
	return nil
}

// Cancel transitions the order to Cancelled from any non-terminal status.
// It reports whether the previous status held a stock reservation so the
// caller knows whether to release the items' stock.
func (o *Order) Cancel(now time.Time) (releaseStock bool, err error) {
	previous := o.status

	newStatus, err := o.status.Cancel()
	if err != nil {
		return false, err
	}

	o.applyStatus(newStatus, now)
	return previous.HoldsReservation(), nil
}

func (o *Order) ensureItemsMutable() error {
	if !o.status.AllowsItemChanges() {
		return errs.NewInvalidTransitionErrorWithCause(o.status.String(), o.status.String(),
			errors.New("items can only be modified while the order is New"))
	}
	return nil
}

func (o *Order) applyStatus(status Status, now time.Time) {
	o.status = status
	o.statusChangeDate = now
}

// recomputeTotal re-derives totalAmount from the items. Called after every
// mutation so the stored total can never drift from the lines.
func (o *Order) recomputeTotal() {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Amount())
	}
	o.totalAmount = total
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setBuyerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("buyerID", err)
	}
	o.buyerID = id
	return nil
}

func (o *Order) setSellerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("sellerID", err)
	}
	o.sellerID = id
	return nil
}

func (o *Order) setEmployeeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("employeeID", err)
	}
	o.employeeID = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}
