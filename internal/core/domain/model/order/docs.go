// Package order provides the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root owning buyer/seller/employee references,
//     order lines, totals and the document link set at shipment
//   - Status: a state machine enforcing the lifecycle
//     New -> Confirmed -> Paid -> Shipped, with Cancelled reachable from
//     every non-terminal state
//   - Item: an order line with its price snapshotted at add-time
//
// Key business rules:
//   - items are mutable only while the order is New
//   - totalAmount is recomputed from the lines after every mutation
//   - stock is reserved at confirmation and released at cancellation;
//     the aggregate exposes the decision, the command handlers execute it
//   - shipping attaches exactly one accounting document and is terminal
package order
