// Package product implements the inventory ledger of the wholesale system.
//
// A Product owns a pair of stock buckets, available quantity and reserved
// quantity, and exposes exactly two ledger operations over them:
//
//   - Reserve: move units from available to reserved (order confirmation)
//   - Release: move units back from reserved to available (order cancellation)
//
// Conservation law: Reserve and Release never change the sum of the two
// buckets. Only the deliberate intake operations Restock and RemoveStock do.
//
// The order lifecycle consumes this ledger through the command handlers;
// reservation bookkeeping is never inlined anywhere else.
package product
