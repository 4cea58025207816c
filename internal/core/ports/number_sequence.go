package ports

import "context"

// NumberSequence is the numbering authority: it hands out monotonically
// increasing integers scoped by an arbitrary prefix.
//
// Two independent numbering spaces are built on it:
//   - order numbers, prefix "b{buyerID}_s{sellerID}", formatted "{prefix}/{n}"
//   - document numbers, prefix "doc_{sellerID}", formatted as the plain integer
//
// Implementations must be safe under concurrent creators for the same
// prefix: the value is produced by an atomic per-prefix counter, never by
// scanning existing numbers for a maximum.
type NumberSequence interface {
	// Next returns the next value for the prefix, starting at 1 for a
	// prefix that has never been used. Must be called within an active
	// transaction so an aborted operation does not consume a number
	// visible to committed readers.
	Next(ctx context.Context, prefix string) (int64, error)
}
