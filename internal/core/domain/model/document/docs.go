// Package document provides the immutable accounting record produced when
// an order ships. A Document and its Items are created exactly once, copy
// the order's parties, total and lines by value, and expose no mutating
// operations.
package document
