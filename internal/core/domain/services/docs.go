// Package services contains domain services that coordinate behavior across
// aggregates without belonging to any single one.
//
// DocumentFactory derives the immutable accounting document from a shipped
// order, copying parties, total and lines by value.
package services
