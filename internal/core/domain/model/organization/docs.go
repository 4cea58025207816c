// Package organization provides the Organization and Employee entities.
// Organizations are the trading parties of the wholesale system; employees
// are the human actors operating on their behalf. Both are reference data
// from the order lifecycle's point of view: orders hold their identifiers,
// never the entities themselves.
package organization
