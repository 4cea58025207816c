// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence. Every lifecycle operation runs inside a single unit of work
// so partial application is impossible.
package commands

import (
	"context"

	"wholesale/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler names the narrowest combination of repositories it needs.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrganizationRepoFactory provides access to the organization repository within a transaction.
	OrganizationRepoFactory interface {
		OrganizationRepository() ports.OrganizationRepository
	}

	// DocumentRepoFactory provides access to the document repository within a transaction.
	DocumentRepoFactory interface {
		DocumentRepository() ports.DocumentRepository
	}

	// SequenceFactory provides access to the numbering authority within a transaction.
	SequenceFactory interface {
		NumberSequence() ports.NumberSequence
	}

	// OrderUoW manages transactions for order-only operations (pay, item removal).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderProductUoW manages transactions coordinating an order with the
	// inventory ledger (confirm, cancel, item quantity changes).
	OrderProductUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
	}

	// OrderProductUoWFactory creates new order+product unit of work instances.
	OrderProductUoWFactory interface {
		Create() OrderProductUoW
	}

	// CreateOrderUoW manages transactions for order creation, which touches
	// reference data, the product catalog and the numbering authority.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		OrganizationRepoFactory
		SequenceFactory
	}

	// CreateOrderUoWFactory creates new order-creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// ShipOrderUoW manages the shipment transaction: the status change and
	// the document creation commit or fail together.
	ShipOrderUoW interface {
		TxManager
		OrderRepoFactory
		DocumentRepoFactory
		SequenceFactory
	}

	// ShipOrderUoWFactory creates new shipment unit of work instances.
	ShipOrderUoWFactory interface {
		Create() ShipOrderUoW
	}

	// OrganizationUoW manages transactions for reference data operations on
	// organizations and their employees.
	OrganizationUoW interface {
		TxManager
		OrganizationRepoFactory
	}

	// OrganizationUoWFactory creates new organization unit of work instances.
	OrganizationUoWFactory interface {
		Create() OrganizationUoW
	}

	// ProductUoW manages transactions for product catalog operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
		OrganizationRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}
)
