package http

import (
	"time"

	"wholesale/internal/core/application/usecases/queries"
	"wholesale/internal/core/domain/model/order"
	"wholesale/internal/core/domain/model/organization"
	"wholesale/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrganizationRequest is the body of POST /api/v1/organizations.
type CreateOrganizationRequest struct {
	Name    string `json:"name"`
	INN     string `json:"inn"`
	KPP     string `json:"kpp,omitempty"`
	Address string `json:"address,omitempty"`
	Email   string `json:"email,omitempty"`
}

// UpdateOrganizationRequest is the body of PUT /api/v1/organizations/:organizationID.
type UpdateOrganizationRequest struct {
	KPP     string `json:"kpp,omitempty"`
	Address string `json:"address,omitempty"`
	Email   string `json:"email,omitempty"`
}

// CreateEmployeeRequest is the body of POST /api/v1/organizations/:organizationID/employees.
type CreateEmployeeRequest struct {
	Name     string `json:"name"`
	Position string `json:"position"`
}

// CreateProductRequest is the body of POST /api/v1/products.
type CreateProductRequest struct {
	OrganizationID string          `json:"organization_id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	Price          decimal.Decimal `json:"price"`
	Quantity       decimal.Decimal `json:"quantity"`
}

// UpdateProductRequest is the body of PUT /api/v1/products/:productID.
type UpdateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
}

// AdjustStockRequest is the body of POST /api/v1/products/:productID/stock.
// A positive delta is an intake, a negative delta is a write-off.
type AdjustStockRequest struct {
	Delta decimal.Decimal `json:"delta"`
}

// CreateOrderRequest is the body of POST /api/v1/orders. The first item is
// part of order creation; the seller is derived from the product.
type CreateOrderRequest struct {
	BuyerID    string          `json:"buyer_id"`
	EmployeeID string          `json:"employee_id"`
	ProductID  string          `json:"product_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	Comments   string          `json:"comments,omitempty"`
}

// AddOrderItemRequest is the body of POST /api/v1/orders/:orderID/items.
type AddOrderItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// ChangeOrderItemQuantityRequest is the body of
// PATCH /api/v1/orders/:orderID/items/:itemID.
type ChangeOrderItemQuantityRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}

// Organization is the JSON view of an organization aggregate.
type Organization struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	INN     string `json:"inn"`
	KPP     string `json:"kpp,omitempty"`
	Address string `json:"address,omitempty"`
	Email   string `json:"email,omitempty"`
}

// Employee is the JSON view of an employee.
type Employee struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organization_id"`
	Name           string `json:"name"`
	Position       string `json:"position"`
	Email          string `json:"email,omitempty"`
}

// Product is the JSON view of a product with both stock buckets.
type Product struct {
	ID             string          `json:"id"`
	OrganizationID string          `json:"organization_id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	Quantity       decimal.Decimal `json:"quantity"`
	Reserved       decimal.Decimal `json:"reserved"`
	Price          decimal.Decimal `json:"price"`
}

// Order is the JSON view of an order, with items when loaded individually.
type Order struct {
	ID               string          `json:"id"`
	OrderNumber      string          `json:"order_number"`
	BuyerID          string          `json:"buyer_id"`
	SellerID         string          `json:"seller_id"`
	EmployeeID       string          `json:"employee_id"`
	Status           string          `json:"status"`
	OrderDate        time.Time       `json:"order_date"`
	StatusChangeDate time.Time       `json:"status_change_date"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	Comments         string          `json:"comments,omitempty"`
	DocumentID       *string         `json:"document_id,omitempty"`
	Items            []OrderItem     `json:"items,omitempty"`
}

// OrderItem is one line of an order view.
type OrderItem struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Amount    decimal.Decimal `json:"amount"`
}

// Document is the JSON view of an accounting document.
type Document struct {
	ID             string          `json:"id"`
	DocumentNumber string          `json:"document_number"`
	DocumentDate   time.Time       `json:"document_date"`
	SellerID       string          `json:"seller_id"`
	BuyerID        string          `json:"buyer_id"`
	EmployeeID     string          `json:"employee_id"`
	OrderID        string          `json:"order_id"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Items          []DocumentItem  `json:"items,omitempty"`
}

// DocumentItem is one line of a document view.
type DocumentItem struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Amount    decimal.Decimal `json:"amount"`
}

// NegativeStock is one row of the inventory audit view.
type NegativeStock struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Reserved decimal.Decimal `json:"reserved"`
}

func orderFromListResponse(r queries.GetOrdersQueryResponse) Order {
	var documentID *string
	if r.DocumentID != nil {
		s := r.DocumentID.String()
		documentID = &s
	}

	return Order{
		ID:               r.ID.String(),
		OrderNumber:      r.OrderNumber,
		BuyerID:          r.BuyerID.String(),
		SellerID:         r.SellerID.String(),
		EmployeeID:       r.EmployeeID.String(),
		Status:           r.Status,
		OrderDate:        r.OrderDate,
		StatusChangeDate: r.StatusChangeDate,
		TotalAmount:      r.TotalAmount,
		Comments:         r.Comments,
		DocumentID:       documentID,
	}
}

func orderFromResponse(r queries.GetOrderQueryResponse) Order {
	var documentID *string
	if r.DocumentID != nil {
		s := r.DocumentID.String()
		documentID = &s
	}

	items := make([]OrderItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, OrderItem{
			ID:        item.ID.String(),
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			Price:     item.Price,
			Amount:    item.Amount,
		})
	}

	return Order{
		ID:               r.ID.String(),
		OrderNumber:      r.OrderNumber,
		BuyerID:          r.BuyerID.String(),
		SellerID:         r.SellerID.String(),
		EmployeeID:       r.EmployeeID.String(),
		Status:           r.Status,
		OrderDate:        r.OrderDate,
		StatusChangeDate: r.StatusChangeDate,
		TotalAmount:      r.TotalAmount,
		Comments:         r.Comments,
		DocumentID:       documentID,
		Items:            items,
	}
}

func documentFromListResponse(r queries.GetDocumentsQueryResponse) Document {
	return Document{
		ID:             r.ID.String(),
		DocumentNumber: r.DocumentNumber,
		DocumentDate:   r.DocumentDate,
		SellerID:       r.SellerID.String(),
		BuyerID:        r.BuyerID.String(),
		EmployeeID:     r.EmployeeID.String(),
		OrderID:        r.OrderID.String(),
		TotalAmount:    r.TotalAmount,
	}
}

func documentFromResponse(r queries.GetDocumentQueryResponse) Document {
	items := make([]DocumentItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, DocumentItem{
			ID:        item.ID.String(),
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			Price:     item.Price,
			Amount:    item.Amount,
		})
	}

	return Document{
		ID:             r.ID.String(),
		DocumentNumber: r.DocumentNumber,
		DocumentDate:   r.DocumentDate,
		SellerID:       r.SellerID.String(),
		BuyerID:        r.BuyerID.String(),
		EmployeeID:     r.EmployeeID.String(),
		OrderID:        r.OrderID.String(),
		TotalAmount:    r.TotalAmount,
		Items:          items,
	}
}

func productFromResponse(r queries.GetProductsQueryResponse) Product {
	return Product{
		ID:             r.ID.String(),
		OrganizationID: r.OrganizationID.String(),
		Name:           r.Name,
		Description:    r.Description,
		Quantity:       r.Quantity,
		Reserved:       r.Reserved,
		Price:          r.Price,
	}
}

func organizationFromResponse(r queries.GetOrganizationsQueryResponse) Organization {
	return Organization{
		ID:      r.ID.String(),
		Name:    r.Name,
		INN:     r.INN,
		KPP:     r.KPP,
		Address: r.Address,
		Email:   r.Email,
	}
}

func employeeFromResponse(r queries.GetEmployeesQueryResponse) Employee {
	return Employee{
		ID:             r.ID.String(),
		OrganizationID: r.OrganizationID.String(),
		Name:           r.Name,
		Position:       r.Position,
		Email:          r.Email,
	}
}

func orderFromDomain(o *order.Order) Order {
	var documentID *string
	if o.DocumentID() != nil {
		s := o.DocumentID().String()
		documentID = &s
	}

	orderItems := o.Items()
	items := make([]OrderItem, 0, len(orderItems))
	for _, item := range orderItems {
		items = append(items, OrderItem{
			ID:        item.ID().String(),
			ProductID: item.ProductID().String(),
			Quantity:  item.Quantity(),
			Price:     item.Price(),
			Amount:    item.Amount(),
		})
	}

	return Order{
		ID:               o.ID().String(),
		OrderNumber:      o.OrderNumber(),
		BuyerID:          o.BuyerID().String(),
		SellerID:         o.SellerID().String(),
		EmployeeID:       o.EmployeeID().String(),
		Status:           o.Status().String(),
		OrderDate:        o.OrderDate(),
		StatusChangeDate: o.StatusChangeDate(),
		TotalAmount:      o.TotalAmount(),
		Comments:         o.Comments(),
		DocumentID:       documentID,
		Items:            items,
	}
}

func productFromDomain(p *product.Product) Product {
	return Product{
		ID:             p.ID().String(),
		OrganizationID: p.OrganizationID().String(),
		Name:           p.Name(),
		Description:    p.Description(),
		Quantity:       p.Quantity(),
		Reserved:       p.Reserved(),
		Price:          p.Price(),
	}
}

func organizationFromDomain(o *organization.Organization) Organization {
	return Organization{
		ID:      o.ID().String(),
		Name:    o.Name(),
		INN:     o.INN(),
		KPP:     o.KPP(),
		Address: o.Address(),
		Email:   o.Email(),
	}
}

func employeeFromDomain(e *organization.Employee) Employee {
	return Employee{
		ID:             e.ID().String(),
		OrganizationID: e.OrganizationID().String(),
		Name:           e.Name(),
		Position:       e.Position(),
		Email:          e.Email(),
	}
}

