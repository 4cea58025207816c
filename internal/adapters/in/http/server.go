// Package http exposes the application's commands and queries over a REST
// API. Handlers do no business logic themselves: they parse the request,
// dispatch a command or query, and translate the outcome into a response.
package http

import (
	"net/http"
	"time"

	"wholesale/internal/core/application/usecases/commands"
	"wholesale/internal/core/application/usecases/queries"
	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrganizationHandler      commands.CreateOrganizationCommandHandler
	updateOrganizationHandler      commands.UpdateOrganizationCommandHandler
	createEmployeeHandler          commands.CreateEmployeeCommandHandler
	createProductHandler           commands.CreateProductCommandHandler
	updateProductHandler           commands.UpdateProductCommandHandler
	adjustProductStockHandler      commands.AdjustProductStockCommandHandler
	deleteProductHandler           commands.DeleteProductCommandHandler
	createOrderHandler             commands.CreateOrderCommandHandler
	addOrderItemHandler            commands.AddOrderItemCommandHandler
	removeOrderItemHandler         commands.RemoveOrderItemCommandHandler
	changeOrderItemQuantityHandler commands.ChangeOrderItemQuantityCommandHandler
	confirmOrderHandler            commands.ConfirmOrderCommandHandler
	payOrderHandler                commands.PayOrderCommandHandler
	shipOrderHandler               commands.ShipOrderCommandHandler
	cancelOrderHandler             commands.CancelOrderCommandHandler

	// Query handlers
	getOrganizationsHandler queries.GetOrganizationsQueryHandler
	getEmployeesHandler     queries.GetEmployeesQueryHandler
	getOrdersHandler        queries.GetOrdersQueryHandler
	getOrderHandler         queries.GetOrderQueryHandler
	getProductsHandler      queries.GetProductsQueryHandler
	getDocumentsHandler     queries.GetDocumentsQueryHandler
	getDocumentHandler      queries.GetDocumentQueryHandler
	getNegativeStockHandler queries.GetNegativeStockQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrganizationHandler commands.CreateOrganizationCommandHandler,
	updateOrganizationHandler commands.UpdateOrganizationCommandHandler,
	createEmployeeHandler commands.CreateEmployeeCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	updateProductHandler commands.UpdateProductCommandHandler,
	adjustProductStockHandler commands.AdjustProductStockCommandHandler,
	deleteProductHandler commands.DeleteProductCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	addOrderItemHandler commands.AddOrderItemCommandHandler,
	removeOrderItemHandler commands.RemoveOrderItemCommandHandler,
	changeOrderItemQuantityHandler commands.ChangeOrderItemQuantityCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	payOrderHandler commands.PayOrderCommandHandler,
	shipOrderHandler commands.ShipOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrganizationsHandler queries.GetOrganizationsQueryHandler,
	getEmployeesHandler queries.GetEmployeesQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getProductsHandler queries.GetProductsQueryHandler,
	getDocumentsHandler queries.GetDocumentsQueryHandler,
	getDocumentHandler queries.GetDocumentQueryHandler,
	getNegativeStockHandler queries.GetNegativeStockQueryHandler,
) *Server {
	return &Server{
		createOrganizationHandler:      createOrganizationHandler,
		updateOrganizationHandler:      updateOrganizationHandler,
		createEmployeeHandler:          createEmployeeHandler,
		createProductHandler:           createProductHandler,
		updateProductHandler:           updateProductHandler,
		adjustProductStockHandler:      adjustProductStockHandler,
		deleteProductHandler:           deleteProductHandler,
		createOrderHandler:             createOrderHandler,
		addOrderItemHandler:            addOrderItemHandler,
		removeOrderItemHandler:         removeOrderItemHandler,
		changeOrderItemQuantityHandler: changeOrderItemQuantityHandler,
		confirmOrderHandler:            confirmOrderHandler,
		payOrderHandler:                payOrderHandler,
		shipOrderHandler:               shipOrderHandler,
		cancelOrderHandler:             cancelOrderHandler,
		getOrganizationsHandler:        getOrganizationsHandler,
		getEmployeesHandler:            getEmployeesHandler,
		getOrdersHandler:               getOrdersHandler,
		getOrderHandler:                getOrderHandler,
		getProductsHandler:             getProductsHandler,
		getDocumentsHandler:            getDocumentsHandler,
		getDocumentHandler:             getDocumentHandler,
		getNegativeStockHandler:        getNegativeStockHandler,
	}
}

// RegisterRoutes binds every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/organizations", s.CreateOrganization)
	api.GET("/organizations", s.GetOrganizations)
	api.PUT("/organizations/:organizationID", s.UpdateOrganization)
	api.POST("/organizations/:organizationID/employees", s.CreateEmployee)
	api.GET("/organizations/:organizationID/employees", s.GetEmployees)

	api.POST("/products", s.CreateProduct)
	api.GET("/products", s.GetProducts)
	api.GET("/products/negative-stock", s.GetNegativeStock)
	api.PUT("/products/:productID", s.UpdateProduct)
	api.POST("/products/:productID/stock", s.AdjustProductStock)
	api.DELETE("/products/:productID", s.DeleteProduct)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:orderID", s.GetOrder)
	api.POST("/orders/:orderID/items", s.AddOrderItem)
	api.PATCH("/orders/:orderID/items/:itemID", s.ChangeOrderItemQuantity)
	api.DELETE("/orders/:orderID/items/:itemID", s.RemoveOrderItem)
	api.POST("/orders/:orderID/confirm", s.ConfirmOrder)
	api.POST("/orders/:orderID/pay", s.PayOrder)
	api.POST("/orders/:orderID/ship", s.ShipOrder)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)

	api.GET("/documents", s.GetDocuments)
	api.GET("/documents/:documentID", s.GetDocument)
}

// CreateOrganization handles POST /api/v1/organizations.
func (s *Server) CreateOrganization(ctx echo.Context) error {
	var req CreateOrganizationRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateOrganizationCommand(
		kernel.NewUUID(), req.Name, req.INN, req.KPP, req.Address, req.Email)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrganizationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, organizationFromDomain(created))
}

// UpdateOrganization handles PUT /api/v1/organizations/:organizationID.
func (s *Server) UpdateOrganization(ctx echo.Context) error {
	organizationID, err := kernel.UUIDFromString(ctx.Param("organizationID"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateOrganizationRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateOrganizationCommand(organizationID, req.KPP, req.Address, req.Email)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateOrganizationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, organizationFromDomain(updated))
}

// CreateEmployee handles POST /api/v1/organizations/:organizationID/employees.
func (s *Server) CreateEmployee(ctx echo.Context) error {
	organizationID, err := kernel.UUIDFromString(ctx.Param("organizationID"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req CreateEmployeeRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateEmployeeCommand(kernel.NewUUID(), organizationID, req.Name, req.Position)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createEmployeeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, employeeFromDomain(created))
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req CreateProductRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	organizationID, err := kernel.UUIDFromString(req.OrganizationID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), organizationID, req.Name, req.Description, req.Price, req.Quantity)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, productFromDomain(created))
}

// UpdateProduct handles PUT /api/v1/products/:productID.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("productID"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateProductRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateProductCommand(productID, req.Name, req.Description, req.Price)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productFromDomain(updated))
}

// AdjustProductStock handles POST /api/v1/products/:productID/stock.
func (s *Server) AdjustProductStock(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("productID"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req AdjustStockRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAdjustProductStockCommand(productID, req.Delta)
	if err != nil {
		return writeError(ctx, err)
	}

	adjusted, err := s.adjustProductStockHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productFromDomain(adjusted))
}

// DeleteProduct handles DELETE /api/v1/products/:productID.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("productID"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetProducts handles GET /api/v1/products.
func (s *Server) GetProducts(ctx echo.Context) error {
	query := queries.NewGetProductsQuery()

	if raw := ctx.QueryParam("organization_id"); raw != "" {
		organizationID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		query = query.ForOrganization(organizationID)
	}

	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Product, 0, len(products))
	for _, p := range products {
		response = append(response, productFromResponse(p))
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetNegativeStock handles GET /api/v1/products/negative-stock.
// An empty result means the inventory ledger is consistent.
func (s *Server) GetNegativeStock(ctx echo.Context) error {
	rows, err := s.getNegativeStockHandler.Handle(ctx.Request().Context(), queries.NewGetNegativeStockQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]NegativeStock, 0, len(rows))
	for _, row := range rows {
		response = append(response, NegativeStock{
			ID:       row.ID.String(),
			Name:     row.Name,
			Quantity: row.Quantity,
			Reserved: row.Reserved,
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	buyerID, err := kernel.UUIDFromString(req.BuyerID)
	if err != nil {
		return writeError(ctx, err)
	}
	employeeID, err := kernel.UUIDFromString(req.EmployeeID)
	if err != nil {
		return writeError(ctx, err)
	}
	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), buyerID, employeeID, productID, req.Quantity, req.Comments)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromDomain(created))
}

// AddOrderItem handles POST /api/v1/orders/:orderID/items.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req AddOrderItemRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAddOrderItemCommand(orderID, productID, req.Quantity)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.addOrderItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// ChangeOrderItemQuantity handles PATCH /api/v1/orders/:orderID/items/:itemID.
func (s *Server) ChangeOrderItemQuantity(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}
	itemID, err := kernel.UUIDFromString(ctx.Param("itemID"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req ChangeOrderItemQuantityRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewChangeOrderItemQuantityCommand(orderID, itemID, req.Quantity)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.changeOrderItemQuantityHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// RemoveOrderItem handles DELETE /api/v1/orders/:orderID/items/:itemID.
func (s *Server) RemoveOrderItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}
	itemID, err := kernel.UUIDFromString(ctx.Param("itemID"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRemoveOrderItemCommand(orderID, itemID)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.removeOrderItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// ConfirmOrder handles POST /api/v1/orders/:orderID/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	confirmed, err := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(confirmed))
}

// PayOrder handles POST /api/v1/orders/:orderID/pay.
func (s *Server) PayOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewPayOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	paid, err := s.payOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(paid))
}

// ShipOrder handles POST /api/v1/orders/:orderID/ship.
func (s *Server) ShipOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewShipOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	shipped, err := s.shipOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(shipped))
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(cancelled))
}

// GetOrders handles GET /api/v1/orders. Every query parameter is an optional
// filter; filters combine with AND.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetOrdersQuery()

	if raw := ctx.QueryParam("buyer_id"); raw != "" {
		buyerID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		query = query.ForBuyer(buyerID)
	}
	if raw := ctx.QueryParam("seller_id"); raw != "" {
		sellerID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		query = query.ForSeller(sellerID)
	}
	if raw := ctx.QueryParam("employee_id"); raw != "" {
		employeeID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		query = query.ForEmployee(employeeID)
	}
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		query = query.WithStatus(status)
	}
	if raw := ctx.QueryParam("exclude_status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		query = query.ExcludingStatus(status)
	}
	if raw := ctx.QueryParam("product_id"); raw != "" {
		productID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		query = query.ContainingProduct(productID)
	}

	from, err := parseTimeParam(ctx.QueryParam("from"))
	if err != nil {
		return writeBadRequest(ctx, "from must be an RFC 3339 timestamp")
	}
	to, err := parseTimeParam(ctx.QueryParam("to"))
	if err != nil {
		return writeBadRequest(ctx, "to must be an RFC 3339 timestamp")
	}
	if !from.IsZero() || !to.IsZero() {
		query = query.WithinPeriod(from, to)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Order, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderFromListResponse(o))
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:orderID.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	loaded, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromResponse(loaded))
}

// GetDocuments handles GET /api/v1/documents.
func (s *Server) GetDocuments(ctx echo.Context) error {
	query := queries.NewGetDocumentsQuery()

	if raw := ctx.QueryParam("seller_id"); raw != "" {
		sellerID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		query = query.ForSeller(sellerID)
	}
	if raw := ctx.QueryParam("buyer_id"); raw != "" {
		buyerID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		query = query.ForBuyer(buyerID)
	}

	documents, err := s.getDocumentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Document, 0, len(documents))
	for _, d := range documents {
		response = append(response, documentFromListResponse(d))
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrganizations handles GET /api/v1/organizations.
func (s *Server) GetOrganizations(ctx echo.Context) error {
	organizations, err := s.getOrganizationsHandler.Handle(
		ctx.Request().Context(), queries.NewGetOrganizationsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Organization, 0, len(organizations))
	for _, o := range organizations {
		response = append(response, organizationFromResponse(o))
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetEmployees handles GET /api/v1/organizations/:organizationID/employees.
func (s *Server) GetEmployees(ctx echo.Context) error {
	organizationID, err := kernel.UUIDFromString(ctx.Param("organizationID"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetEmployeesQuery(organizationID)
	if err != nil {
		return writeError(ctx, err)
	}

	employees, err := s.getEmployeesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Employee, 0, len(employees))
	for _, e := range employees {
		response = append(response, employeeFromResponse(e))
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetDocument handles GET /api/v1/documents/:documentID.
func (s *Server) GetDocument(ctx echo.Context) error {
	documentID, err := kernel.UUIDFromString(ctx.Param("documentID"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetDocumentQuery(documentID)
	if err != nil {
		return writeError(ctx, err)
	}

	loaded, err := s.getDocumentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, documentFromResponse(loaded))
}

func parseTimeParam(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, raw)
}
