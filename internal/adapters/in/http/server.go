// Package http exposes the order management use cases over REST.
// Every response uses the same envelope: {"success": true, "data": ...} on
// the happy path and {"success": false, "message": ...} on errors. Error
// classification is the controller's job: domain errors map to 404, 403,
// 409 or 400, everything else becomes a 500 with a fixed generic message.
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// HeaderUserID carries the authenticated caller's ID, set by the gateway's
// authentication middleware in front of this service.
const HeaderUserID = "X-User-Id"

// Handlers bundles the use case handlers the server dispatches to.
type Handlers struct {
	CreateOrder       commands.CreateOrderCommandHandler
	CancelOrder       commands.CancelOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	AddPayment        commands.AddPaymentCommandHandler
	AddDeliveryEvent  commands.AddDeliveryEventCommandHandler

	ListOrders           queries.ListOrdersQueryHandler
	GetOrder             queries.GetOrderQueryHandler
	GetCustomerOrders    queries.GetCustomerOrdersQueryHandler
	GetCustomerOrder     queries.GetCustomerOrderQueryHandler
	GetCustomerAddresses queries.GetCustomerAddressesQueryHandler
	GetDashboardSummary  queries.GetDashboardSummaryQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates an HTTP server around the given use case handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes attaches all routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/", s.Home)

	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.GetMyOrders)
	v1.GET("/orders/:orderID", s.GetMyOrder)
	v1.POST("/orders/:orderID/cancel", s.CancelMyOrder)
	v1.GET("/addresses", s.GetMyAddresses)

	admin := v1.Group("/admin")
	admin.GET("/orders", s.AdminListOrders)
	admin.GET("/orders/:orderID", s.AdminGetOrder)
	admin.PUT("/orders/:orderID/status", s.AdminUpdateOrderStatus)
	admin.POST("/orders/:orderID/payments", s.AdminAddPayment)
	admin.POST("/orders/:orderID/delivery-history", s.AdminAddDeliveryEvent)
	admin.GET("/dashboard", s.AdminDashboard)
}

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func respondData(ctx echo.Context, code int, data any) error {
	return ctx.JSON(code, envelope{Success: true, Data: data})
}

func respondError(ctx echo.Context, err error) error {
	code, message := classifyError(err)
	return ctx.JSON(code, envelope{Success: false, Message: message})
}

func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, envelope{Success: false, Message: message})
}

// classifyError maps domain errors to HTTP status codes. Unrecognized
// errors hide their text behind a generic message.
func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrPermissionDenied):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, errs.ErrInvalidState):
		return http.StatusConflict, err.Error()
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func callerID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(HeaderUserID)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(HeaderUserID + " header")
	}
	return kernel.UUIDFromString(raw)
}

func orderIDParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("orderID"))
}

func pagingParams(ctx echo.Context) (limit, offset int, err error) {
	if raw := ctx.QueryParam("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil {
			return 0, 0, errs.NewValueIsInvalidError("limit")
		}
	}
	if raw := ctx.QueryParam("offset"); raw != "" {
		if offset, err = strconv.Atoi(raw); err != nil {
			return 0, 0, errs.NewValueIsInvalidError("offset")
		}
	}
	return limit, offset, nil
}

type orderSummaryJSON struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Address    string    `json:"address"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type paymentJSON struct {
	ID            string          `json:"id"`
	Provider      string          `json:"provider"`
	Method        string          `json:"method"`
	AmountMinor   int64           `json:"amount_minor"`
	Status        string          `json:"status"`
	TransactionID *string         `json:"transaction_id"`
	RawPayload    json.RawMessage `json:"raw_payload,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

type deliveryEventJSON struct {
	Status     string    `json:"status"`
	Location   string    `json:"location,omitempty"`
	Note       string    `json:"note,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type orderDetailsJSON struct {
	orderSummaryJSON
	Payments        []paymentJSON       `json:"payments"`
	DeliveryHistory []deliveryEventJSON `json:"delivery_history"`
}

func toSummaryJSON(summary queries.OrderSummaryResponse) orderSummaryJSON {
	return orderSummaryJSON{
		ID:         summary.ID.String(),
		CustomerID: summary.CustomerID.String(),
		Address:    summary.Address,
		Status:     summary.Status,
		CreatedAt:  summary.CreatedAt,
		UpdatedAt:  summary.UpdatedAt,
	}
}

func toDetailsJSON(details *queries.OrderDetailsResponse) orderDetailsJSON {
	payments := make([]paymentJSON, 0, len(details.Payments))
	for _, p := range details.Payments {
		payments = append(payments, paymentJSON{
			ID:            p.ID.String(),
			Provider:      p.Provider,
			Method:        p.Method,
			AmountMinor:   p.AmountMinor,
			Status:        p.Status,
			TransactionID: p.TransactionID,
			RawPayload:    p.RawPayload,
			CreatedAt:     p.CreatedAt,
		})
	}

	history := make([]deliveryEventJSON, 0, len(details.DeliveryHistory))
	for _, e := range details.DeliveryHistory {
		history = append(history, deliveryEventJSON{
			Status:     e.Status,
			Location:   e.Location,
			Note:       e.Note,
			OccurredAt: e.OccurredAt,
		})
	}

	return orderDetailsJSON{
		orderSummaryJSON: orderSummaryJSON{
			ID:         details.ID.String(),
			CustomerID: details.CustomerID.String(),
			Address:    details.Address,
			Status:     details.Status,
			CreatedAt:  details.CreatedAt,
			UpdatedAt:  details.UpdatedAt,
		},
		Payments:        payments,
		DeliveryHistory: history,
	}
}

// Home handles GET / with basic service information.
func (s *Server) Home(ctx echo.Context) error {
	return respondData(ctx, http.StatusOK, map[string]string{
		"service": "shop",
		"status":  "ok",
	})
}

// CreateOrder handles POST /api/v1/orders. The caller becomes the owner.
func (s *Server) CreateOrder(ctx echo.Context) error {
	customerID, err := callerID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var body struct {
		Address string `json:"address"`
	}
	if err = ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, body.Address)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusCreated, map[string]string{"id": orderID.String()})
}

// GetMyOrders handles GET /api/v1/orders for the calling customer.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	customerID, err := callerID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	limit, offset, err := pagingParams(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID, ctx.QueryParam("status"), limit, offset)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.handlers.GetCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]orderSummaryJSON, 0, len(orders))
	for _, summary := range orders {
		response = append(response, toSummaryJSON(summary))
	}

	return respondData(ctx, http.StatusOK, response)
}

// GetMyOrder handles GET /api/v1/orders/:orderID for the calling customer.
func (s *Server) GetMyOrder(ctx echo.Context) error {
	customerID, err := callerID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCustomerOrderQuery(customerID, orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	details, err := s.handlers.GetCustomerOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, toDetailsJSON(details))
}

// CancelMyOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelMyOrder(ctx echo.Context) error {
	customerID, err := callerID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, map[string]string{
		"id":     orderID.String(),
		"status": order.StatusCancelled.String(),
	})
}

// GetMyAddresses handles GET /api/v1/addresses for the calling customer.
func (s *Server) GetMyAddresses(ctx echo.Context) error {
	customerID, err := callerID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCustomerAddressesQuery(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	addresses, err := s.handlers.GetCustomerAddresses.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, addresses)
}

// AdminListOrders handles GET /api/v1/admin/orders.
func (s *Server) AdminListOrders(ctx echo.Context) error {
	limit, offset, err := pagingParams(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var customerID *kernel.UUID
	if raw := ctx.QueryParam("customer_id"); raw != "" {
		id, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return respondError(ctx, idErr)
		}
		customerID = &id
	}

	query, err := queries.NewListOrdersQuery(ctx.QueryParam("status"), customerID, limit, offset)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]orderSummaryJSON, 0, len(orders))
	for _, summary := range orders {
		response = append(response, toSummaryJSON(summary))
	}

	return respondData(ctx, http.StatusOK, response)
}

// AdminGetOrder handles GET /api/v1/admin/orders/:orderID.
func (s *Server) AdminGetOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	details, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, toDetailsJSON(details))
}

// AdminUpdateOrderStatus handles PUT /api/v1/admin/orders/:orderID/status.
func (s *Server) AdminUpdateOrderStatus(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var body struct {
		Status string `json:"status"`
	}
	if err = ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.Status(body.Status))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, map[string]string{
		"id":     orderID.String(),
		"status": body.Status,
	})
}

// AdminAddPayment handles POST /api/v1/admin/orders/:orderID/payments.
func (s *Server) AdminAddPayment(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var body struct {
		Provider      string          `json:"provider"`
		Method        string          `json:"method"`
		AmountMinor   int64           `json:"amount_minor"`
		Status        string          `json:"status"`
		TransactionID *string         `json:"transaction_id"`
		RawPayload    json.RawMessage `json:"raw_payload"`
	}
	if err = ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAddPaymentCommand(
		orderID,
		body.Provider,
		body.Method,
		body.AmountMinor,
		body.Status,
		body.TransactionID,
		body.RawPayload,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AddPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusCreated, map[string]string{"order_id": orderID.String()})
}

// AdminAddDeliveryEvent handles POST /api/v1/admin/orders/:orderID/delivery-history.
func (s *Server) AdminAddDeliveryEvent(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var body struct {
		Status   string `json:"status"`
		Location string `json:"location"`
		Note     string `json:"note"`
	}
	if err = ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAddDeliveryEventCommand(orderID, body.Status, body.Location, body.Note)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AddDeliveryEvent.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusCreated, map[string]string{"order_id": orderID.String()})
}

// AdminDashboard handles GET /api/v1/admin/dashboard.
func (s *Server) AdminDashboard(ctx echo.Context) error {
	summary, err := s.handlers.GetDashboardSummary.Handle(
		ctx.Request().Context(),
		queries.NewGetDashboardSummaryQuery(),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	type statusCountJSON struct {
		Status string `json:"status"`
		Count  int64  `json:"count"`
	}

	counts := make([]statusCountJSON, 0, len(summary.StatusCounts))
	for _, bucket := range summary.StatusCounts {
		counts = append(counts, statusCountJSON{Status: bucket.Status, Count: bucket.Count})
	}

	return respondData(ctx, http.StatusOK, map[string]any{
		"total_orders":  summary.TotalOrders,
		"status_counts": counts,
	})
}
