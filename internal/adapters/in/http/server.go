// Package http provides the REST surface of the dispatch service.
// Handlers translate requests into commands and queries and map domain
// errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// errorResponse is the uniform error body for all endpoints.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	assignOrderHandler          commands.AssignOrderCommandHandler
	unassignOrderHandler        commands.UnassignOrderCommandHandler
	changeDeliveryStatusHandler commands.ChangeDeliveryStatusCommandHandler
	notifyOrderCreatedHandler   commands.NotifyOrderCreatedCommandHandler
	markNotificationHandler     commands.MarkNotificationReadCommandHandler
	markNotificationsHandler    commands.MarkNotificationsReadCommandHandler
	markAllNotificationsHandler commands.MarkAllNotificationsReadCommandHandler

	// Query handlers
	getDeliveryPersonOrdersHandler queries.GetDeliveryPersonOrdersQueryHandler
	getAllOrdersHandler            queries.GetAllOrdersQueryHandler
	getNotificationsHandler        queries.GetNotificationsQueryHandler
	getUnreadCountHandler          queries.GetUnreadCountQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	assignOrderHandler commands.AssignOrderCommandHandler,
	unassignOrderHandler commands.UnassignOrderCommandHandler,
	changeDeliveryStatusHandler commands.ChangeDeliveryStatusCommandHandler,
	notifyOrderCreatedHandler commands.NotifyOrderCreatedCommandHandler,
	markNotificationHandler commands.MarkNotificationReadCommandHandler,
	markNotificationsHandler commands.MarkNotificationsReadCommandHandler,
	markAllNotificationsHandler commands.MarkAllNotificationsReadCommandHandler,
	getDeliveryPersonOrdersHandler queries.GetDeliveryPersonOrdersQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getNotificationsHandler queries.GetNotificationsQueryHandler,
	getUnreadCountHandler queries.GetUnreadCountQueryHandler,
) *Server {
	return &Server{
		assignOrderHandler:             assignOrderHandler,
		unassignOrderHandler:           unassignOrderHandler,
		changeDeliveryStatusHandler:    changeDeliveryStatusHandler,
		notifyOrderCreatedHandler:      notifyOrderCreatedHandler,
		markNotificationHandler:        markNotificationHandler,
		markNotificationsHandler:       markNotificationsHandler,
		markAllNotificationsHandler:    markAllNotificationsHandler,
		getDeliveryPersonOrdersHandler: getDeliveryPersonOrdersHandler,
		getAllOrdersHandler:            getAllOrdersHandler,
		getNotificationsHandler:        getNotificationsHandler,
		getUnreadCountHandler:          getUnreadCountHandler,
	}
}

// RegisterRoutes wires all endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders/:id/assignment", s.AssignOrder)
	api.DELETE("/orders/:id/assignment", s.UnassignOrder)
	api.PUT("/orders/:id/assignment/status", s.ChangeDeliveryStatus)
	api.POST("/orders/:id/notify-created", s.NotifyOrderCreated)

	api.GET("/delivery-persons/:id/orders", s.GetDeliveryPersonOrders)
	api.GET("/orders", s.GetAllOrders)

	api.GET("/notifications", s.GetNotifications)
	api.GET("/notifications/unread-count", s.GetUnreadCount)
	api.PUT("/notifications/:id/read", s.MarkNotificationRead)
	api.PUT("/notifications/read", s.MarkNotificationsRead)
	api.PUT("/notifications/read-all", s.MarkAllNotificationsRead)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// AssignOrder handles POST /api/v1/orders/:id/assignment - assigns or
// re-targets an order.
func (s *Server) AssignOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body struct {
		DeliveryPersonID int64 `json:"delivery_person_id"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, body.DeliveryPersonID)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	if handleErr := s.assignOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UnassignOrder handles DELETE /api/v1/orders/:id/assignment - removes the
// assignment. Unassigning an unassigned order succeeds silently.
func (s *Server) UnassignOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewUnassignOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if _, handleErr := s.unassignOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeDeliveryStatus handles PUT /api/v1/orders/:id/assignment/status -
// applies a delivery status transition on behalf of a delivery person.
// An ownership mismatch is deliberately indistinguishable from success.
func (s *Server) ChangeDeliveryStatus(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body struct {
		DeliveryPersonID int64  `json:"delivery_person_id"`
		Status           string `json:"status"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := assignment.StatusFromKey(body.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewChangeDeliveryStatusCommand(orderID, body.DeliveryPersonID, status)
	if err != nil {
		return badRequest(ctx, "Invalid status change data: "+err.Error())
	}

	if _, handleErr := s.changeDeliveryStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// NotifyOrderCreated handles POST /api/v1/orders/:id/notify-created - the
// hook the order creation collaborator calls after it persists a new order.
func (s *Server) NotifyOrderCreated(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewNotifyOrderCreatedCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if handleErr := s.notifyOrderCreatedHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDeliveryPersonOrders handles GET /api/v1/delivery-persons/:id/orders -
// lists the orders currently assigned to one delivery person.
func (s *Server) GetDeliveryPersonOrders(ctx echo.Context) error {
	deliveryPersonID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid delivery person id")
	}

	query, err := queries.NewGetDeliveryPersonOrdersQuery(deliveryPersonID, ctx.QueryParam("search"))
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	orders, err := s.getDeliveryPersonOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]deliveryPersonOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = deliveryPersonOrderResponse{
			OrderID:     o.OrderID,
			OrderNumber: o.OrderNumber,
			TotalAmount: o.TotalAmount,
			Status:      o.StatusKey,
			ConfirmedAt: o.ConfirmedAt,
			Items:       toItemResponses(o.Items),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAllOrders handles GET /api/v1/orders - the back-office order list with
// optional search and date range filters.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	from, err := parseDateParam(ctx.QueryParam("from"))
	if err != nil {
		return badRequest(ctx, "Invalid from date")
	}
	to, err := parseDateParam(ctx.QueryParam("to"))
	if err != nil {
		return badRequest(ctx, "Invalid to date")
	}

	query := queries.NewGetAllOrdersQuery(ctx.QueryParam("search"), from, to)

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]adminOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = adminOrderResponse{
			OrderID:          o.OrderID,
			OrderNumber:      o.OrderNumber,
			CustomerID:       o.CustomerID,
			TotalAmount:      o.TotalAmount,
			Status:           o.StatusKey,
			DeliveryPersonID: o.DeliveryPersonID,
			CreatedAt:        o.CreatedAt,
			Items:            toItemResponses(o.Items),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetNotifications handles GET /api/v1/notifications - one audience's
// notifications, newest first.
func (s *Server) GetNotifications(ctx echo.Context) error {
	audience, err := audienceFromQuery(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid audience: "+err.Error())
	}

	query, err := queries.NewGetNotificationsQuery(audience)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	notifications, err := s.getNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve notifications")
	}

	response := make([]notificationResponse, len(notifications))
	for i, n := range notifications {
		response[i] = notificationResponse{
			ID:          n.ID.String(),
			Title:       n.Title,
			OrderNumber: n.OrderNumber,
			Status:      n.StatusKey,
			EventType:   n.EventType,
			OrderID:     n.OrderID,
			IsRead:      n.IsRead,
			CreatedAt:   n.CreatedAt,
			ReadAt:      n.ReadAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUnreadCount handles GET /api/v1/notifications/unread-count.
func (s *Server) GetUnreadCount(ctx echo.Context) error {
	audience, err := audienceFromQuery(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid audience: "+err.Error())
	}

	query, err := queries.NewGetUnreadCountQuery(audience)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	count, err := s.getUnreadCountHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to count notifications")
	}

	return ctx.JSON(http.StatusOK, map[string]int64{"count": count})
}

// MarkNotificationRead handles PUT /api/v1/notifications/:id/read.
func (s *Server) MarkNotificationRead(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid notification id")
	}

	var body audienceBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	audience, err := body.toAudience()
	if err != nil {
		return badRequest(ctx, "Invalid audience: "+err.Error())
	}

	cmd, err := commands.NewMarkNotificationReadCommand(id, audience)
	if err != nil {
		return badRequest(ctx, "Invalid command: "+err.Error())
	}

	updated, err := s.markNotificationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to mark notification read")
	}

	return ctx.JSON(http.StatusOK, map[string]int64{"updated": updated})
}

// MarkNotificationsRead handles PUT /api/v1/notifications/read - batch
// read-state update scoped to one audience.
func (s *Server) MarkNotificationsRead(ctx echo.Context) error {
	var body struct {
		audienceBody
		IDs []string `json:"ids"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ids := make([]uuid.UUID, 0, len(body.IDs))
	for _, raw := range body.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(ctx, "Invalid notification id: "+raw)
		}
		ids = append(ids, id)
	}

	audience, err := body.toAudience()
	if err != nil {
		return badRequest(ctx, "Invalid audience: "+err.Error())
	}

	cmd, err := commands.NewMarkNotificationsReadCommand(ids, audience)
	if err != nil {
		return badRequest(ctx, "Invalid command: "+err.Error())
	}

	updated, err := s.markNotificationsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to mark notifications read")
	}

	return ctx.JSON(http.StatusOK, map[string]int64{"updated": updated})
}

// MarkAllNotificationsRead handles PUT /api/v1/notifications/read-all.
func (s *Server) MarkAllNotificationsRead(ctx echo.Context) error {
	var body audienceBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	audience, err := body.toAudience()
	if err != nil {
		return badRequest(ctx, "Invalid audience: "+err.Error())
	}

	cmd, err := commands.NewMarkAllNotificationsReadCommand(audience)
	if err != nil {
		return badRequest(ctx, "Invalid command: "+err.Error())
	}

	updated, err := s.markAllNotificationsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to mark notifications read")
	}

	return ctx.JSON(http.StatusOK, map[string]int64{"updated": updated})
}

// commandError maps lifecycle command errors onto HTTP status codes.
func (s *Server) commandError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrOrderNotFound),
		errors.Is(err, commands.ErrAssignmentNotFound),
		errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, commands.ErrAssignmentCompleted):
		return ctx.JSON(http.StatusConflict, errorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return internalError(ctx, "Operation failed")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, errorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

// pathID parses a positive integer path parameter.
func pathID(ctx echo.Context, name string) (int64, error) {
	return strconv.ParseInt(ctx.Param(name), 10, 64)
}

// parseDateParam parses an optional RFC 3339 date or datetime query value.
func parseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		d, dErr := time.Parse("2006-01-02", value)
		if dErr != nil {
			return nil, err
		}
		t = d
	}
	return &t, nil
}

// audienceBody carries the audience of read-state updates.
type audienceBody struct {
	AudienceType string `json:"audience_type"`
	AudienceID   *int64 `json:"audience_id,omitempty"`
}

func (b audienceBody) toAudience() (notification.Audience, error) {
	kind, err := notification.AudienceKindFromKey(b.AudienceType)
	if err != nil {
		return notification.Audience{}, err
	}
	return notification.NewAudience(kind, b.AudienceID)
}

// audienceFromQuery builds an audience from audience_type / audience_id
// query parameters.
func audienceFromQuery(ctx echo.Context) (notification.Audience, error) {
	kind, err := notification.AudienceKindFromKey(ctx.QueryParam("audience_type"))
	if err != nil {
		return notification.Audience{}, err
	}

	var id *int64
	if raw := ctx.QueryParam("audience_id"); raw != "" {
		parsed, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			return notification.Audience{}, parseErr
		}
		id = &parsed
	}

	return notification.NewAudience(kind, id)
}

// Response DTOs

type orderItemResponse struct {
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type deliveryPersonOrderResponse struct {
	OrderID     int64               `json:"order_id"`
	OrderNumber string              `json:"order_number"`
	TotalAmount float64             `json:"total_amount"`
	Status      string              `json:"status"`
	ConfirmedAt *time.Time          `json:"confirmed_at,omitempty"`
	Items       []orderItemResponse `json:"items"`
}

type adminOrderResponse struct {
	OrderID          int64               `json:"order_id"`
	OrderNumber      string              `json:"order_number"`
	CustomerID       int64               `json:"customer_id"`
	TotalAmount      float64             `json:"total_amount"`
	Status           string              `json:"status"`
	DeliveryPersonID *int64              `json:"delivery_person_id,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	Items            []orderItemResponse `json:"items"`
}

type notificationResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	OrderNumber string     `json:"order_number"`
	Status      string     `json:"status,omitempty"`
	EventType   string     `json:"event_type"`
	OrderID     int64      `json:"order_id"`
	IsRead      bool       `json:"is_read"`
	CreatedAt   time.Time  `json:"created_at"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
}

func toItemResponses(items []queries.OrderItemView) []orderItemResponse {
	out := make([]orderItemResponse, len(items))
	for i, item := range items {
		out[i] = orderItemResponse{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		}
	}
	return out
}
