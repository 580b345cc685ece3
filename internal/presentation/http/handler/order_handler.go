package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/softcrates/fieldsync/internal/application/proxy"
	"github.com/softcrates/fieldsync/internal/application/service"
	"github.com/softcrates/fieldsync/internal/presentation/http/dto/request"
	"github.com/softcrates/fieldsync/internal/presentation/http/dto/response"
	"github.com/softcrates/fieldsync/pkg/pagination"
)

// OrderHandler handles order endpoints
type OrderHandler struct {
	orderService *service.OrderService
	orders       *proxy.OrderProxy
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, orders *proxy.OrderProxy) *OrderHandler {
	return &OrderHandler{orderService: orderService, orders: orders}
}

// Create handles POST /orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	input := &service.CreateOrderInput{
		ClientID:      req.ClientID,
		DeliveryPoint: req.DeliveryPoint,
		DocType:       req.DocType,
		Branch:        req.Branch,
		OrderDate:     req.OrderDate,
		DeliveryDate:  req.DeliveryDate,
		Confirmed:     req.Confirmed,
	}
	for _, line := range req.Lines {
		input.Lines = append(input.Lines, service.CreateOrderLineInput{
			ArticleCode:  line.ArticleCode,
			Quantity:     line.Quantity,
			DeliveryDate: line.DeliveryDate,
		})
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Order created", order)
}

// Get handles GET /orders/:csid
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.orders.GetByCSID(c.Request.Context(), c.Param("csid"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if order == nil {
		response.NotFound(c, "Order not found")
		return
	}
	response.OK(c, "Order retrieved", order)
}

// History handles GET /clients/:id/orders
func (h *OrderHandler) History(c *gin.Context) {
	clientID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}
	params.Validate()

	result, err := h.orders.History(c.Request.Context(), clientID, params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Order history retrieved", result)
}
