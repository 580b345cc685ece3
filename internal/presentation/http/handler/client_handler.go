package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/softcrates/fieldsync/internal/application/proxy"
	"github.com/softcrates/fieldsync/internal/presentation/http/dto/response"
)

// ClientHandler handles client account endpoints
type ClientHandler struct {
	clients        *proxy.ClientProxy
	deliveryPoints *proxy.DeliveryPointProxy
	discounts      *proxy.DiscountProxy
}

// NewClientHandler creates a new client handler
func NewClientHandler(clients *proxy.ClientProxy, deliveryPoints *proxy.DeliveryPointProxy, discounts *proxy.DiscountProxy) *ClientHandler {
	return &ClientHandler{clients: clients, deliveryPoints: deliveryPoints, discounts: discounts}
}

// Search handles GET /clients/search?name=
func (h *ClientHandler) Search(c *gin.Context) {
	term := c.Query("name")
	if term == "" {
		response.BadRequest(c, "Search term is required")
		return
	}

	clients, err := h.clients.Search(c.Request.Context(), term)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Clients retrieved", clients)
}

// Get handles GET /clients/:id
func (h *ClientHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	client, err := h.clients.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if client == nil {
		response.NotFound(c, "Client not found")
		return
	}
	response.OK(c, "Client retrieved", client)
}

// Summary handles GET /clients/:id/summary
func (h *ClientHandler) Summary(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	summary, err := h.clients.Summary(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if summary == nil {
		response.NotFound(c, "Client not found")
		return
	}
	response.OK(c, "Client summary retrieved", summary)
}

// DeliveryPoints handles GET /clients/:id/delivery-points
func (h *ClientHandler) DeliveryPoints(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	points, err := h.deliveryPoints.ListByClient(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Delivery points retrieved", points)
}

// Catalog handles GET /clients/:id/articles, the catalog annotated with the
// client's base discounts
func (h *ClientHandler) Catalog(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	articles, err := h.discounts.ArticlesWithDiscount(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Client catalog retrieved", articles)
}
