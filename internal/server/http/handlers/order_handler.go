package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/grubdash/internal/domain/model"
	"github.com/polkiloo/grubdash/internal/server/http/dto"
	"github.com/polkiloo/grubdash/internal/usecase"
)

// OrderHandler manages order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.ListOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}
	c.JSON(http.StatusOK, dto.OrderListResponse{Data: orders})
}

// Read handles GET /orders/:orderId.
func (h *OrderHandler) Read(c *gin.Context) {
	order, err := h.facade.ReadOrder(c.Request.Context(), c.Param(OrderIDParam))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OrderResponse{Data: *order})
}

// Create handles POST /orders.
func (h *OrderHandler) Create(c *gin.Context) {
	in, ok := bindOrderInput(c)
	if !ok {
		return
	}
	order, err := h.facade.CreateOrder(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OrderResponse{Data: *order})
}

// Update handles PUT /orders/:orderId.
func (h *OrderHandler) Update(c *gin.Context) {
	in, ok := bindOrderInput(c)
	if !ok {
		return
	}
	in.OrderID = c.Param(OrderIDParam)
	order, err := h.facade.UpdateOrder(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OrderResponse{Data: *order})
}

// Delete handles DELETE /orders/:orderId.
func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteOrder(c.Request.Context(), c.Param(OrderIDParam)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// bindOrderInput decodes the request envelope. An empty body counts as an empty payload.
func bindOrderInput(c *gin.Context) (usecase.OrderInput, bool) {
	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		_ = c.Error(err)
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: msgInvalidBody})
		return usecase.OrderInput{}, false
	}
	return usecase.OrderInput{
		ID:           req.Data.ID,
		DeliverTo:    req.Data.DeliverTo,
		MobileNumber: req.Data.MobileNumber,
		Status:       req.Data.Status,
		Dishes:       req.Data.Dishes,
	}, true
}
