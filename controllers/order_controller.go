package controllers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"food-delivery/models"
	"food-delivery/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// Create godoc
// @Summary Create order
// @Description Submit the cart contents as a new order; the payable total is recomputed server-side
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateOrderRequest true "Order data"
// @Success 201 {object} models.Order
// @Failure 400 {object} models.ErrorResponse
// @Router /orders [post]
func (ctrl *OrderController) Create(c *gin.Context) {
	userID := c.GetInt("user_id")
	userEmail := c.GetString("user_email")

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Restaurant, items and payment method are required", err)
		return
	}

	order, err := ctrl.orders.Submit(c.Request.Context(), userID, userEmail, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyOrder):
			respondError(c, http.StatusBadRequest, "Order must contain at least one item", nil)
		case errors.Is(err, services.ErrInvalidPayment):
			respondError(c, http.StatusBadRequest, "Invalid payment method", nil)
		case errors.Is(err, services.ErrNotFound):
			respondError(c, http.StatusNotFound, "Menu item not found", nil)
		case errors.Is(err, services.ErrItemUnavailable):
			respondError(c, http.StatusBadRequest, "One or more items are no longer available", nil)
		case errors.Is(err, services.ErrRestaurantMismatch):
			respondError(c, http.StatusBadRequest, "All items must belong to the selected restaurant", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to create order", err)
		}
		return
	}
	c.JSON(http.StatusCreated, order)
}

// MyOrders godoc
// @Summary List own orders
// @Description List the authenticated user's orders, newest first
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Order
// @Router /orders/my-orders [get]
func (ctrl *OrderController) MyOrders(c *gin.Context) {
	userID := c.GetInt("user_id")

	orders, err := ctrl.orders.ListMine(c.Request.Context(), userID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch orders", err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetByID godoc
// @Summary Get order
// @Description Get order details; owner or admin only
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Order
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [get]
func (ctrl *OrderController) GetByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		respondError(c, http.StatusBadRequest, "Invalid order ID", nil)
		return
	}

	order, err := ctrl.orders.Get(c.Request.Context(), id, c.GetInt("user_id"), c.GetString("user_role"))
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			respondError(c, http.StatusForbidden, "Not authorized to view this order", nil)
			return
		}
		respondError(c, http.StatusNotFound, "Order not found", nil)
		return
	}
	c.JSON(http.StatusOK, order)
}

// Cancel godoc
// @Summary Cancel order
// @Description Cancel an order that is still pending or confirmed
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Order
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /orders/{id}/cancel [put]
func (ctrl *OrderController) Cancel(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		respondError(c, http.StatusBadRequest, "Invalid order ID", nil)
		return
	}

	order, err := ctrl.orders.Cancel(c.Request.Context(), id, c.GetInt("user_id"), c.GetString("user_role"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrForbidden):
			respondError(c, http.StatusForbidden, "Not authorized to cancel this order", nil)
		case errors.Is(err, services.ErrNotCancellable):
			respondError(c, http.StatusBadRequest, "Order cannot be cancelled at this stage", nil)
		case errors.Is(err, services.ErrNotFound):
			respondError(c, http.StatusNotFound, "Order not found", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to cancel order", err)
		}
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateStatus godoc
// @Summary Set order status
// @Description Move an order to a new status (Admin); illegal transitions are rejected
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.Order
// @Failure 400 {object} models.ErrorResponse
// @Router /orders/{id}/status [put]
func (ctrl *OrderController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		respondError(c, http.StatusBadRequest, "Invalid order ID", nil)
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Status is required", err)
		return
	}

	order, err := ctrl.orders.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			respondError(c, http.StatusBadRequest, "Invalid order status", nil)
		case errors.Is(err, services.ErrIllegalTransition):
			respondError(c, http.StatusBadRequest, "Illegal status transition", nil)
		case errors.Is(err, services.ErrNotFound):
			respondError(c, http.StatusNotFound, "Order not found", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to update order status", err)
		}
		return
	}
	c.JSON(http.StatusOK, order)
}

// GetAll godoc
// @Summary List all orders
// @Description List all orders with pagination (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param status query string false "Filter by status"
// @Success 200 {object} models.PaginatedResponse
// @Router /orders [get]
func (ctrl *OrderController) GetAll(c *gin.Context) {
	page, limit := getPaginationParams(c, 10)
	status := c.Query("status")

	if status != "" && !models.IsValidStatus(status) {
		respondError(c, http.StatusBadRequest, "Invalid order status", nil)
		return
	}

	orders, total, err := ctrl.orders.ListAll(c.Request.Context(), page, limit, status)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch orders", err)
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse{
		Data: orders,
		Meta: models.PaginationMeta{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}
