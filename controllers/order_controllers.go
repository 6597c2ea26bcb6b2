package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/canteen-app/models"
	"github.com/yeremiapane/canteen-app/services"
	"github.com/yeremiapane/canteen-app/utils"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Service: svc}
}

// PlaceOrder takes the cart and returns the created order; the id is the
// pickup token the student shows at the counter.
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	userID := c.GetUint("user_id")

	var body struct {
		Items []models.OrderItem `json:"items"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Service.PlaceOrder(userID, body.Items)
	if err != nil {
		oc.respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Order placed", order)
}

// GetMyOrders backs the "my active orders" view and the refetch clients
// perform when their socket reconnects.
func (oc *OrderController) GetMyOrders(c *gin.Context) {
	userID := c.GetUint("user_id")

	orders, err := oc.Service.OrdersForUser(userID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "My orders", orders)
}

// GetOrderByID is owner-scoped: students only see their own orders.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	userID := c.GetUint("user_id")

	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Service.OrderForUser(uint(id), userID)
	if err != nil {
		oc.respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// GetOrderStatus serves the public tracking page keyed by token alone.
func (oc *OrderController) GetOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	status, err := oc.Service.OrderStatus(uint(id))
	if err != nil {
		oc.respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order status", gin.H{
		"order_id": id,
		"status":   status,
	})
}

// GetActiveOrders is the staff queue: everything still in flight, oldest
// first.
func (oc *OrderController) GetActiveOrders(c *gin.Context) {
	orders, err := oc.Service.ActiveOrders()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Active orders", orders)
}

// UpdateStatus advances an order one step through its lifecycle. A
// rejected transition leaves the order untouched and just reports back.
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	requested, err := models.ParseOrderStatus(body.Status)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Service.AdvanceStatus(uint(id), requested)
	if err != nil {
		oc.respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}

func (oc *OrderController) respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrInvalidCartLine),
		errors.Is(err, services.ErrUnknownMenuItem),
		errors.Is(err, services.ErrItemUnavailable),
		errors.Is(err, services.ErrInvalidTransition):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.Is(err, services.ErrStatusConflict):
		utils.RespondError(c, http.StatusConflict, err)
	default:
		utils.ErrorLogger.Printf("Order operation failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("order operation failed"))
	}
}
