package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MOBASSHIR07/foodhub-gateway/internal/backend"
	"github.com/MOBASSHIR07/foodhub-gateway/internal/httpx"
	"github.com/MOBASSHIR07/foodhub-gateway/internal/order"
)

type checkoutRequest struct {
	DeliveryAddress string `json:"deliveryAddress"`
}

func checkoutHandler(d *deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Error(c, http.StatusBadRequest, "Delivery address required")
			return
		}

		placed, err := d.checkout.PlaceOrder(c.Request.Context(), tokenFrom(c), httpx.GetCartID(c), req.DeliveryAddress)
		switch {
		case errors.Is(err, order.ErrAddressRequired):
			httpx.Error(c, http.StatusBadRequest, "Delivery address required")
			return
		case errors.Is(err, order.ErrEmptyCart):
			httpx.Error(c, http.StatusBadRequest, "Your cart is empty.")
			return
		case err != nil:
			failFromBackend(c, err, "Failed to place order.")
			return
		}
		httpx.OK(c, http.StatusCreated, "Order placed!", placed)
	}
}

func myOrdersHandler(d *deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := d.api.MyOrders(c.Request.Context(), tokenFrom(c))
		if err != nil {
			failFromBackend(c, err, "Failed to load orders.")
			return
		}
		httpx.OK(c, http.StatusOK, "", orders)
	}
}

func providerOrdersHandler(d *deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := d.api.ProviderOrders(c.Request.Context(), tokenFrom(c))
		if err != nil {
			failFromBackend(c, err, "Failed to load orders.")
			return
		}
		httpx.OK(c, http.StatusOK, "", orders)
	}
}

func trackOrderHandler(d *deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := d.tracker.Track(c.Request.Context(), tokenFrom(c), c.Param("id"))
		if err != nil {
			failFromBackend(c, err, "Failed to track order.")
			return
		}
		httpx.OK(c, http.StatusOK, "", view)
	}
}

// cancelOrderHandler is the customer-side cancellation: a plain CANCELLED
// transition request. The backend refuses it once the order has moved past
// PENDING.
func cancelOrderHandler(d *deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := d.api.UpdateOrderStatus(c.Request.Context(), tokenFrom(c), c.Param("id"), order.StatusCancelled)
		if err != nil {
			failFromBackend(c, err, "Failed to cancel order.")
			return
		}
		httpx.OK(c, http.StatusOK, "Order Cancelled", nil)
	}
}

type updateStatusRequest struct {
	Status order.Status `json:"status" binding:"required"`
}

func updateOrderStatusHandler(d *deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Error(c, http.StatusBadRequest, "status is required")
			return
		}
		if !req.Status.Valid() {
			httpx.Error(c, http.StatusBadRequest, "unknown status")
			return
		}
		err := d.api.UpdateOrderStatus(c.Request.Context(), tokenFrom(c), c.Param("id"), req.Status)
		if err != nil {
			failFromBackend(c, err, "Failed to update order status.")
			return
		}
		httpx.OK(c, http.StatusOK, "Order status updated", gin.H{"next": req.Status.Next()})
	}
}

func allOrdersHandler(d *deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := backend.OrderFilter{
			Cuisine:            c.Query("cuisine"),
			DietaryPreferences: c.Query("dietaryPreferences"),
			Status:             order.Status(c.Query("status")),
		}
		f.Page, _ = atoiQuery(c, "page")
		f.Limit, _ = atoiQuery(c, "limit")

		orders, err := d.api.AllOrders(c.Request.Context(), tokenFrom(c), f)
		if err != nil {
			failFromBackend(c, err, "Failed to load orders.")
			return
		}
		httpx.OK(c, http.StatusOK, "", orders)
	}
}
