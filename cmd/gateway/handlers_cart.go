package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MOBASSHIR07/foodhub-gateway/internal/backend"
	"github.com/MOBASSHIR07/foodhub-gateway/internal/cart"
	"github.com/MOBASSHIR07/foodhub-gateway/internal/httpx"
)

type cartView struct {
	Items    []cart.Item `json:"items"`
	Subtotal string      `json:"subtotal"`
}

func viewCart(c cart.Cart) cartView {
	v := cartView{Items: c.Items, Subtotal: c.Subtotal().String()}
	if v.Items == nil {
		v.Items = []cart.Item{}
	}
	return v
}

func getCartHandler(d *deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot := d.carts.Get(c.Request.Context(), httpx.GetCartID(c))
		httpx.OK(c, http.StatusOK, "", viewCart(snapshot))
	}
}

// addToCartRequest names the meal only; name, price and owning kitchen come
// from the backend so the client cannot lie about them.
type addToCartRequest struct {
	MealID string `json:"mealId" binding:"required"`
}

func addToCartHandler(d *deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Error(c, http.StatusBadRequest, "mealId is required")
			return
		}

		meal, err := d.api.MealByID(c.Request.Context(), req.MealID)
		if err != nil {
			failFromBackend(c, err, "Meal not found")
			return
		}
		if !meal.IsAvailable {
			httpx.Error(c, http.StatusConflict, "This meal is currently unavailable.")
			return
		}

		item := cart.Item{
			MealID:     meal.ID,
			ProviderID: meal.ProviderID,
			Name:       meal.Name,
			Price:      meal.Price,
			Image:      meal.Image,
		}
		if meal.Provider != nil {
			item.ProviderName = meal.Provider.BusinessName
		}

		res, err := d.carts.Add(c.Request.Context(), httpx.GetCartID(c), item)
		if errors.Is(err, cart.ErrProviderMismatch) {
			httpx.Error(c, http.StatusConflict, "You can only add meals from one kitchen at a time.")
			return
		}
		if err != nil {
			httpx.Error(c, http.StatusInternalServerError, "Could not update cart")
			return
		}
		httpx.OK(c, http.StatusOK, res.Message, viewCart(res.Cart))
	}
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func updateCartItemHandler(d *deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Error(c, http.StatusBadRequest, "quantity is required")
			return
		}
		cartID := httpx.GetCartID(c)
		d.carts.UpdateQuantity(c.Request.Context(), cartID, c.Param("mealId"), *req.Quantity)
		httpx.OK(c, http.StatusOK, "", viewCart(d.carts.Get(c.Request.Context(), cartID)))
	}
}

func removeCartItemHandler(d *deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := httpx.GetCartID(c)
		d.carts.Remove(c.Request.Context(), cartID, c.Param("mealId"))
		httpx.OK(c, http.StatusOK, "", viewCart(d.carts.Get(c.Request.Context(), cartID)))
	}
}

func clearCartHandler(d *deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := httpx.GetCartID(c)
		d.carts.Clear(c.Request.Context(), cartID)
		httpx.OK(c, http.StatusOK, "", viewCart(cart.Cart{}))
	}
}

// failFromBackend maps a backend client error onto the response, preferring
// the backend's own message when it sent one.
func failFromBackend(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, backend.ErrValidation):
		httpx.Error(c, http.StatusBadRequest, backend.Message(err, fallback))
	case errors.Is(err, backend.ErrTransport):
		httpx.Error(c, http.StatusBadGateway, "Connection to central server failed.")
	case errors.Is(err, backend.ErrRejected):
		status := http.StatusBadGateway
		var rej *backend.RejectedError
		if errors.As(err, &rej) && rej.StatusCode >= 400 && rej.StatusCode < 500 {
			status = rej.StatusCode
		}
		httpx.Error(c, status, backend.Message(err, fallback))
	default:
		httpx.Error(c, http.StatusInternalServerError, fallback)
	}
}
