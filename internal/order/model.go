package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the read-back projection of an order owned by the backend.
type Order struct {
	ID              string          `json:"id"`
	OrderNumber     string          `json:"orderNumber"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	DeliveryAddress string          `json:"deliveryAddress"`
	Status          Status          `json:"status"`
	PaymentStatus   string          `json:"paymentStatus"`
	CreatedAt       time.Time       `json:"createdAt"`
	Items           []Item          `json:"items"`
}

type Item struct {
	ID       string          `json:"id"`
	MealID   string          `json:"mealId"`
	Name     string          `json:"name"`
	Image    string          `json:"image,omitempty"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// TrackingInfo is a point-in-time tracking read; not persisted.
type TrackingInfo struct {
	ID                string     `json:"id"`
	Status            Status     `json:"status"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery,omitempty"`
}

// CreateOrderLine is one (meal, quantity) pair taken from the cart.
// swagger:model CreateOrderLine
type CreateOrderLine struct {
	MealID   string `json:"mealId" example:"4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a"`
	Quantity int    `json:"quantity" example:"2"`
}

// CreateOrderRequest is the order submission payload.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	DeliveryAddress string            `json:"deliveryAddress" example:"Uttara, Dhaka"`
	Items           []CreateOrderLine `json:"items"`
}

// PlacedOrder is the backend's acknowledgement of a created order.
type PlacedOrder struct {
	ID          string `json:"id"`
	OrderNumber string `json:"orderNumber"`
}
