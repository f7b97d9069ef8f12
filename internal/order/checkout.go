package order

import (
	"context"
	"errors"
	"strings"

	"github.com/MOBASSHIR07/foodhub-gateway/internal/cart"
)

var (
	ErrAddressRequired = errors.New("delivery address required")
	ErrEmptyCart       = errors.New("cart is empty")
)

// Placer submits an order to the backend on behalf of a session.
type Placer interface {
	CreateOrder(ctx context.Context, session string, req CreateOrderRequest) (*PlacedOrder, error)
}

// Checkout converts a cart snapshot into an order submission. On success the
// cart is cleared; on any failure the cart is left intact.
type Checkout struct {
	Carts *cart.Store
	API   Placer
}

func NewCheckout(carts *cart.Store, api Placer) *Checkout {
	return &Checkout{Carts: carts, API: api}
}

// PlaceOrder validates the delivery address before any network call, then
// submits the current cart contents as (mealId, quantity) pairs.
func (co *Checkout) PlaceOrder(ctx context.Context, session, cartID, address string) (*PlacedOrder, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, ErrAddressRequired
	}

	snapshot := co.Carts.Get(ctx, cartID)
	if snapshot.Empty() {
		return nil, ErrEmptyCart
	}

	req := CreateOrderRequest{DeliveryAddress: address}
	for _, it := range snapshot.Items {
		req.Items = append(req.Items, CreateOrderLine{MealID: it.MealID, Quantity: it.Quantity})
	}

	placed, err := co.API.CreateOrder(ctx, session, req)
	if err != nil {
		return nil, err
	}

	co.Carts.Clear(ctx, cartID)
	return placed, nil
}
