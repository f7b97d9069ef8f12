package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MOBASSHIR07/foodhub-gateway/internal/order"
)

// CreateOrder submits the cart snapshot. The backend generates the order
// number, computes the total and starts the order in PENDING.
func (c *Client) CreateOrder(ctx context.Context, session string, req order.CreateOrderRequest) (*order.PlacedOrder, error) {
	var placed order.PlacedOrder
	if err := c.do(ctx, http.MethodPost, "/order/create-order", session, nil, req, &placed); err != nil {
		return nil, err
	}
	return &placed, nil
}

// MyOrders lists the calling customer's orders.
func (c *Client) MyOrders(ctx context.Context, session string) ([]order.Order, error) {
	var orders []order.Order
	if err := c.do(ctx, http.MethodGet, "/order/my-orders", session, nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ProviderOrders lists incoming orders for the calling provider's kitchen.
func (c *Client) ProviderOrders(ctx context.Context, session string) ([]order.Order, error) {
	var orders []order.Order
	if err := c.do(ctx, http.MethodGet, "/order/provider-orders", session, nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// OrderFilter narrows the admin order listing.
type OrderFilter struct {
	Cuisine            string
	DietaryPreferences string
	Status             order.Status
	Page               int
	Limit              int
}

// AllOrders is the admin-wide order listing.
func (c *Client) AllOrders(ctx context.Context, session string, f OrderFilter) ([]order.Order, error) {
	q := url.Values{}
	if f.Cuisine != "" {
		q.Set("cuisine", f.Cuisine)
	}
	if f.DietaryPreferences != "" {
		q.Set("dietaryPreferences", f.DietaryPreferences)
	}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	page, limit := f.Page, f.Limit
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	var orders []order.Order
	if err := c.do(ctx, http.MethodGet, "/admin/orders", session, q, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus requests a transition. The backend is the transition
// authority; this validates only enum membership before the call.
func (c *Client) UpdateOrderStatus(ctx context.Context, session, orderID string, status order.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	body := map[string]string{"status": string(status)}
	return c.do(ctx, http.MethodPatch, "/order/"+orderID+"/status", session, nil, body, nil)
}

// TrackOrder is a point-in-time tracking read for one order.
func (c *Client) TrackOrder(ctx context.Context, session, orderID string) (*order.TrackingInfo, error) {
	var info order.TrackingInfo
	if err := c.do(ctx, http.MethodGet, "/order/"+orderID+"/track", session, nil, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}
