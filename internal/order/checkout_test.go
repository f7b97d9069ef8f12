package order

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MOBASSHIR07/foodhub-gateway/internal/cart"
)

// stubPlacer records the last submission and answers from a script.
type stubPlacer struct {
	lastSession string
	lastReq     *CreateOrderRequest
	placed      *PlacedOrder
	err         error
}

func (s *stubPlacer) CreateOrder(ctx context.Context, session string, req CreateOrderRequest) (*PlacedOrder, error) {
	s.lastSession = session
	s.lastReq = &req
	if s.err != nil {
		return nil, s.err
	}
	return s.placed, nil
}

func seedCart(t *testing.T, carts *cart.Store, cartID string) {
	t.Helper()
	_, err := carts.Add(context.Background(), cartID, cart.Item{
		MealID:     "meal-a",
		ProviderID: "provider-p",
		Name:       "Kacchi Biryani",
		Price:      decimal.NewFromInt(450),
	})
	require.NoError(t, err)
	carts.UpdateQuantity(context.Background(), cartID, "meal-a", 2)
}

func TestPlaceOrderClearsCartOnSuccess(t *testing.T) {
	carts := cart.NewStore(cart.NewMemoryStorage())
	seedCart(t, carts, "c1")
	api := &stubPlacer{placed: &PlacedOrder{ID: "o1", OrderNumber: "FH-1001"}}

	co := NewCheckout(carts, api)
	placed, err := co.PlaceOrder(context.Background(), "tok", "c1", "Uttara, Dhaka")

	require.NoError(t, err)
	assert.Equal(t, "FH-1001", placed.OrderNumber)
	assert.Equal(t, "tok", api.lastSession)
	require.NotNil(t, api.lastReq)
	assert.Equal(t, "Uttara, Dhaka", api.lastReq.DeliveryAddress)
	require.Len(t, api.lastReq.Items, 1)
	assert.Equal(t, CreateOrderLine{MealID: "meal-a", Quantity: 2}, api.lastReq.Items[0])

	assert.True(t, carts.Get(context.Background(), "c1").Empty())
}

func TestPlaceOrderRequiresAddress(t *testing.T) {
	carts := cart.NewStore(cart.NewMemoryStorage())
	seedCart(t, carts, "c1")
	api := &stubPlacer{}

	co := NewCheckout(carts, api)
	_, err := co.PlaceOrder(context.Background(), "tok", "c1", "   ")

	assert.ErrorIs(t, err, ErrAddressRequired)
	// Validation failures never reach the backend.
	assert.Nil(t, api.lastReq)
	assert.False(t, carts.Get(context.Background(), "c1").Empty())
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	carts := cart.NewStore(cart.NewMemoryStorage())
	api := &stubPlacer{}

	co := NewCheckout(carts, api)
	_, err := co.PlaceOrder(context.Background(), "tok", "c1", "Uttara, Dhaka")

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Nil(t, api.lastReq)
}

func TestPlaceOrderKeepsCartOnBackendFailure(t *testing.T) {
	carts := cart.NewStore(cart.NewMemoryStorage())
	seedCart(t, carts, "c1")
	api := &stubPlacer{err: errors.New("backend rejected")}

	co := NewCheckout(carts, api)
	_, err := co.PlaceOrder(context.Background(), "tok", "c1", "Uttara, Dhaka")

	require.Error(t, err)
	assert.False(t, carts.Get(context.Background(), "c1").Empty())
}

type stubTrackingAPI struct {
	info *TrackingInfo
	err  error
}

func (s *stubTrackingAPI) TrackOrder(ctx context.Context, session, orderID string) (*TrackingInfo, error) {
	return s.info, s.err
}

func TestTrackDerivesProgressView(t *testing.T) {
	tr := NewTracker(&stubTrackingAPI{info: &TrackingInfo{ID: "o1", Status: StatusCooking}})

	view, err := tr.Track(context.Background(), "tok", "o1")
	require.NoError(t, err)
	assert.Equal(t, 2, view.Step)
	assert.InDelta(t, 2.0/3, view.Progress, 1e-9)
	assert.False(t, view.Terminated)
}

func TestTrackCancelledOrderIsTerminated(t *testing.T) {
	tr := NewTracker(&stubTrackingAPI{info: &TrackingInfo{ID: "o1", Status: StatusCancelled}})

	view, err := tr.Track(context.Background(), "tok", "o1")
	require.NoError(t, err)
	assert.Equal(t, -1, view.Step)
	assert.Equal(t, 0.0, view.Progress)
	assert.True(t, view.Terminated)
}

func TestTrackRequiresOrderID(t *testing.T) {
	tr := NewTracker(&stubTrackingAPI{})
	_, err := tr.Track(context.Background(), "tok", "")
	assert.ErrorIs(t, err, ErrOrderIDRequired)
}
