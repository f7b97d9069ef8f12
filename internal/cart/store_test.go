package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func biryani() Item {
	return Item{
		MealID:       "meal-a",
		ProviderID:   "provider-p",
		ProviderName: "Dhaka Kitchen",
		Name:         "Kacchi Biryani",
		Price:        decimal.NewFromInt(450),
	}
}

func pizza() Item {
	return Item{
		MealID:       "meal-b",
		ProviderID:   "provider-q",
		ProviderName: "Napoli House",
		Name:         "Margherita",
		Price:        decimal.NewFromInt(600),
	}
}

func TestAddNewMeal(t *testing.T) {
	s := NewStore(NewMemoryStorage())
	ctx := context.Background()

	res, err := s.Add(ctx, "c1", biryani())
	require.NoError(t, err)
	assert.Equal(t, "Kacchi Biryani added! From Dhaka Kitchen", res.Message)

	c := s.Get(ctx, "c1")
	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)
	assert.True(t, c.Subtotal().Equal(decimal.NewFromInt(450)))
}

func TestAddSameMealIncrementsQuantity(t *testing.T) {
	s := NewStore(NewMemoryStorage())
	ctx := context.Background()

	_, err := s.Add(ctx, "c1", biryani())
	require.NoError(t, err)
	_, err = s.Add(ctx, "c1", biryani())
	require.NoError(t, err)

	c := s.Get(ctx, "c1")
	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.True(t, c.Subtotal().Equal(decimal.NewFromInt(900)))
}

func TestAddFromSecondProviderRejected(t *testing.T) {
	s := NewStore(NewMemoryStorage())
	ctx := context.Background()

	_, err := s.Add(ctx, "c1", biryani())
	require.NoError(t, err)

	_, err = s.Add(ctx, "c1", pizza())
	assert.ErrorIs(t, err, ErrProviderMismatch)

	// Cart unchanged.
	c := s.Get(ctx, "c1")
	require.Len(t, c.Items, 1)
	assert.Equal(t, "meal-a", c.Items[0].MealID)
	assert.Equal(t, "provider-p", c.ProviderID())
}

func TestSubtotalOverDistinctMeals(t *testing.T) {
	s := NewStore(NewMemoryStorage())
	ctx := context.Background()

	other := biryani()
	other.MealID = "meal-c"
	other.Name = "Borhani"
	other.Price = decimal.NewFromInt(80)

	_, _ = s.Add(ctx, "c1", biryani())
	_, _ = s.Add(ctx, "c1", biryani())
	_, _ = s.Add(ctx, "c1", other)

	c := s.Get(ctx, "c1")
	require.Len(t, c.Items, 2)
	seen := map[string]bool{}
	for _, it := range c.Items {
		assert.False(t, seen[it.MealID], "duplicate line for %s", it.MealID)
		seen[it.MealID] = true
	}
	assert.True(t, c.Subtotal().Equal(decimal.NewFromInt(980)))
}

func TestUpdateQuantity(t *testing.T) {
	s := NewStore(NewMemoryStorage())
	ctx := context.Background()
	_, _ = s.Add(ctx, "c1", biryani())

	s.UpdateQuantity(ctx, "c1", "meal-a", 5)
	c := s.Get(ctx, "c1")
	require.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)

	// Zero removes the line rather than storing a non-positive quantity.
	s.UpdateQuantity(ctx, "c1", "meal-a", 0)
	assert.True(t, s.Get(ctx, "c1").Empty())
}

func TestUpdateQuantityUnknownMealIsNoop(t *testing.T) {
	s := NewStore(NewMemoryStorage())
	ctx := context.Background()
	_, _ = s.Add(ctx, "c1", biryani())

	s.UpdateQuantity(ctx, "c1", "no-such-meal", 3)

	c := s.Get(ctx, "c1")
	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := NewStore(NewMemoryStorage())
	ctx := context.Background()
	_, _ = s.Add(ctx, "c1", biryani())

	s.Remove(ctx, "c1", "meal-a")
	first := s.Get(ctx, "c1")
	s.Remove(ctx, "c1", "meal-a")
	second := s.Get(ctx, "c1")

	assert.True(t, first.Empty())
	assert.Equal(t, first, second)
}

func TestClear(t *testing.T) {
	s := NewStore(NewMemoryStorage())
	ctx := context.Background()
	_, _ = s.Add(ctx, "c1", biryani())
	_, _ = s.Add(ctx, "c2", pizza())

	s.Clear(ctx, "c1")

	assert.True(t, s.Get(ctx, "c1").Empty())
	// Other carts untouched.
	assert.False(t, s.Get(ctx, "c2").Empty())
}

func TestSubscribersNotifiedOnEveryMutation(t *testing.T) {
	s := NewStore(NewMemoryStorage())
	ctx := context.Background()

	var events []string
	unsub := s.Subscribe(func(cartID string) { events = append(events, cartID) })
	defer unsub()

	_, _ = s.Add(ctx, "c1", biryani())
	s.UpdateQuantity(ctx, "c1", "meal-a", 2)
	s.Remove(ctx, "c1", "meal-a")
	s.Clear(ctx, "c1")

	assert.Equal(t, []string{"c1", "c1", "c1", "c1"}, events)
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	s := NewStore(NewMemoryStorage())
	ctx := context.Background()

	calls := 0
	unsub := s.Subscribe(func(string) { calls++ })
	_, _ = s.Add(ctx, "c1", biryani())
	unsub()
	_, _ = s.Add(ctx, "c1", biryani())

	assert.Equal(t, 1, calls)
}

func TestRejectedAddDoesNotNotify(t *testing.T) {
	s := NewStore(NewMemoryStorage())
	ctx := context.Background()
	_, _ = s.Add(ctx, "c1", biryani())

	calls := 0
	unsub := s.Subscribe(func(string) { calls++ })
	defer unsub()

	_, err := s.Add(ctx, "c1", pizza())
	require.Error(t, err)
	assert.Equal(t, 0, calls)
}

func TestCorruptStorageReadsAsEmpty(t *testing.T) {
	storage := NewMemoryStorage()
	s := NewStore(storage)
	ctx := context.Background()

	require.NoError(t, storage.Set(ctx, "foodhub-cart:c1", []byte("{not json")))

	assert.True(t, s.Get(ctx, "c1").Empty())
}

// brokenStorage fails every operation, like local storage in privacy mode.
type brokenStorage struct{}

func (brokenStorage) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("storage unavailable")
}
func (brokenStorage) Set(context.Context, string, []byte) error {
	return errors.New("storage unavailable")
}
func (brokenStorage) Remove(context.Context, string) error {
	return errors.New("storage unavailable")
}

func TestUnavailableStorageDegradesToNoops(t *testing.T) {
	s := NewStore(brokenStorage{})
	ctx := context.Background()

	_, err := s.Add(ctx, "c1", biryani())
	assert.NoError(t, err)
	s.UpdateQuantity(ctx, "c1", "meal-a", 2)
	s.Remove(ctx, "c1", "meal-a")
	s.Clear(ctx, "c1")
	assert.True(t, s.Get(ctx, "c1").Empty())
}
