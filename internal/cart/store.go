package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
)

var (
	// ErrProviderMismatch is returned by Add when the meal belongs to a
	// different kitchen than the one already in the cart.
	ErrProviderMismatch = errors.New("meals can only be added from one kitchen at a time")
)

// Store is the single source of truth for carts. All reads and writes go
// through it; every mutation persists the full snapshot and notifies
// subscribers with the cart id only, so consumers re-read via Get.
//
// Storage failures degrade mutations to no-ops: the app stays usable with an
// effectively empty cart rather than failing checkout flows outright.
type Store struct {
	storage Storage
	prefix  string

	mu     sync.Mutex
	subs   map[int]func(cartID string)
	nextID int
}

func NewStore(storage Storage) *Store {
	return &Store{
		storage: storage,
		prefix:  "foodhub-cart:",
		subs:    make(map[int]func(cartID string)),
	}
}

// Subscribe registers fn to run after every mutation. The returned function
// removes the subscription. The callback carries no cart payload.
func (s *Store) Subscribe(fn func(cartID string)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify(cartID string) {
	s.mu.Lock()
	fns := make([]func(string), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(cartID)
	}
}

// Get reads the cart. Missing or corrupt storage reads as an empty cart,
// never as an error.
func (s *Store) Get(ctx context.Context, cartID string) Cart {
	data, err := s.storage.Get(ctx, s.prefix+cartID)
	if err != nil || len(data) == 0 {
		return Cart{}
	}
	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return Cart{}
	}
	return c
}

func (s *Store) persist(ctx context.Context, cartID string, c Cart) {
	data, err := json.Marshal(c)
	if err != nil {
		log.Printf("[cart] marshal cart %s: %v", cartID, err)
		return
	}
	if err := s.storage.Set(ctx, s.prefix+cartID, data); err != nil {
		log.Printf("[cart] persist cart %s: %v", cartID, err)
	}
}

// AddResult reports a successful Add with a user-facing confirmation naming
// the meal and its kitchen.
type AddResult struct {
	Message string
	Cart    Cart
}

// Add puts a meal in the cart. If the cart already holds meals from another
// provider, ErrProviderMismatch is returned and the cart is unchanged. A meal
// already present gets its quantity incremented by one; otherwise a new line
// with quantity 1 is appended.
func (s *Store) Add(ctx context.Context, cartID string, item Item) (AddResult, error) {
	c := s.Get(ctx, cartID)

	if !c.Empty() && c.ProviderID() != item.ProviderID {
		return AddResult{}, ErrProviderMismatch
	}

	if i := c.find(item.MealID); i >= 0 {
		c.Items[i].Quantity++
	} else {
		item.Quantity = 1
		c.Items = append(c.Items, item)
	}

	s.persist(ctx, cartID, c)
	s.notify(cartID)

	kitchen := item.ProviderName
	if kitchen == "" {
		kitchen = "Kitchen"
	}
	return AddResult{
		Message: fmt.Sprintf("%s added! From %s", item.Name, kitchen),
		Cart:    c,
	}, nil
}

// UpdateQuantity sets the quantity of a line. A quantity of zero or below
// removes the line entirely; an unknown meal id is a no-op. Silent: no
// confirmation message, since it is typically driven by rapid +/- taps.
func (s *Store) UpdateQuantity(ctx context.Context, cartID, mealID string, quantity int) {
	c := s.Get(ctx, cartID)
	i := c.find(mealID)
	if i < 0 {
		return
	}
	if quantity <= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	} else {
		c.Items[i].Quantity = quantity
	}
	s.persist(ctx, cartID, c)
	s.notify(cartID)
}

// Remove drops a line unconditionally. Removing an absent meal id still
// persists and notifies, so the call is idempotent in observable state.
func (s *Store) Remove(ctx context.Context, cartID, mealID string) {
	c := s.Get(ctx, cartID)
	kept := c.Items[:0]
	for _, it := range c.Items {
		if it.MealID != mealID {
			kept = append(kept, it)
		}
	}
	c.Items = kept
	s.persist(ctx, cartID, c)
	s.notify(cartID)
}

// Clear empties the cart, e.g. after a successfully placed order.
func (s *Store) Clear(ctx context.Context, cartID string) {
	if err := s.storage.Remove(ctx, s.prefix+cartID); err != nil {
		log.Printf("[cart] clear cart %s: %v", cartID, err)
	}
	s.notify(cartID)
}
