package cart

import "github.com/shopspring/decimal"

// Item is a single cart line. A meal always belongs to exactly one provider,
// so ProviderID is carried on every line even though all lines in a cart
// share it.
type Item struct {
	MealID       string          `json:"meal_id"`
	ProviderID   string          `json:"provider_id"`
	ProviderName string          `json:"provider_name,omitempty"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Image        string          `json:"image,omitempty"`
	Quantity     int             `json:"quantity"`
}

// Cart is the ordered list of lines. Insertion order is preserved for
// display; totals do not depend on it.
type Cart struct {
	Items []Item `json:"items"`
}

func (c Cart) Empty() bool { return len(c.Items) == 0 }

// ProviderID returns the provider owning the cart, or "" when empty.
func (c Cart) ProviderID() string {
	if len(c.Items) == 0 {
		return ""
	}
	return c.Items[0].ProviderID
}

// Subtotal is the sum of price*quantity over all lines.
func (c Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

func (c Cart) find(mealID string) int {
	for i, it := range c.Items {
		if it.MealID == mealID {
			return i
		}
	}
	return -1
}
