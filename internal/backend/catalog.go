package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Meals lists the public meal catalog. No session required.
func (c *Client) Meals(ctx context.Context, f MealFilter) ([]Meal, error) {
	q := url.Values{}
	if f.Cuisine != "" {
		q.Set("cuisine", f.Cuisine)
	}
	if f.DietaryPreferences != "" {
		q.Set("dietaryPreferences", f.DietaryPreferences)
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}

	var meals []Meal
	if err := c.do(ctx, http.MethodGet, "/meal/all-meal", "", q, nil, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

// MealByID fetches one meal with its provider embedded. The cart add flow
// uses this as the source of truth for name, price and owning kitchen.
func (c *Client) MealByID(ctx context.Context, id string) (*Meal, error) {
	var meal Meal
	if err := c.do(ctx, http.MethodGet, "/meal/"+id, "", nil, nil, &meal); err != nil {
		return nil, err
	}
	return &meal, nil
}

// Providers lists all kitchens.
func (c *Client) Providers(ctx context.Context) ([]Provider, error) {
	var providers []Provider
	if err := c.do(ctx, http.MethodGet, "/providers", "", nil, nil, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

// ProviderByID fetches one kitchen with its meals.
func (c *Client) ProviderByID(ctx context.Context, id string) (*Provider, error) {
	var provider Provider
	if err := c.do(ctx, http.MethodGet, "/providers/"+id, "", nil, nil, &provider); err != nil {
		return nil, err
	}
	return &provider, nil
}

// Categories lists meal categories.
func (c *Client) Categories(ctx context.Context, session string) ([]Category, error) {
	var categories []Category
	if err := c.do(ctx, http.MethodGet, "/admin/categories", session, nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory adds a category (admin).
func (c *Client) CreateCategory(ctx context.Context, session string, req CategoryRequest) error {
	return c.do(ctx, http.MethodPost, "/admin/categories", session, nil, req, nil)
}

// UpdateCategory renames or re-images a category (admin).
func (c *Client) UpdateCategory(ctx context.Context, session, id string, req CategoryRequest) error {
	return c.do(ctx, http.MethodPut, "/admin/categories/"+id, session, nil, req, nil)
}

// DeleteCategory removes a category (admin).
func (c *Client) DeleteCategory(ctx context.Context, session, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/categories/"+id, session, nil, nil, nil)
}

// CreateMeal adds a meal to the calling provider's menu.
func (c *Client) CreateMeal(ctx context.Context, session string, req CreateMealRequest) error {
	return c.do(ctx, http.MethodPost, "/meal/add-meal", session, nil, req, nil)
}

// UpdateMeal edits a meal on the calling provider's menu.
func (c *Client) UpdateMeal(ctx context.Context, session, id string, req CreateMealRequest) error {
	return c.do(ctx, http.MethodPut, "/meal/"+id, session, nil, req, nil)
}

// DeleteMeal removes a meal from the calling provider's menu.
func (c *Client) DeleteMeal(ctx context.Context, session, id string) error {
	return c.do(ctx, http.MethodDelete, "/meal/"+id, session, nil, nil, nil)
}

// UpdateProviderProfile edits the calling provider's kitchen profile.
func (c *Client) UpdateProviderProfile(ctx context.Context, session string, req UpdateProviderProfileRequest) error {
	return c.do(ctx, http.MethodPut, "/provider/update-profile", session, nil, req, nil)
}
