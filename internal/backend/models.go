package backend

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MOBASSHIR07/foodhub-gateway/internal/authz"
)

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Meal is the backend's meal projection. Provider is embedded so the cart
// can show which kitchen a meal comes from without a second fetch.
type Meal struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Price              decimal.Decimal `json:"price"`
	Image              string          `json:"image,omitempty"`
	IsAvailable        bool            `json:"isAvailable"`
	Cuisine            string          `json:"cuisine,omitempty"`
	DietaryPreferences string          `json:"dietaryPreferences,omitempty"`
	CategoryID         string          `json:"categoryId"`
	ProviderID         string          `json:"providerId"`
	Provider           *MealProvider   `json:"provider,omitempty"`
}

type MealProvider struct {
	BusinessName string `json:"businessName"`
	Address      string `json:"address,omitempty"`
}

type Provider struct {
	ID           string  `json:"id"`
	BusinessName string  `json:"businessName"`
	Address      string  `json:"address,omitempty"`
	Description  string  `json:"description,omitempty"`
	CoverImage   string  `json:"coverImage,omitempty"`
	Rating       float64 `json:"rating"`
	UserID       string  `json:"userId"`
	Meals        []Meal  `json:"meals,omitempty"`
}

type User struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phoneNumber,omitempty"`
	Role        authz.Role `json:"role"`
	Status      string     `json:"status,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Session is the backend's get-session response.
type Session struct {
	User User `json:"user"`
}

// RegisterRequest is the sign-up payload relayed to the backend's auth
// endpoint. Role is restricted to CUSTOMER or PROVIDER; admins are not
// self-service.
type RegisterRequest struct {
	FullName    string     `json:"name"`
	Email       string     `json:"email"`
	Password    string     `json:"password"`
	Role        authz.Role `json:"role"`
	PhoneNumber string     `json:"phoneNumber"`
}

// MealFilter narrows catalog and admin order listings.
type MealFilter struct {
	Cuisine            string
	DietaryPreferences string
	Page               int
	Limit              int
}

// CreateMealRequest is the provider menu-management payload.
// swagger:model CreateMealRequest
type CreateMealRequest struct {
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Price              decimal.Decimal `json:"price"`
	Image              string          `json:"image"`
	CategoryID         string          `json:"categoryId"`
	Cuisine            string          `json:"cuisine,omitempty"`
	DietaryPreferences string          `json:"dietaryPreferences,omitempty"`
}

// UpdateProviderProfileRequest is the kitchen-profile update payload; empty
// fields are left unchanged by the backend.
type UpdateProviderProfileRequest struct {
	BusinessName  string `json:"businessName,omitempty"`
	Location      string `json:"location,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty"`
	Description   string `json:"description,omitempty"`
	ProfileImage  string `json:"profileImage,omitempty"`
}

// CategoryRequest creates or updates a category.
type CategoryRequest struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}
