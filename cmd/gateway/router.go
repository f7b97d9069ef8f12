package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/MOBASSHIR07/foodhub-gateway/internal/authz"
	"github.com/MOBASSHIR07/foodhub-gateway/internal/backend"
	"github.com/MOBASSHIR07/foodhub-gateway/internal/cart"
	"github.com/MOBASSHIR07/foodhub-gateway/internal/config"
	"github.com/MOBASSHIR07/foodhub-gateway/internal/httpx"
	"github.com/MOBASSHIR07/foodhub-gateway/internal/imghost"
	"github.com/MOBASSHIR07/foodhub-gateway/internal/order"
)

type deps struct {
	cfg      config.Config
	api      *backend.Client
	carts    *cart.Store
	checkout *order.Checkout
	tracker  *order.Tracker
	images   *imghost.Client
}

func newRouter(d *deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpx.RequestID(), httpx.Logger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{d.cfg.SiteOrigin},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) { c.String(200, "ok") })

	// Public catalog.
	r.GET("/meals", listMealsHandler(d.api))
	r.GET("/meals/:id", getMealHandler(d.api))
	r.GET("/providers", listProvidersHandler(d.api))
	r.GET("/providers/:id", getProviderHandler(d.api))

	// Auth relay.
	r.POST("/auth/sign-up", signUpHandler(d.api))
	r.GET("/auth/session", sessionHandler(d))

	// Cart. Anonymous carts are allowed; checkout requires a session.
	ct := r.Group("/cart", httpx.CartID())
	ct.GET("", getCartHandler(d))
	ct.POST("/items", addToCartHandler(d))
	ct.PATCH("/items/:mealId", updateCartItemHandler(d))
	ct.DELETE("/items/:mealId", removeCartItemHandler(d))
	ct.DELETE("", clearCartHandler(d))

	r.POST("/checkout", httpx.CartID(), requireSession(d), checkoutHandler(d))

	// Orders. Listing routes live outside /orders/:id so the param segment
	// stays unambiguous.
	r.GET("/my/orders", requireSession(d), myOrdersHandler(d))
	r.GET("/orders/:id/track", requireSession(d), trackOrderHandler(d))
	r.POST("/orders/:id/cancel", requireSession(d), cancelOrderHandler(d))
	r.PATCH("/orders/:id/status", requireRole(d, authz.RoleProvider), updateOrderStatusHandler(d))

	// Categories are public to read, admin to mutate.
	r.GET("/categories", listCategoriesHandler(d))

	// Provider menu management and order intake.
	pv := r.Group("/", requireRole(d, authz.RoleProvider))
	pv.POST("/meals", createMealHandler(d))
	pv.PUT("/meals/:id", updateMealHandler(d))
	pv.DELETE("/meals/:id", deleteMealHandler(d))
	pv.GET("/provider/orders", providerOrdersHandler(d))
	pv.PUT("/provider/profile", updateProviderProfileHandler(d))

	// Admin.
	ad := r.Group("/admin", requireRole(d, authz.RoleAdmin))
	ad.GET("/orders", allOrdersHandler(d))
	ad.GET("/users", listUsersHandler(d))
	ad.PATCH("/users/:id", updateUserStatusHandler(d))
	ad.POST("/categories", createCategoryHandler(d))
	ad.PUT("/categories/:id", updateCategoryHandler(d))
	ad.DELETE("/categories/:id", deleteCategoryHandler(d))

	// Uploads (any signed-in user).
	r.POST("/uploads/image", requireSession(d), uploadImageHandler(d))

	// Dashboard entry points redirect per role, mirroring the web shell.
	for _, p := range []string{"/dashboard", "/admin-dashboard", "/provider-dashboard"} {
		r.GET(p, accessGate(d))
		r.GET(p+"/*rest", accessGate(d))
	}

	return r
}
