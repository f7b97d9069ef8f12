package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MOBASSHIR07/foodhub-gateway/internal/backend"
	"github.com/MOBASSHIR07/foodhub-gateway/internal/httpx"
)

func atoiQuery(c *gin.Context, key string) (int, error) {
	v := c.Query(key)
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

func listMealsHandler(api *backend.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := backend.MealFilter{
			Cuisine:            c.Query("cuisine"),
			DietaryPreferences: c.Query("dietaryPreferences"),
		}
		f.Page, _ = atoiQuery(c, "page")
		f.Limit, _ = atoiQuery(c, "limit")

		meals, err := api.Meals(c.Request.Context(), f)
		if err != nil {
			failFromBackend(c, err, "Could not load meals")
			return
		}
		httpx.OK(c, http.StatusOK, "", meals)
	}
}

func getMealHandler(api *backend.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		meal, err := api.MealByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			failFromBackend(c, err, "Meal not found")
			return
		}
		httpx.OK(c, http.StatusOK, "", meal)
	}
}

func listProvidersHandler(api *backend.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		providers, err := api.Providers(c.Request.Context())
		if err != nil {
			failFromBackend(c, err, "Something Went Wrong")
			return
		}
		httpx.OK(c, http.StatusOK, "", providers)
	}
}

func getProviderHandler(api *backend.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		provider, err := api.ProviderByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			failFromBackend(c, err, "Kitchen not found")
			return
		}
		httpx.OK(c, http.StatusOK, "", provider)
	}
}

func listCategoriesHandler(d *deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := d.api.Categories(c.Request.Context(), httpx.SessionToken(c, d.cfg.SessionCookie))
		if err != nil {
			failFromBackend(c, err, "Failed to load categories.")
			return
		}
		httpx.OK(c, http.StatusOK, "", categories)
	}
}

func createMealHandler(d *deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req backend.CreateMealRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Error(c, http.StatusBadRequest, "invalid meal payload")
			return
		}
		if err := d.api.CreateMeal(c.Request.Context(), tokenFrom(c), req); err != nil {
			failFromBackend(c, err, "Failed to create meal.")
			return
		}
		httpx.OK(c, http.StatusCreated, "Meal added to kitchen registry.", nil)
	}
}

func updateMealHandler(d *deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req backend.CreateMealRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Error(c, http.StatusBadRequest, "invalid meal payload")
			return
		}
		if err := d.api.UpdateMeal(c.Request.Context(), tokenFrom(c), c.Param("id"), req); err != nil {
			failFromBackend(c, err, "Failed to update meal.")
			return
		}
		httpx.OK(c, http.StatusOK, "Meal updated.", nil)
	}
}

func deleteMealHandler(d *deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := d.api.DeleteMeal(c.Request.Context(), tokenFrom(c), c.Param("id")); err != nil {
			failFromBackend(c, err, "Failed to delete meal.")
			return
		}
		httpx.OK(c, http.StatusOK, "Meal removed.", nil)
	}
}

func updateProviderProfileHandler(d *deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req backend.UpdateProviderProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Error(c, http.StatusBadRequest, "invalid profile payload")
			return
		}
		if err := d.api.UpdateProviderProfile(c.Request.Context(), tokenFrom(c), req); err != nil {
			failFromBackend(c, err, "Failed to update profile")
			return
		}
		httpx.OK(c, http.StatusOK, "Profile updated.", nil)
	}
}

func uploadImageHandler(d *deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			httpx.Error(c, http.StatusBadRequest, "image file is required")
			return
		}
		f, err := file.Open()
		if err != nil {
			httpx.Error(c, http.StatusBadRequest, "could not read image")
			return
		}
		defer f.Close()

		url, err := d.images.Upload(c.Request.Context(), file.Filename, f)
		if err != nil {
			httpx.Error(c, http.StatusBadGateway, "Image upload failed")
			return
		}
		httpx.OK(c, http.StatusOK, "", gin.H{"url": url})
	}
}
