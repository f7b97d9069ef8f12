package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MOBASSHIR07/foodhub-gateway/internal/backend"
	"github.com/MOBASSHIR07/foodhub-gateway/internal/httpx"
)

func listUsersHandler(d *deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := d.api.Users(c.Request.Context(), tokenFrom(c))
		if err != nil {
			failFromBackend(c, err, "Failed to load users.")
			return
		}
		httpx.OK(c, http.StatusOK, "", users)
	}
}

type updateUserStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func updateUserStatusHandler(d *deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateUserStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Error(c, http.StatusBadRequest, "status is required")
			return
		}
		if err := d.api.UpdateUserStatus(c.Request.Context(), tokenFrom(c), c.Param("id"), req.Status); err != nil {
			failFromBackend(c, err, "Failed to update user status.")
			return
		}
		httpx.OK(c, http.StatusOK, "User status updated to "+req.Status, nil)
	}
}

func createCategoryHandler(d *deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req backend.CategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
			httpx.Error(c, http.StatusBadRequest, "category name is required")
			return
		}
		if err := d.api.CreateCategory(c.Request.Context(), tokenFrom(c), req); err != nil {
			failFromBackend(c, err, "Failed to create category.")
			return
		}
		httpx.OK(c, http.StatusCreated, "Category created successfully!", nil)
	}
}

func updateCategoryHandler(d *deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req backend.CategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Error(c, http.StatusBadRequest, "invalid category payload")
			return
		}
		if err := d.api.UpdateCategory(c.Request.Context(), tokenFrom(c), c.Param("id"), req); err != nil {
			failFromBackend(c, err, "Failed to update category.")
			return
		}
		httpx.OK(c, http.StatusOK, "Category updated.", nil)
	}
}

func deleteCategoryHandler(d *deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := d.api.DeleteCategory(c.Request.Context(), tokenFrom(c), c.Param("id")); err != nil {
			failFromBackend(c, err, "Failed to delete category.")
			return
		}
		httpx.OK(c, http.StatusOK, "Category deleted.", nil)
	}
}
