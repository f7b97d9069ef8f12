package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MOBASSHIR07/foodhub-gateway/internal/authz"
	"github.com/MOBASSHIR07/foodhub-gateway/internal/backend"
	"github.com/MOBASSHIR07/foodhub-gateway/internal/httpx"
)

type signUpRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Role        string `json:"role" binding:"required,oneof=CUSTOMER PROVIDER"`
	PhoneNumber string `json:"phoneNumber"`
}

func signUpHandler(api *backend.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signUpRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Error(c, http.StatusBadRequest, "Registration failed: invalid input")
			return
		}
		err := api.Register(c.Request.Context(), backend.RegisterRequest{
			FullName:    req.FullName,
			Email:       req.Email,
			Password:    req.Password,
			Role:        authz.Role(req.Role),
			PhoneNumber: req.PhoneNumber,
		})
		if err != nil {
			failFromBackend(c, err, "Registration failed")
			return
		}
		httpx.OK(c, http.StatusCreated, "Account created. Please sign in.", nil)
	}
}

func sessionHandler(d *deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, sess, err := resolveSession(d, c)
		if err != nil {
			httpx.Error(c, http.StatusBadGateway, "Connection to central server failed.")
			return
		}
		if sess == nil {
			httpx.Error(c, http.StatusUnauthorized, "No active session")
			return
		}
		httpx.OK(c, http.StatusOK, "", sess)
	}
}
