// Package handler provides HTTP handlers for API endpoints.
package handler

import (
	"net/http"

	"careconnect-api/internal/services"
	"careconnect-api/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles the signup and login endpoints.
type AuthHandler struct {
	service *services.AuthService
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Signup handles user registration.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req httpdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Message: "invalid request body"})
		return
	}

	err := h.service.Signup(c.Request.Context(), services.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		writeAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, httpdto.MessageResponse{Message: "User registered successfully"})
}

// Login handles user authentication and issues a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req httpdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Message: "invalid request body"})
		return
	}

	res, err := h.service.Login(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.LoginResponse{
		Token: res.Token,
		Name:  res.Name,
		Role:  res.Role,
	})
}

func writeAuthError(c *gin.Context, err error) {
	status := services.HTTPStatus(err)
	c.JSON(status, httpdto.ErrorResponse{Message: authErrorMessage(status)})
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
}

// authErrorMessage keeps the client-facing wording fixed per status so
// internal failure detail never leaks, and so an unauthorized login reads
// the same whether the email was unknown or the password wrong.
func authErrorMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "All fields (name, email, password, role) are required"
	case http.StatusUnauthorized:
		return "Invalid email or password"
	case http.StatusConflict:
		return "User already exists"
	case http.StatusTooManyRequests:
		return "Too many requests"
	default:
		return "Something went wrong"
	}
}
