package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"starwars_api/internal/models"
	"starwars_api/internal/responses"
	"starwars_api/internal/services"
)

type authService interface {
	Register(ctx context.Context, req services.RegisterRequest) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
}

type AuthHandler struct {
	authService authService
}

func NewAuthHandler(authService authService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type authResponse struct {
	User        models.SerializedUser `json:"user"`
	AccessToken string                `json:"access_token"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Please provide your email, username and password correctly")
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		fail(c, err, "Could not register user")
		return
	}

	responses.Success(c, http.StatusCreated, authResponse{User: user.Serialize(), AccessToken: token}, "New user registered successfully!")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid Format")
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err, "Failed to login")
		return
	}

	responses.Success(c, http.StatusOK, authResponse{User: user.Serialize(), AccessToken: token}, "User Login Successfully!")
}
