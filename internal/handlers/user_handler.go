package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"starwars_api/internal/middlewares"
	"starwars_api/internal/models"
	"starwars_api/internal/responses"
	"starwars_api/internal/services"
)

type userService interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateProfile(ctx context.Context, id int64, req services.UpdateProfileRequest) (*models.User, error)
	Deactivate(ctx context.Context, id int64) (*models.User, error)
}

type UserHandler struct {
	userService userService
}

func NewUserHandler(userService userService) *UserHandler {
	return &UserHandler{userService: userService}
}

// currentUser reads the authenticated id or writes a 401.
func currentUser(c *gin.Context) (int64, bool) {
	id, err := middlewares.CurrentUserID(c)
	if err != nil {
		responses.Fail(c, http.StatusUnauthorized, err, "Unauthorized")
		return 0, false
	}
	return id, true
}

// ListUsers handles GET /api/v1/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		fail(c, err, "Failed to retrieve users")
		return
	}
	responses.Success(c, http.StatusOK, models.SerializeUsers(users), "Users retrieved successfully")
}

// GetMe handles GET /api/v1/users/me
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		fail(c, err, "Failed to retrieve user")
		return
	}
	responses.Success(c, http.StatusOK, user.Serialize(), "User retrieved successfully")
}

// UpdateMe handles PATCH /api/v1/users/me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req services.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		fail(c, err, "Failed to update user")
		return
	}
	responses.Success(c, http.StatusOK, user.Serialize(), "User updated successfully")
}

// DeactivateMe handles DELETE /api/v1/users/me
func (h *UserHandler) DeactivateMe(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	user, err := h.userService.Deactivate(c.Request.Context(), userID)
	if err != nil {
		fail(c, err, "Failed to deactivate user")
		return
	}
	responses.Success(c, http.StatusOK, user.Serialize(), "User deactivated")
}
