package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitness-planner/internal/domain"
	"fitness-planner/internal/service"
)

// UserHandler holds the user service dependency.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers handles GET /api/users.
// Responds with {"users": [...]} so an empty collection is still an array.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve users.")
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// CreateUser handles POST /api/users. The server assigns the identifier; a
// user posted without a schedule receives the default weekly template.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var user domain.User
	if err := c.ShouldBindJSON(&user); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user payload: "+err.Error())
		return
	}
	user.ID = "" // ids are always server-assigned on create

	created, err := h.userService.CreateUser(c.Request.Context(), user)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to create user.")
		return
	}
	c.JSON(http.StatusOK, created)
}

// UpdateUser handles PUT /api/users. The body must carry the full user
// document including its id; the stored document is replaced wholesale.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var user domain.User
	if err := c.ShouldBindJSON(&user); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user payload: "+err.Error())
		return
	}
	if user.ID == "" {
		abortWithError(c, http.StatusBadRequest, "Missing user id.")
		return
	}

	updated, err := h.userService.UpdateUser(c.Request.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			abortWithError(c, http.StatusNotFound, "User not found.")
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update user.")
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteUser handles DELETE /api/users?id=.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		abortWithError(c, http.StatusBadRequest, "Missing user id.")
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, "User not found.")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to delete user.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
