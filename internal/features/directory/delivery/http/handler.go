package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"drivehub-admin-backend/internal/common/validation"
	"drivehub-admin-backend/internal/features/directory/models"
	"drivehub-admin-backend/internal/features/directory/service"
)

type DirectoryHandler struct {
	service service.Service
}

func NewDirectoryHandler(service service.Service) *DirectoryHandler {
	return &DirectoryHandler{service: service}
}

func (h *DirectoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.PUT("/:id", h.UpdateUser)
		users.POST("/:id/reset-password", h.ResetPassword)
	}

	admins := router.Group("/admins")
	{
		admins.POST("", h.CreateAdmin)
		admins.GET("/settings", h.AdminSettings)
	}
}

// @Summary List users
// @Description List the user directory for one role tab, filtered by status and free-text search
// @Tags directory
// @Produce json
// @Param role query string false "Role tab" Enums(admin,instructor,student) default(admin)
// @Param status query string false "Status filter (empty = all)" Enums(active,inactive,suspended)
// @Param search query string false "Free-text search: ID (optionally #-prefixed), name, email, phone or ID number"
// @Success 200 {array} models.UserRecord
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /users [get]
func (h *DirectoryHandler) ListUsers(c *gin.Context) {
	role := c.DefaultQuery("role", models.RoleAdmin)
	if !validRole(role) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	status := c.Query("status")
	if status != "" && !validStatus(status) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	users, err := h.service.ListUsers(c.Request.Context(), role, status, c.Query("search"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// @Summary Create admin account
// @Description Create a new admin account. The account is active immediately, without a verification step.
// @Tags directory
// @Accept json
// @Produce json
// @Param form body validation.CreateAdminForm true "Creation form"
// @Success 201 {object} models.UserRecord
// @Failure 400 {object} middleware.ErrorResponse "Field validation errors"
// @Failure 502 {object} middleware.ErrorResponse
// @Router /admins [post]
func (h *DirectoryHandler) CreateAdmin(c *gin.Context) {
	var form validation.CreateAdminForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	created, err := h.service.CreateAdmin(c.Request.Context(), form)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary Get admin settings
// @Tags directory
// @Produce json
// @Success 200 {object} models.AdminSettings
// @Failure 502 {object} middleware.ErrorResponse
// @Router /admins/settings [get]
func (h *DirectoryHandler) AdminSettings(c *gin.Context) {
	settings, err := h.service.AdminSettings(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// @Summary Update user profile
// @Tags directory
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param form body validation.UpdateProfileForm true "Profile fields"
// @Success 200 {object} models.UserRecord
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /users/{id} [put]
func (h *DirectoryHandler) UpdateUser(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	var form validation.UpdateProfileForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updated, err := h.service.UpdateUser(c.Request.Context(), id, form)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// @Summary Reset a user's password
// @Tags directory
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param form body validation.ResetPasswordForm true "New password"
// @Success 204
// @Failure 400 {object} middleware.ErrorResponse "Field validation errors"
// @Router /users/{id}/reset-password [post]
func (h *DirectoryHandler) ResetPassword(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	var form validation.ResetPasswordForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), id, form); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

func userIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return 0, false
	}
	return id, true
}

func validRole(role string) bool {
	for _, r := range models.ValidRoles {
		if role == r {
			return true
		}
	}
	return false
}

func validStatus(status string) bool {
	for _, s := range models.ValidStatuses {
		if status == s {
			return true
		}
	}
	return false
}
