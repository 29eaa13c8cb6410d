package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"drivehub-admin-backend/internal/common/middleware"
	"drivehub-admin-backend/internal/features/confirmations/models"
	"drivehub-admin-backend/internal/features/confirmations/service"
)

type ConfirmationsHandler struct {
	service service.Service
}

func NewConfirmationsHandler(service service.Service) *ConfirmationsHandler {
	return &ConfirmationsHandler{service: service}
}

func (h *ConfirmationsHandler) RegisterRoutes(router *gin.RouterGroup) {
	actions := router.Group("/actions")
	actions.Use(middleware.RequireActor())
	{
		actions.POST("", h.Request)
		actions.GET("/:id", h.Get)
		actions.POST("/:id/confirm", h.Confirm)
		actions.DELETE("/:id", h.Cancel)
	}
}

// @Summary Stage an action for confirmation
// @Description Stage a status change or deletion. Protected-admin rules are checked before anything is staged; the staged action expires if not confirmed within the configured window.
// @Tags actions
// @Accept json
// @Produce json
// @Param X-Admin-ID header int true "Acting admin's user ID"
// @Param request body models.ActionRequest true "Action to stage"
// @Success 201 {object} models.PendingAction
// @Failure 400 {object} middleware.ErrorResponse "Validation errors"
// @Failure 403 {object} middleware.ErrorResponse "Protected admin account"
// @Failure 404 {object} middleware.ErrorResponse "Target not found"
// @Router /actions [post]
func (h *ConfirmationsHandler) Request(c *gin.Context) {
	var req models.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	action, err := h.service.Request(c.Request.Context(), middleware.ActorID(c), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, action)
}

// @Summary Get a staged action
// @Tags actions
// @Produce json
// @Param X-Admin-ID header int true "Acting admin's user ID"
// @Param id path string true "Confirmation ID"
// @Success 200 {object} models.PendingAction
// @Failure 404 {object} middleware.ErrorResponse "Unknown or expired confirmation"
// @Router /actions/{id} [get]
func (h *ConfirmationsHandler) Get(c *gin.Context) {
	action, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, action)
}

// @Summary Confirm a staged action
// @Description Execute the staged action against the booking platform. On upstream failure the action is consumed and the platform's error detail is returned; no state change is assumed.
// @Tags actions
// @Produce json
// @Param X-Admin-ID header int true "Acting admin's user ID"
// @Param id path string true "Confirmation ID"
// @Success 200 {object} models.PendingAction
// @Failure 404 {object} middleware.ErrorResponse "Unknown or expired confirmation"
// @Failure 502 {object} middleware.ErrorResponse
// @Router /actions/{id}/confirm [post]
func (h *ConfirmationsHandler) Confirm(c *gin.Context) {
	action, err := h.service.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, action)
}

// @Summary Cancel a staged action
// @Tags actions
// @Param X-Admin-ID header int true "Acting admin's user ID"
// @Param id path string true "Confirmation ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse "Unknown or expired confirmation"
// @Router /actions/{id} [delete]
func (h *ConfirmationsHandler) Cancel(c *gin.Context) {
	if err := h.service.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
