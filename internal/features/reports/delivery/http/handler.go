package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"drivehub-admin-backend/internal/features/reports/service"
)

type ReportsHandler struct {
	service service.Service
}

func NewReportsHandler(service service.Service) *ReportsHandler {
	return &ReportsHandler{service: service}
}

func (h *ReportsHandler) RegisterRoutes(router *gin.RouterGroup) {
	instructors := router.Group("/instructors")
	{
		instructors.GET("/summaries", h.Summaries)
		instructors.GET("/:id/earnings", h.Earnings)
		instructors.GET("/:id/overview", h.Overview)
	}

	router.GET("/revenue/stats", h.RevenueStats)
	router.GET("/reports/earnings/export", h.ExportEarnings)
}

// @Summary List instructor summaries
// @Description Per-instructor earnings and lesson aggregates for the earnings overview screen
// @Tags reports
// @Produce json
// @Success 200 {array} models.InstructorSummary
// @Failure 502 {object} middleware.ErrorResponse
// @Router /instructors/summaries [get]
func (h *ReportsHandler) Summaries(c *gin.Context) {
	summaries, err := h.service.Summaries(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// @Summary Get detailed earnings
// @Tags reports
// @Produce json
// @Param id path int true "Instructor ID"
// @Success 200 {object} models.DetailedEarningsReport
// @Failure 404 {object} middleware.ErrorResponse
// @Router /instructors/{id}/earnings [get]
func (h *ReportsHandler) Earnings(c *gin.Context) {
	id, ok := instructorIDParam(c)
	if !ok {
		return
	}

	report, err := h.service.Earnings(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// @Summary Get instructor overview
// @Description Schedule, time off and bookings for one instructor, fetched concurrently
// @Tags reports
// @Produce json
// @Param id path int true "Instructor ID"
// @Success 200 {object} models.InstructorOverview
// @Failure 502 {object} middleware.ErrorResponse
// @Router /instructors/{id}/overview [get]
func (h *ReportsHandler) Overview(c *gin.Context) {
	id, ok := instructorIDParam(c)
	if !ok {
		return
	}

	overview, err := h.service.Overview(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// @Summary Get revenue stats
// @Tags reports
// @Produce json
// @Param period query string false "Aggregation period" Enums(month,quarter,year)
// @Success 200 {object} models.RevenueStats
// @Failure 502 {object} middleware.ErrorResponse
// @Router /revenue/stats [get]
func (h *ReportsHandler) RevenueStats(c *gin.Context) {
	stats, err := h.service.RevenueStats(c.Request.Context(), c.Query("period"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// @Summary Export the earnings report
// @Description Build the multi-instructor earnings report and download it. Instructors whose detail fetch fails are dropped; the export fails only when no instructor could be fetched.
// @Tags reports
// @Produce application/octet-stream
// @Param format query string true "Export format" Enums(xlsx,pdf,csv)
// @Param sheet query string false "CSV section" Enums(summary,monthly,bookings)
// @Param instructor_id query []int false "Instructor IDs (repeatable; empty = all)"
// @Success 200 {file} binary
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse "No instructor data available"
// @Router /reports/earnings/export [get]
func (h *ReportsHandler) ExportEarnings(c *gin.Context) {
	format := c.DefaultQuery("format", service.FormatXLSX)

	var instructorIDs []int64
	for _, raw := range c.QueryArray("instructor_id") {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid instructor_id"})
			return
		}
		instructorIDs = append(instructorIDs, id)
	}

	file, err := h.service.ExportEarnings(c.Request.Context(), instructorIDs, format, c.Query("sheet"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

func instructorIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid instructor ID format"})
		return 0, false
	}
	return id, true
}
