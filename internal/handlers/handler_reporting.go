package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/ports/services"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves the admin dashboard and analytics endpoints.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the analytics routes. The caller is
// expected to mount these behind the admin guard.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	rg.GET("/dashboard/stats", h.dashboardStats)

	analytics := rg.Group("/analytics")
	{
		analytics.GET("/dashboard", h.analyticsDashboard)
		analytics.GET("/utilization", h.utilization)
		analytics.GET("/coverage-risk", h.coverageRisk)
	}
}

// dashboardStats godoc
// @Summary Application counts by status
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/dashboard/stats [get]
func (h *reportingHandler) dashboardStats(c *gin.Context) {
	stats, err := h.reportingService.DashboardStats(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load dashboard stats")
		return
	}
	c.JSON(http.StatusOK, dto.DashboardStatsResponse{
		Total:    stats.Total,
		Pending:  stats.Pending,
		Approved: stats.Approved,
		Rejected: stats.Rejected,
	})
}

// analyticsDashboard godoc
// @Summary Aggregated analytics dashboard
// @Description Department and monthly breakdowns, leave type mix, upcoming approved leaves and workflow rates.
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.AnalyticsDashboardResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/analytics/dashboard [get]
func (h *reportingHandler) analyticsDashboard(c *gin.Context) {
	dashboard, err := h.reportingService.AnalyticsDashboard(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load analytics dashboard")
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// utilization godoc
// @Summary Leave utilization for a year
// @Tags analytics
// @Produce json
// @Param year query int false "Year (defaults to the current year)"
// @Success 200 {object} dto.UtilizationResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/analytics/utilization [get]
func (h *reportingHandler) utilization(c *gin.Context) {
	var params dto.UtilizationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}
	year := params.Year
	if year == 0 {
		year = time.Now().Year()
	}

	utilization, err := h.reportingService.Utilization(c.Request.Context(), year)
	if err != nil {
		respondError(c, err, "Failed to compute utilization")
		return
	}
	c.JSON(http.StatusOK, utilization)
}

// coverageRisk godoc
// @Summary Department coverage risk over a window
// @Description Peak simultaneous absence per department, with a risk level derived from the absence rate.
// @Tags analytics
// @Produce json
// @Param from query string true "Window start (YYYY-MM-DD)"
// @Param to query string true "Window end (YYYY-MM-DD)"
// @Success 200 {object} dto.CoverageRiskResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/analytics/coverage-risk [get]
func (h *reportingHandler) coverageRisk(c *gin.Context) {
	var params dto.CoverageRiskParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	from, to, err := params.ParseDates()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "to must not be before from"})
		return
	}

	departments, err := h.reportingService.CoverageRisk(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err, "Failed to compute coverage risk")
		return
	}
	c.JSON(http.StatusOK, dto.CoverageRiskResponse{
		FromDate:    params.FromDate,
		ToDate:      params.ToDate,
		Departments: departments,
	})
}
