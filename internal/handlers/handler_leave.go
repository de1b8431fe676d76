package handlers

import (
	"net/http"

	portssvc "github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/ports/services"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/dto"
	"github.com/gin-gonic/gin"
)

// leaveHandler handles the leave application endpoints.
type leaveHandler struct {
	leaveService portssvc.LeaveSvcFacade
}

func newLeaveHandler(ls portssvc.LeaveSvcFacade) *leaveHandler {
	return &leaveHandler{leaveService: ls}
}

// registerLeaveRoutes registers the leave application routes.
func registerLeaveRoutes(rg *gin.RouterGroup, leaveService portssvc.LeaveSvcFacade) {
	h := newLeaveHandler(leaveService)

	leaves := rg.Group("/leave-applications")
	{
		leaves.POST("", h.submit)
		leaves.GET("", h.list)
		leaves.GET("/calendar", h.calendar)
		leaves.GET("/:id", h.get)
	}
}

// submit godoc
// @Summary Submit a leave application
// @Description Files a pending application for the caller. Overlapping periods and balance shortfalls are rejected with structured detail.
// @Tags leave
// @Accept json
// @Produce json
// @Param application body dto.CreateLeaveApplicationRequest true "Application"
// @Success 201 {object} dto.LeaveApplicationResponse
// @Failure 400 {object} ErrorResponse "Validation, overlap or balance failure"
// @Failure 403 {object} ErrorResponse "Account not approved"
// @Failure 422 {object} ErrorResponse "More than one tracked leave type"
// @Security BearerAuth
// @Router /leave-applications [post]
func (h *leaveHandler) submit(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateLeaveApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	app, err := h.leaveService.SubmitApplication(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to submit application")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLeaveApplicationResponse(app))
}

// list godoc
// @Summary List leave applications
// @Description Admins see every application; employees see their own. Supports status, name search and date range filters.
// @Tags leave
// @Produce json
// @Param status query string false "pending, approved or rejected"
// @Param search query string false "Employee name search"
// @Param fromDate query string false "Window start (YYYY-MM-DD)"
// @Param toDate query string false "Window end (YYYY-MM-DD)"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} dto.LeaveApplicationResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave-applications [get]
func (h *leaveHandler) list(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var params dto.ListApplicationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	apps, err := h.leaveService.ListApplications(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err, "Failed to list applications")
		return
	}
	c.JSON(http.StatusOK, dto.ToLeaveApplicationResponses(apps))
}

// calendar godoc
// @Summary Leave calendar
// @Description Returns the year's applications for calendar display. Non-admins see approved leave only.
// @Tags leave
// @Produce json
// @Param year query int false "Calendar year (default: current)"
// @Success 200 {array} dto.LeaveApplicationResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave-applications/calendar [get]
func (h *leaveHandler) calendar(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var params dto.CalendarParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	apps, err := h.leaveService.CalendarApplications(c.Request.Context(), userID, params.Year)
	if err != nil {
		respondError(c, err, "Failed to load calendar")
		return
	}
	c.JSON(http.StatusOK, dto.ToLeaveApplicationResponses(apps))
}

// get godoc
// @Summary Get one leave application
// @Description Returns a single application. Employees may only read their own.
// @Tags leave
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} dto.LeaveApplicationResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave-applications/{id} [get]
func (h *leaveHandler) get(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	app, err := h.leaveService.GetApplicationByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to load application")
		return
	}
	c.JSON(http.StatusOK, dto.ToLeaveApplicationResponse(app))
}
