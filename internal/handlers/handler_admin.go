package handlers

import (
	"net/http"

	portssvc "github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/ports/services"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/dto"
	"github.com/gin-gonic/gin"
)

// adminHandler handles the admin-only user lifecycle and decision endpoints.
type adminHandler struct {
	userService  portssvc.UserSvcFacade
	leaveService portssvc.LeaveSvcFacade
}

func newAdminHandler(us portssvc.UserSvcFacade, ls portssvc.LeaveSvcFacade) *adminHandler {
	return &adminHandler{userService: us, leaveService: ls}
}

// registerAdminRoutes registers the admin surface behind the admin check.
func registerAdminRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, leaveService portssvc.LeaveSvcFacade) {
	h := newAdminHandler(userService, leaveService)

	admin := rg.Group("/admin", adminRequired(userService))
	{
		admin.GET("/users", h.listUsers)
		admin.PUT("/users/:id/approve", h.approveUser)
		admin.PUT("/users/:id/reject", h.rejectUser)
		admin.PUT("/users/:id/deactivate", h.deactivateUser)
		admin.PUT("/users/:id/reactivate", h.reactivateUser)
		admin.PUT("/applications/:id/status", h.decideApplication)
	}
}

// listUsers godoc
// @Summary List users
// @Description Lists accounts with optional status, department and search filters.
// @Tags admin
// @Produce json
// @Param status query string false "pending, approved, rejected or deactivated"
// @Param department query string false "Department filter"
// @Param search query string false "Name or e-mail search"
// @Success 200 {object} dto.ListUsersResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users [get]
func (h *adminHandler) listUsers(c *gin.Context) {
	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, dto.ListUsersResponse{Users: dto.ToUserResponses(users)})
}

// lifecycleAction runs one status transition on behalf of the caller.
func (h *adminHandler) lifecycleAction(c *gin.Context, action func(adminID, userID string) error) {
	adminID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := action(adminID, c.Param("id")); err != nil {
		respondError(c, err, "Failed to update user status")
	}
}

// approveUser godoc
// @Summary Approve a pending account
// @Description Approves a pending registration, provisions the current-year leave balance and notifies the user.
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "User is not pending"
// @Security BearerAuth
// @Router /admin/users/{id}/approve [put]
func (h *adminHandler) approveUser(c *gin.Context) {
	h.lifecycleAction(c, func(adminID, userID string) error {
		user, err := h.userService.ApproveUser(c.Request.Context(), adminID, userID)
		if err != nil {
			return err
		}
		c.JSON(http.StatusOK, dto.ToUserResponse(user))
		return nil
	})
}

// rejectUser godoc
// @Summary Reject a pending account
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "User is not pending"
// @Security BearerAuth
// @Router /admin/users/{id}/reject [put]
func (h *adminHandler) rejectUser(c *gin.Context) {
	h.lifecycleAction(c, func(adminID, userID string) error {
		user, err := h.userService.RejectUser(c.Request.Context(), adminID, userID)
		if err != nil {
			return err
		}
		c.JSON(http.StatusOK, dto.ToUserResponse(user))
		return nil
	})
}

// deactivateUser godoc
// @Summary Deactivate an approved account
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "User is not approved"
// @Security BearerAuth
// @Router /admin/users/{id}/deactivate [put]
func (h *adminHandler) deactivateUser(c *gin.Context) {
	h.lifecycleAction(c, func(adminID, userID string) error {
		user, err := h.userService.DeactivateUser(c.Request.Context(), adminID, userID)
		if err != nil {
			return err
		}
		c.JSON(http.StatusOK, dto.ToUserResponse(user))
		return nil
	})
}

// reactivateUser godoc
// @Summary Reactivate a deactivated account
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "User is not deactivated"
// @Security BearerAuth
// @Router /admin/users/{id}/reactivate [put]
func (h *adminHandler) reactivateUser(c *gin.Context) {
	h.lifecycleAction(c, func(adminID, userID string) error {
		user, err := h.userService.ReactivateUser(c.Request.Context(), adminID, userID)
		if err != nil {
			return err
		}
		c.JSON(http.StatusOK, dto.ToUserResponse(user))
		return nil
	})
}

// decideApplication godoc
// @Summary Decide a leave application
// @Description Approves or rejects a pending application. Approval deducts the tracked category's balance. A decided application cannot be decided again.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param decision body dto.DecideApplicationRequest true "Decision"
// @Success 200 {object} dto.LeaveApplicationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Application already decided"
// @Security BearerAuth
// @Router /admin/applications/{id}/status [put]
func (h *adminHandler) decideApplication(c *gin.Context) {
	adminID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.DecideApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	app, err := h.leaveService.DecideApplication(c.Request.Context(), adminID, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to decide application")
		return
	}
	c.JSON(http.StatusOK, dto.ToLeaveApplicationResponse(app))
}
