package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/ports/services"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/dto"
	"github.com/gin-gonic/gin"
)

// userHandler handles the self-service user endpoints.
type userHandler struct {
	userService    portssvc.UserSvcFacade
	balanceService portssvc.BalanceSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade, bs portssvc.BalanceSvcFacade) *userHandler {
	return &userHandler{userService: us, balanceService: bs}
}

// registerUserRoutes registers the self-service user routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, balanceService portssvc.BalanceSvcFacade) {
	h := newUserHandler(userService, balanceService)

	users := rg.Group("/users")
	{
		users.GET("/me", h.getProfile)
		users.PUT("/me", h.updateProfile)
		users.GET("/me/balance", h.getBalance)
	}
}

// getProfile godoc
// @Summary Own profile
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me [get]
func (h *userHandler) getProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to load profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// updateProfile godoc
// @Summary Update own profile
// @Description Updates the caller's name, contacts and emergency fields.
// @Tags users
// @Accept json
// @Produce json
// @Param profile body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me [put]
func (h *userHandler) updateProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// getBalance godoc
// @Summary Own leave balance
// @Description Returns the caller's ledger row for the given year (default: current), creating it on first access.
// @Tags users
// @Produce json
// @Param year query int false "Ledger year"
// @Success 200 {object} dto.BalanceResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me/balance [get]
func (h *userHandler) getBalance(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var params dto.BalanceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}
	if params.Year <= 0 {
		params.Year = time.Now().Year()
	}

	balance, err := h.balanceService.GetOrCreateBalance(c.Request.Context(), userID, params.Year)
	if err != nil {
		respondError(c, err, "Failed to load balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceResponse(balance))
}
