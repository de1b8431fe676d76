package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/apperrors"
	portssvc "github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/ports/services"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps service errors to HTTP responses. Business-rule failures
// carry their structured detail in the body; anything unrecognized becomes a
// logged 500 with a generic message.
func respondError(c *gin.Context, err error, fallback string) {
	var balanceErr *apperrors.BalanceError
	if errors.As(err, &balanceErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      balanceErr.Error(),
			"leave_type": balanceErr.LeaveType,
			"remaining":  balanceErr.Remaining,
			"requested":  balanceErr.Requested,
		})
		return
	}

	var overlapErr *apperrors.OverlapError
	if errors.As(err, &overlapErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":          overlapErr.Error(),
			"overlapping_id": overlapErr.OverlappingID,
		})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnprocessable):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}

// requireUserID extracts the authenticated user ID or aborts with 401.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return userID, true
}

// adminRequired loads the authenticated user and aborts with 403 unless they
// hold the admin role.
func adminRequired(userService portssvc.UserSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}
		user, err := userService.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err, "Failed to load user")
			c.Abort()
			return
		}
		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: "Admin role required"})
			return
		}
		c.Next()
	}
}
