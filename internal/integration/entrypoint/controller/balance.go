// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/application/usecase/balance"
	domainerror "github.com/trip-planner/backend/internal/domain/error"
	"github.com/trip-planner/backend/internal/integration/entrypoint/dto"
	"github.com/trip-planner/backend/internal/integration/entrypoint/middleware"
)

// BalanceController handles balance summary endpoints.
type BalanceController struct {
	tripBalancesUseCase  *balance.GetTripBalancesUseCase
	groupBalancesUseCase *balance.GetGroupBalancesUseCase
}

// NewBalanceController creates a new balance controller instance.
func NewBalanceController(
	tripBalancesUseCase *balance.GetTripBalancesUseCase,
	groupBalancesUseCase *balance.GetGroupBalancesUseCase,
) *BalanceController {
	return &BalanceController{
		tripBalancesUseCase:  tripBalancesUseCase,
		groupBalancesUseCase: groupBalancesUseCase,
	}
}

// GetTripBalances handles GET /trips/:id/balances requests.
func (c *BalanceController) GetTripBalances(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse trip ID from URL
	tripIDStr := ctx.Param("id")
	tripID, err := uuid.Parse(tripIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid trip ID format",
		})
		return
	}

	// Build input
	input := balance.GetTripBalancesInput{
		UserID: userID,
		TripID: tripID,
	}

	// Execute use case
	output, err := c.tripBalancesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBalanceError(ctx, err)
		return
	}

	// Build response
	response := dto.ToBalanceSummaryResponse(output.Summary)
	ctx.JSON(http.StatusOK, response)
}

// GetGroupBalances handles GET /groups/:id/balances requests.
func (c *BalanceController) GetGroupBalances(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse group ID from URL
	groupIDStr := ctx.Param("id")
	groupID, err := uuid.Parse(groupIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid group ID format",
		})
		return
	}

	// Build input
	input := balance.GetGroupBalancesInput{
		UserID:  userID,
		GroupID: groupID,
	}

	// Execute use case
	output, err := c.groupBalancesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBalanceError(ctx, err)
		return
	}

	// Build response
	response := dto.ToBalanceSummaryResponse(output.Summary)
	ctx.JSON(http.StatusOK, response)
}

// handleBalanceError handles balance errors and returns appropriate HTTP responses.
func (c *BalanceController) handleBalanceError(ctx *gin.Context, err error) {
	var tripErr *domainerror.TripError
	if errors.As(err, &tripErr) {
		statusCode := http.StatusBadRequest
		if tripErr.Code == domainerror.ErrCodeTripNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: tripErr.Message,
			Code:  string(tripErr.Code),
		})
		return
	}

	// Membership checks surface as group errors
	var groupErr *domainerror.GroupError
	if errors.As(err, &groupErr) {
		statusCode := http.StatusForbidden
		if groupErr.Code == domainerror.ErrCodeGroupNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: groupErr.Message,
			Code:  string(groupErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
