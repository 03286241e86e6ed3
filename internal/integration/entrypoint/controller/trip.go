// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/application/usecase/trip"
	domainerror "github.com/trip-planner/backend/internal/domain/error"
	"github.com/trip-planner/backend/internal/integration/entrypoint/dto"
	"github.com/trip-planner/backend/internal/integration/entrypoint/middleware"
)

// TripController handles trip endpoints.
type TripController struct {
	createUseCase     *trip.CreateTripUseCase
	listUseCase       *trip.ListTripsUseCase
	getUseCase        *trip.GetTripUseCase
	updateUseCase     *trip.UpdateTripUseCase
	regenerateUseCase *trip.RegenerateScheduleUseCase
	deleteUseCase     *trip.DeleteTripUseCase
}

// NewTripController creates a new trip controller instance.
func NewTripController(
	createUseCase *trip.CreateTripUseCase,
	listUseCase *trip.ListTripsUseCase,
	getUseCase *trip.GetTripUseCase,
	updateUseCase *trip.UpdateTripUseCase,
	regenerateUseCase *trip.RegenerateScheduleUseCase,
	deleteUseCase *trip.DeleteTripUseCase,
) *TripController {
	return &TripController{
		createUseCase:     createUseCase,
		listUseCase:       listUseCase,
		getUseCase:        getUseCase,
		updateUseCase:     updateUseCase,
		regenerateUseCase: regenerateUseCase,
		deleteUseCase:     deleteUseCase,
	}
}

// Create handles POST /groups/:id/trips requests.
func (c *TripController) Create(ctx *gin.Context) {
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

	// Parse request body
	var req dto.CreateTripRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTripFields),
		})
		return
	}

	// Parse dates
	startDate, err := dto.ParseDate(req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start date, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateRange),
		})
		return
	}
	endDate, err := dto.ParseDate(req.EndDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid end date, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateRange),
		})
		return
	}

	// Build input
	input := trip.CreateTripInput{
		UserID:      userID,
		GroupID:     groupID,
		Name:        req.Name,
		Destination: req.Destination,
		StartDate:   startDate,
		EndDate:     endDate,
	}

	// Execute use case
	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTripError(ctx, err)
		return
	}

	// Build response
	response := dto.ToTripResponse(output.Trip)
	ctx.JSON(http.StatusCreated, response)
}

// List handles GET /groups/:id/trips requests.
func (c *TripController) List(ctx *gin.Context) {
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
	input := trip.ListTripsInput{
		UserID:  userID,
		GroupID: groupID,
	}

	// Execute use case
	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTripError(ctx, err)
		return
	}

	// Build response
	response := dto.ToTripListResponse(output.Trips)
	ctx.JSON(http.StatusOK, response)
}

// Get handles GET /trips/:id requests.
func (c *TripController) Get(ctx *gin.Context) {
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
	input := trip.GetTripInput{
		UserID: userID,
		TripID: tripID,
	}

	// Execute use case
	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTripError(ctx, err)
		return
	}

	// Build response
	response := dto.ToTripResponse(output.Trip)
	ctx.JSON(http.StatusOK, response)
}

// ListDays handles GET /trips/:id/days requests. Days are generated from the
// trip's date range and are read-only; the schedule endpoint replaces them.
func (c *TripController) ListDays(ctx *gin.Context) {
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
	input := trip.GetTripInput{
		UserID: userID,
		TripID: tripID,
	}

	// Execute use case
	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTripError(ctx, err)
		return
	}

	// Build response
	tripResponse := dto.ToTripResponse(output.Trip)
	ctx.JSON(http.StatusOK, dto.TripDayListResponse{Days: tripResponse.Days})
}

// Update handles PUT /trips/:id requests.
func (c *TripController) Update(ctx *gin.Context) {
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

	// Parse request body
	var req dto.UpdateTripRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTripFields),
		})
		return
	}

	// Build input
	input := trip.UpdateTripInput{
		UserID:      userID,
		TripID:      tripID,
		Name:        req.Name,
		Destination: req.Destination,
	}

	// Execute use case
	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTripError(ctx, err)
		return
	}

	// Build response
	response := dto.ToTripResponse(output.Trip)
	ctx.JSON(http.StatusOK, response)
}

// ChangeDates handles PUT /trips/:id/schedule requests. The whole day
// schedule is regenerated and everything anchored to the old days is
// removed, so the client must confirm explicitly.
func (c *TripController) ChangeDates(ctx *gin.Context) {
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

	// Parse request body; binding rejects confirm=false
	var req dto.ChangeTripDatesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTripFields),
		})
		return
	}

	// Parse dates
	startDate, err := dto.ParseDate(req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start date, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateRange),
		})
		return
	}
	endDate, err := dto.ParseDate(req.EndDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid end date, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateRange),
		})
		return
	}

	// Build input
	input := trip.RegenerateScheduleInput{
		UserID:    userID,
		TripID:    tripID,
		StartDate: startDate,
		EndDate:   endDate,
	}

	// Execute use case
	output, err := c.regenerateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTripError(ctx, err)
		return
	}

	// Build response
	response := dto.ScheduleChangeResponse{
		Trip:            dto.ToTripResponse(output.Trip),
		DeletedEvents:   output.DeletedEvents,
		DeletedExpenses: output.DeletedExpenses,
	}
	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /trips/:id requests.
func (c *TripController) Delete(ctx *gin.Context) {
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
	input := trip.DeleteTripInput{
		UserID: userID,
		TripID: tripID,
	}

	// Execute use case
	err = c.deleteUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTripError(ctx, err)
		return
	}

	// Return no content on success
	ctx.Status(http.StatusNoContent)
}

// handleTripError handles trip errors and returns appropriate HTTP responses.
func (c *TripController) handleTripError(ctx *gin.Context, err error) {
	var tripErr *domainerror.TripError
	if errors.As(err, &tripErr) {
		statusCode := c.getStatusCodeForTripError(tripErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: tripErr.Message,
			Code:  string(tripErr.Code),
		})
		return
	}

	// Membership checks surface as group errors
	var groupErr *domainerror.GroupError
	if errors.As(err, &groupErr) {
		statusCode := c.getStatusCodeForMembershipError(groupErr.Code)
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

// getStatusCodeForTripError maps trip error codes to HTTP status codes.
func (c *TripController) getStatusCodeForTripError(code domainerror.TripErrorCode) int {
	switch code {
	case domainerror.ErrCodeTripNotFound,
		domainerror.ErrCodeTripDayNotFound,
		domainerror.ErrCodeEventNotFound,
		domainerror.ErrCodePoiNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidDateRange,
		domainerror.ErrCodeTripNameRequired,
		domainerror.ErrCodeDayNotInTrip,
		domainerror.ErrCodeEventTitleRequired,
		domainerror.ErrCodePoiNameRequired,
		domainerror.ErrCodeMissingTripFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForMembershipError maps group error codes raised by trip
// operations to HTTP status codes.
func (c *TripController) getStatusCodeForMembershipError(code domainerror.GroupErrorCode) int {
	switch code {
	case domainerror.ErrCodeGroupNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotGroupAdmin,
		domainerror.ErrCodeNotGroupMember:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
