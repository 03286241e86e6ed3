// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/application/usecase/event"
	domainerror "github.com/trip-planner/backend/internal/domain/error"
	"github.com/trip-planner/backend/internal/integration/entrypoint/dto"
	"github.com/trip-planner/backend/internal/integration/entrypoint/middleware"
)

// EventController handles itinerary event endpoints.
type EventController struct {
	createUseCase *event.CreateEventUseCase
	listUseCase   *event.ListEventsUseCase
	updateUseCase *event.UpdateEventUseCase
	deleteUseCase *event.DeleteEventUseCase
}

// NewEventController creates a new event controller instance.
func NewEventController(
	createUseCase *event.CreateEventUseCase,
	listUseCase *event.ListEventsUseCase,
	updateUseCase *event.UpdateEventUseCase,
	deleteUseCase *event.DeleteEventUseCase,
) *EventController {
	return &EventController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /trips/:id/events requests.
func (c *EventController) Create(ctx *gin.Context) {
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
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTripFields),
		})
		return
	}

	// Parse day ID
	dayID, err := uuid.Parse(req.DayID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid day ID format",
			Code:  string(domainerror.ErrCodeDayNotInTrip),
		})
		return
	}

	// Build input
	input := event.CreateEventInput{
		UserID:    userID,
		TripID:    tripID,
		DayID:     dayID,
		Title:     req.Title,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Location:  req.Location,
		Notes:     req.Notes,
	}

	// Execute use case
	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleEventError(ctx, err)
		return
	}

	// Build response
	response := dto.ToEventResponse(output.Event)
	ctx.JSON(http.StatusCreated, response)
}

// List handles GET /trips/:id/events requests. An optional day_id query
// parameter narrows the list to one day.
func (c *EventController) List(ctx *gin.Context) {
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

	// Parse optional day filter from query
	var dayID *uuid.UUID
	if dayIDStr := ctx.Query("day_id"); dayIDStr != "" {
		parsed, err := uuid.Parse(dayIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid day ID format",
			})
			return
		}
		dayID = &parsed
	}

	// Build input
	input := event.ListEventsInput{
		UserID: userID,
		TripID: tripID,
		DayID:  dayID,
	}

	// Execute use case
	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleEventError(ctx, err)
		return
	}

	// Build response
	response := dto.ToEventListResponse(output.Events)
	ctx.JSON(http.StatusOK, response)
}

// Update handles PUT /events/:id requests.
func (c *EventController) Update(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse event ID from URL
	eventIDStr := ctx.Param("id")
	eventID, err := uuid.Parse(eventIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid event ID format",
		})
		return
	}

	// Parse request body
	var req dto.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTripFields),
		})
		return
	}

	// Parse day ID
	dayID, err := uuid.Parse(req.DayID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid day ID format",
			Code:  string(domainerror.ErrCodeDayNotInTrip),
		})
		return
	}

	// Build input
	input := event.UpdateEventInput{
		UserID:    userID,
		EventID:   eventID,
		DayID:     dayID,
		Title:     req.Title,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Location:  req.Location,
		Notes:     req.Notes,
	}

	// Execute use case
	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleEventError(ctx, err)
		return
	}

	// Build response
	response := dto.ToEventResponse(output.Event)
	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /events/:id requests.
func (c *EventController) Delete(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse event ID from URL
	eventIDStr := ctx.Param("id")
	eventID, err := uuid.Parse(eventIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid event ID format",
		})
		return
	}

	// Build input
	input := event.DeleteEventInput{
		UserID:  userID,
		EventID: eventID,
	}

	// Execute use case
	err = c.deleteUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleEventError(ctx, err)
		return
	}

	// Return no content on success
	ctx.Status(http.StatusNoContent)
}

// handleEventError handles event errors and returns appropriate HTTP responses.
func (c *EventController) handleEventError(ctx *gin.Context, err error) {
	var tripErr *domainerror.TripError
	if errors.As(err, &tripErr) {
		statusCode := c.getStatusCodeForEventError(tripErr.Code)
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

// getStatusCodeForEventError maps trip error codes raised by event
// operations to HTTP status codes.
func (c *EventController) getStatusCodeForEventError(code domainerror.TripErrorCode) int {
	switch code {
	case domainerror.ErrCodeTripNotFound,
		domainerror.ErrCodeTripDayNotFound,
		domainerror.ErrCodeEventNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeDayNotInTrip,
		domainerror.ErrCodeEventTitleRequired,
		domainerror.ErrCodeMissingTripFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
