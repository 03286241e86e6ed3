// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/application/usecase/poi"
	domainerror "github.com/trip-planner/backend/internal/domain/error"
	"github.com/trip-planner/backend/internal/integration/entrypoint/dto"
	"github.com/trip-planner/backend/internal/integration/entrypoint/middleware"
)

// PoiController handles point-of-interest endpoints.
type PoiController struct {
	createUseCase *poi.CreatePoiUseCase
	listUseCase   *poi.ListPoisUseCase
	updateUseCase *poi.UpdatePoiUseCase
	deleteUseCase *poi.DeletePoiUseCase
}

// NewPoiController creates a new point-of-interest controller instance.
func NewPoiController(
	createUseCase *poi.CreatePoiUseCase,
	listUseCase *poi.ListPoisUseCase,
	updateUseCase *poi.UpdatePoiUseCase,
	deleteUseCase *poi.DeletePoiUseCase,
) *PoiController {
	return &PoiController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /trips/:id/pois requests.
func (c *PoiController) Create(ctx *gin.Context) {
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
	var req dto.CreatePoiRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTripFields),
		})
		return
	}

	// Build input
	input := poi.CreatePoiInput{
		UserID:    userID,
		TripID:    tripID,
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Category:  req.Category,
		Notes:     req.Notes,
	}

	// Execute use case
	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePoiError(ctx, err)
		return
	}

	// Build response
	response := dto.ToPoiResponse(output.Poi)
	ctx.JSON(http.StatusCreated, response)
}

// List handles GET /trips/:id/pois requests.
func (c *PoiController) List(ctx *gin.Context) {
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
	input := poi.ListPoisInput{
		UserID: userID,
		TripID: tripID,
	}

	// Execute use case
	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePoiError(ctx, err)
		return
	}

	// Build response
	response := dto.ToPoiListResponse(output.Pois)
	ctx.JSON(http.StatusOK, response)
}

// Update handles PUT /pois/:id requests.
func (c *PoiController) Update(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse POI ID from URL
	poiIDStr := ctx.Param("id")
	poiID, err := uuid.Parse(poiIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid POI ID format",
		})
		return
	}

	// Parse request body
	var req dto.UpdatePoiRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTripFields),
		})
		return
	}

	// Build input
	input := poi.UpdatePoiInput{
		UserID:    userID,
		PoiID:     poiID,
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Category:  req.Category,
		Notes:     req.Notes,
	}

	// Execute use case
	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePoiError(ctx, err)
		return
	}

	// Build response
	response := dto.ToPoiResponse(output.Poi)
	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /pois/:id requests.
func (c *PoiController) Delete(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse POI ID from URL
	poiIDStr := ctx.Param("id")
	poiID, err := uuid.Parse(poiIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid POI ID format",
		})
		return
	}

	// Build input
	input := poi.DeletePoiInput{
		UserID: userID,
		PoiID:  poiID,
	}

	// Execute use case
	err = c.deleteUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePoiError(ctx, err)
		return
	}

	// Return no content on success
	ctx.Status(http.StatusNoContent)
}

// handlePoiError handles point-of-interest errors and returns appropriate
// HTTP responses.
func (c *PoiController) handlePoiError(ctx *gin.Context, err error) {
	var tripErr *domainerror.TripError
	if errors.As(err, &tripErr) {
		statusCode := c.getStatusCodeForPoiError(tripErr.Code)
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

// getStatusCodeForPoiError maps trip error codes raised by point-of-interest
// operations to HTTP status codes.
func (c *PoiController) getStatusCodeForPoiError(code domainerror.TripErrorCode) int {
	switch code {
	case domainerror.ErrCodeTripNotFound,
		domainerror.ErrCodePoiNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodePoiNameRequired,
		domainerror.ErrCodeMissingTripFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
