// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trip-planner/backend/internal/application/adapter"
	"github.com/trip-planner/backend/internal/application/usecase/expense"
	domainerror "github.com/trip-planner/backend/internal/domain/error"
	"github.com/trip-planner/backend/internal/integration/entrypoint/dto"
	"github.com/trip-planner/backend/internal/integration/entrypoint/middleware"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	createUseCase  *expense.CreateExpenseUseCase
	getUseCase     *expense.GetExpenseUseCase
	listUseCase    *expense.ListTripExpensesUseCase
	updateUseCase  *expense.UpdateExpenseUseCase
	deleteUseCase  *expense.DeleteExpenseUseCase
	suggestUseCase *expense.SuggestCategoryUseCase
	// Trip repository to resolve the trip's group on creation
	tripRepo adapter.TripRepository
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createUseCase *expense.CreateExpenseUseCase,
	getUseCase *expense.GetExpenseUseCase,
	listUseCase *expense.ListTripExpensesUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
	suggestUseCase *expense.SuggestCategoryUseCase,
	tripRepo adapter.TripRepository,
) *ExpenseController {
	return &ExpenseController{
		createUseCase:  createUseCase,
		getUseCase:     getUseCase,
		listUseCase:    listUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		suggestUseCase: suggestUseCase,
		tripRepo:       tripRepo,
	}
}

// Create handles POST /trips/:id/expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
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
	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	// Parse payer ID
	paidBy, err := uuid.Parse(req.PaidBy)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid payer ID format",
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	// Parse optional anchors
	dayID, err := parseOptionalUUID(req.DayID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid day ID format",
			Code:  string(domainerror.ErrCodeExpenseDayNotInTrip),
		})
		return
	}
	eventID, err := parseOptionalUUID(req.EventID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid event ID format",
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	// Build the split specification
	split, err := dto.ToSplitSpec(req.SplitType, req.Shares, req.LineItems, req.ItemizedLists)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeInvalidSplitType),
		})
		return
	}

	// Resolve the trip's group
	trip, err := c.tripRepo.FindTripByID(ctx.Request.Context(), tripID)
	if err != nil || trip == nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Trip not found",
			Code:  string(domainerror.ErrCodeTripNotFound),
		})
		return
	}

	// Build input
	input := expense.CreateExpenseInput{
		UserID:      userID,
		GroupID:     trip.GroupID,
		TripID:      tripID,
		DayID:       dayID,
		EventID:     eventID,
		PaidBy:      paidBy,
		Description: req.Description,
		Amount:      decimal.NewFromFloat(req.Amount),
		Category:    req.Category,
		Split:       split,
	}

	// Execute use case
	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	// Build response
	response := dto.ToExpenseResponse(output.Expense)
	ctx.JSON(http.StatusCreated, response)
}

// Get handles GET /expenses/:id requests.
func (c *ExpenseController) Get(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse expense ID from URL
	expenseIDStr := ctx.Param("id")
	expenseID, err := uuid.Parse(expenseIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return
	}

	// Build input
	input := expense.GetExpenseInput{
		UserID:    userID,
		ExpenseID: expenseID,
	}

	// Execute use case
	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	// Build response
	response := dto.ToExpenseResponse(output.Expense)
	ctx.JSON(http.StatusOK, response)
}

// List handles GET /trips/:id/expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
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
	input := expense.ListTripExpensesInput{
		UserID: userID,
		TripID: tripID,
	}

	// Execute use case
	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	// Build response
	response := dto.ToExpenseListResponse(output.Expenses)
	ctx.JSON(http.StatusOK, response)
}

// Update handles PUT /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse expense ID from URL
	expenseIDStr := ctx.Param("id")
	expenseID, err := uuid.Parse(expenseIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return
	}

	// Parse request body
	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	// Parse payer ID
	paidBy, err := uuid.Parse(req.PaidBy)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid payer ID format",
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	// Parse optional anchors
	dayID, err := parseOptionalUUID(req.DayID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid day ID format",
			Code:  string(domainerror.ErrCodeExpenseDayNotInTrip),
		})
		return
	}
	eventID, err := parseOptionalUUID(req.EventID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid event ID format",
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	// Build the split specification
	split, err := dto.ToSplitSpec(req.SplitType, req.Shares, req.LineItems, req.ItemizedLists)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeInvalidSplitType),
		})
		return
	}

	// Build input
	input := expense.UpdateExpenseInput{
		UserID:      userID,
		ExpenseID:   expenseID,
		DayID:       dayID,
		EventID:     eventID,
		PaidBy:      paidBy,
		Description: req.Description,
		Amount:      decimal.NewFromFloat(req.Amount),
		Category:    req.Category,
		Split:       split,
	}

	// Execute use case
	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	// Build response
	response := dto.ToExpenseResponse(output.Expense)
	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse expense ID from URL
	expenseIDStr := ctx.Param("id")
	expenseID, err := uuid.Parse(expenseIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return
	}

	// Build input
	input := expense.DeleteExpenseInput{
		UserID:    userID,
		ExpenseID: expenseID,
	}

	// Execute use case
	err = c.deleteUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	// Return no content on success
	ctx.Status(http.StatusNoContent)
}

// SuggestCategory handles POST /trips/:id/expenses/suggest-category requests.
func (c *ExpenseController) SuggestCategory(ctx *gin.Context) {
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
	var req dto.SuggestCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	// Build input
	input := expense.SuggestCategoryInput{
		UserID:      userID,
		TripID:      tripID,
		Description: req.Description,
	}

	// Execute use case
	output, err := c.suggestUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.SuggestCategoryResponse{
		Category:   output.Category,
		Confidence: output.Confidence,
		Reasoning:  output.Reasoning,
		Available:  output.Available,
	})
}

// parseOptionalUUID parses an optional UUID string, returning nil when absent.
func parseOptionalUUID(value *string) (*uuid.UUID, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := uuid.Parse(*value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// handleExpenseError handles expense errors and returns appropriate HTTP responses.
func (c *ExpenseController) handleExpenseError(ctx *gin.Context, err error) {
	// Split validation failures carry every violation found
	var splitErr *domainerror.SplitValidationError
	if errors.As(err, &splitErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid split",
			Code:    string(domainerror.ErrCodeSplitInvalid),
			Details: strings.Join(splitErr.Violations, "; "),
		})
		return
	}

	var expErr *domainerror.ExpenseError
	if errors.As(err, &expErr) {
		statusCode := c.getStatusCodeForExpenseError(expErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: expErr.Message,
			Code:  string(expErr.Code),
		})
		return
	}

	// Anchor checks surface as trip errors
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

// getStatusCodeForExpenseError maps expense error codes to HTTP status codes.
func (c *ExpenseController) getStatusCodeForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidSplitType,
		domainerror.ErrCodeInvalidExpenseAmount,
		domainerror.ErrCodeSplitInvalid,
		domainerror.ErrCodeParticipantNotInGroup,
		domainerror.ErrCodeExpenseDescriptionRequired,
		domainerror.ErrCodeExpenseDayNotInTrip,
		domainerror.ErrCodeMissingExpenseFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
