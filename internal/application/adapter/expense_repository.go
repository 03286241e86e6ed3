// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence. Writes
// always cover the expense and its split rows together: the storage layer
// must commit or roll back them as one transaction.
type ExpenseRepository interface {
	// Create inserts the expense and all of its split rows atomically.
	Create(ctx context.Context, expense *entity.ExpenseWithSplits) error

	// Replace updates the expense row and replaces every split row with
	// the given set in one transaction. Splits are never patched in place.
	Replace(ctx context.Context, expense *entity.ExpenseWithSplits) error

	// FindByID retrieves an expense with all of its split rows.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ExpenseWithSplits, error)

	// FindByTripID retrieves all expenses of a trip with their split rows,
	// newest first.
	FindByTripID(ctx context.Context, tripID uuid.UUID) ([]*entity.ExpenseWithSplits, error)

	// FindByGroupID retrieves all expenses of a group with their split rows.
	FindByGroupID(ctx context.Context, groupID uuid.UUID) ([]*entity.ExpenseWithSplits, error)

	// Delete removes the expense and cascades to all of its split rows.
	Delete(ctx context.Context, id uuid.UUID) error
}
