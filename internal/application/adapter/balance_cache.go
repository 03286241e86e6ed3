// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/domain/entity"
)

// BalanceCache caches computed member balance summaries. Summaries are
// expensive folds over every expense in scope, so read paths consult the
// cache first and expense writes invalidate whole groups.
type BalanceCache interface {
	// GetTripSummary retrieves a cached per-trip summary. Returns nil
	// without error on a cache miss.
	GetTripSummary(ctx context.Context, groupID, tripID, memberID uuid.UUID) (*entity.MemberBalanceSummary, error)

	// SetTripSummary stores a per-trip summary under the trip's group so
	// group invalidation can reach it.
	SetTripSummary(ctx context.Context, groupID, tripID, memberID uuid.UUID, summary *entity.MemberBalanceSummary) error

	// GetGroupSummary retrieves a cached per-group summary. Returns nil
	// without error on a cache miss.
	GetGroupSummary(ctx context.Context, groupID, memberID uuid.UUID) (*entity.MemberBalanceSummary, error)

	// SetGroupSummary stores a per-group summary.
	SetGroupSummary(ctx context.Context, groupID, memberID uuid.UUID, summary *entity.MemberBalanceSummary) error

	// InvalidateGroup drops every cached summary for the group and its trips.
	InvalidateGroup(ctx context.Context, groupID uuid.UUID) error
}
