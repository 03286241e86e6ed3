package cache

import (
	"context"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/application/adapter"
	"github.com/trip-planner/backend/internal/domain/entity"
)

// NoopBalanceCache is a BalanceCache that caches nothing. It stands in for
// Redis when no connection is available; every read is a miss and every
// write is dropped.
type NoopBalanceCache struct{}

// NewNoopBalanceCache creates a new NoopBalanceCache instance.
func NewNoopBalanceCache() *NoopBalanceCache {
	return &NoopBalanceCache{}
}

// GetTripSummary always reports a miss.
func (c *NoopBalanceCache) GetTripSummary(ctx context.Context, groupID, tripID, memberID uuid.UUID) (*entity.MemberBalanceSummary, error) {
	return nil, nil
}

// SetTripSummary drops the summary.
func (c *NoopBalanceCache) SetTripSummary(ctx context.Context, groupID, tripID, memberID uuid.UUID, summary *entity.MemberBalanceSummary) error {
	return nil
}

// GetGroupSummary always reports a miss.
func (c *NoopBalanceCache) GetGroupSummary(ctx context.Context, groupID, memberID uuid.UUID) (*entity.MemberBalanceSummary, error) {
	return nil, nil
}

// SetGroupSummary drops the summary.
func (c *NoopBalanceCache) SetGroupSummary(ctx context.Context, groupID, memberID uuid.UUID, summary *entity.MemberBalanceSummary) error {
	return nil
}

// InvalidateGroup has nothing to invalidate.
func (c *NoopBalanceCache) InvalidateGroup(ctx context.Context, groupID uuid.UUID) error {
	return nil
}

// Ensure NoopBalanceCache implements the BalanceCache interface.
var _ adapter.BalanceCache = (*NoopBalanceCache)(nil)
