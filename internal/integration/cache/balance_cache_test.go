package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/trip-planner/backend/internal/domain/entity"
)

func newTestCache(t *testing.T) (*RedisBalanceCache, *miniredis.Miniredis) {
	t.Helper()

	server, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(server.Close)

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisBalanceCache(client, time.Minute), server
}

func sampleSummary(memberID uuid.UUID) *entity.MemberBalanceSummary {
	return &entity.MemberBalanceSummary{
		MemberID:       memberID,
		TotalYouOwe:    decimal.RequireFromString("30.00"),
		TotalOwedToYou: decimal.RequireFromString("12.50"),
		NetBalance:     decimal.RequireFromString("-17.50"),
	}
}

func TestRedisBalanceCache_MissReturnsNil(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	summary, err := cache.GetGroupSummary(ctx, uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != nil {
		t.Fatalf("expected nil summary on miss, got %+v", summary)
	}
}

func TestRedisBalanceCache_GroupSummaryRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	groupID := uuid.New()
	memberID := uuid.New()
	want := sampleSummary(memberID)

	if err := cache.SetGroupSummary(ctx, groupID, memberID, want); err != nil {
		t.Fatalf("failed to set summary: %v", err)
	}

	got, err := cache.GetGroupSummary(ctx, groupID, memberID)
	if err != nil {
		t.Fatalf("failed to get summary: %v", err)
	}
	if got == nil {
		t.Fatal("expected cached summary, got nil")
	}
	if got.MemberID != memberID {
		t.Errorf("member id = %s, want %s", got.MemberID, memberID)
	}
	if !got.NetBalance.Equal(want.NetBalance) {
		t.Errorf("net balance = %s, want %s", got.NetBalance, want.NetBalance)
	}
}

func TestRedisBalanceCache_InvalidateGroupDropsTripAndGroupKeys(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	groupID := uuid.New()
	otherGroupID := uuid.New()
	tripID := uuid.New()
	memberID := uuid.New()

	if err := cache.SetGroupSummary(ctx, groupID, memberID, sampleSummary(memberID)); err != nil {
		t.Fatalf("failed to set group summary: %v", err)
	}
	if err := cache.SetTripSummary(ctx, groupID, tripID, memberID, sampleSummary(memberID)); err != nil {
		t.Fatalf("failed to set trip summary: %v", err)
	}
	if err := cache.SetGroupSummary(ctx, otherGroupID, memberID, sampleSummary(memberID)); err != nil {
		t.Fatalf("failed to set other group summary: %v", err)
	}

	if err := cache.InvalidateGroup(ctx, groupID); err != nil {
		t.Fatalf("failed to invalidate group: %v", err)
	}

	if got, _ := cache.GetGroupSummary(ctx, groupID, memberID); got != nil {
		t.Error("group summary survived invalidation")
	}
	if got, _ := cache.GetTripSummary(ctx, groupID, tripID, memberID); got != nil {
		t.Error("trip summary survived invalidation")
	}
	if got, _ := cache.GetGroupSummary(ctx, otherGroupID, memberID); got == nil {
		t.Error("other group's summary was invalidated")
	}
}

func TestRedisBalanceCache_InvalidateEmptyGroupIsNoop(t *testing.T) {
	cache, _ := newTestCache(t)

	if err := cache.InvalidateGroup(context.Background(), uuid.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRedisBalanceCache_CorruptedEntryIsTreatedAsMiss(t *testing.T) {
	cache, server := newTestCache(t)
	ctx := context.Background()

	groupID := uuid.New()
	memberID := uuid.New()
	server.Set(groupKey(groupID, memberID), "{not json")

	got, err := cache.GetGroupSummary(ctx, groupID, memberID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected miss for corrupted entry, got %+v", got)
	}
}

func TestRedisBalanceCache_EntriesExpire(t *testing.T) {
	cache, server := newTestCache(t)
	ctx := context.Background()

	groupID := uuid.New()
	memberID := uuid.New()

	if err := cache.SetGroupSummary(ctx, groupID, memberID, sampleSummary(memberID)); err != nil {
		t.Fatalf("failed to set summary: %v", err)
	}

	server.FastForward(2 * time.Minute)

	got, err := cache.GetGroupSummary(ctx, groupID, memberID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatal("expected summary to expire")
	}
}
