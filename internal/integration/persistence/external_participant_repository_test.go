package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/domain/entity"
	domainerror "github.com/trip-planner/backend/internal/domain/error"
)

func TestExternalParticipantRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com", "Owner")
	group := seedGroup(t, db, owner.ID)

	repo := NewExternalParticipantRepository(db)

	participant := entity.NewExternalParticipant(group.ID, "Uncle Bob")
	if err := repo.Create(ctx, participant); err != nil {
		t.Fatalf("failed to create participant: %v", err)
	}

	found, err := repo.FindByGroupAndName(ctx, group.ID, "Uncle Bob")
	if err != nil {
		t.Fatalf("failed to find participant: %v", err)
	}
	if found == nil {
		t.Fatal("expected participant, got nil")
	}
	if found.ID != participant.ID {
		t.Errorf("participant id = %s, want %s", found.ID, participant.ID)
	}
}

func TestExternalParticipantRepository_FindByGroupAndNameIsExact(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com", "Owner")
	group := seedGroup(t, db, owner.ID)

	repo := NewExternalParticipantRepository(db)
	if err := repo.Create(ctx, entity.NewExternalParticipant(group.ID, "Uncle Bob")); err != nil {
		t.Fatalf("failed to create participant: %v", err)
	}

	found, err := repo.FindByGroupAndName(ctx, group.ID, "uncle bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found != nil {
		t.Errorf("expected no match for differently cased name, got %+v", found)
	}

	found, err = repo.FindByGroupAndName(ctx, uuid.New(), "Uncle Bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found != nil {
		t.Errorf("expected no match in another group, got %+v", found)
	}
}

func TestExternalParticipantRepository_DuplicateNameConflicts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com", "Owner")
	group := seedGroup(t, db, owner.ID)

	repo := NewExternalParticipantRepository(db)
	if err := repo.Create(ctx, entity.NewExternalParticipant(group.ID, "Uncle Bob")); err != nil {
		t.Fatalf("failed to create participant: %v", err)
	}

	err := repo.Create(ctx, entity.NewExternalParticipant(group.ID, "Uncle Bob"))
	if !errors.Is(err, domainerror.ErrExternalParticipantConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}

	// The same name in a different group is a different identity.
	otherGroup := seedGroup(t, db, owner.ID)
	if err := repo.Create(ctx, entity.NewExternalParticipant(otherGroup.ID, "Uncle Bob")); err != nil {
		t.Fatalf("expected create in other group to succeed: %v", err)
	}
}

func TestExternalParticipantRepository_TouchLastUsedReordersListing(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com", "Owner")
	group := seedGroup(t, db, owner.ID)

	repo := NewExternalParticipantRepository(db)

	first := entity.NewExternalParticipant(group.ID, "Alice's Cousin")
	second := entity.NewExternalParticipant(group.ID, "Hotel Driver")
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("failed to create participant: %v", err)
	}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("failed to create participant: %v", err)
	}

	if err := repo.TouchLastUsed(ctx, first.ID); err != nil {
		t.Fatalf("failed to touch participant: %v", err)
	}

	listed, err := repo.FindByGroupID(ctx, group.ID)
	if err != nil {
		t.Fatalf("failed to list participants: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("listed %d participants, want 2", len(listed))
	}
	if listed[0].ID != first.ID {
		t.Errorf("expected most recently used participant first, got %s", listed[0].Name)
	}
}
