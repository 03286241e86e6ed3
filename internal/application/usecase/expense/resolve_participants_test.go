package expense

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/domain/entity"
	domainerror "github.com/trip-planner/backend/internal/domain/error"
	"github.com/trip-planner/backend/internal/domain/valueobject"
)

// fakeExternalRepo is an in-memory ExternalParticipantRepository. Setting
// conflictOnCreate makes the first Create fail as if a concurrent writer
// won the race, inserting the row it would have created.
type fakeExternalRepo struct {
	byName           map[string]*entity.ExternalParticipant
	conflictOnCreate bool
	creates          int
	touches          int
}

func newFakeExternalRepo() *fakeExternalRepo {
	return &fakeExternalRepo{byName: make(map[string]*entity.ExternalParticipant)}
}

func (r *fakeExternalRepo) Create(_ context.Context, participant *entity.ExternalParticipant) error {
	r.creates++
	if r.conflictOnCreate {
		r.conflictOnCreate = false
		r.byName[participant.Name] = entity.NewExternalParticipant(participant.GroupID, participant.Name)
		return domainerror.ErrExternalParticipantConflict
	}
	if _, exists := r.byName[participant.Name]; exists {
		return domainerror.ErrExternalParticipantConflict
	}
	r.byName[participant.Name] = participant
	return nil
}

func (r *fakeExternalRepo) FindByGroupAndName(_ context.Context, _ uuid.UUID, name string) (*entity.ExternalParticipant, error) {
	return r.byName[name], nil
}

func (r *fakeExternalRepo) FindByGroupID(_ context.Context, _ uuid.UUID) ([]*entity.ExternalParticipant, error) {
	var all []*entity.ExternalParticipant
	for _, p := range r.byName {
		all = append(all, p)
	}
	return all, nil
}

func (r *fakeExternalRepo) TouchLastUsed(_ context.Context, _ uuid.UUID) error {
	r.touches++
	return nil
}

func externalSpec(names ...string) valueobject.SplitSpec {
	spec := valueobject.SplitSpec{Type: valueobject.SplitTypeEqual}
	for _, name := range names {
		spec.Shares = append(spec.Shares, valueobject.FlatShare{
			Target:     valueobject.ExternalTarget(name),
			Percentage: pct("50"),
		})
	}
	return spec
}

func TestExternalParticipantResolver(t *testing.T) {
	ctx := context.Background()
	groupID := uuid.New()

	t.Run("creates on first use", func(t *testing.T) {
		repo := newFakeExternalRepo()
		resolver := NewExternalParticipantResolver(repo)

		resolved, err := resolver.Resolve(ctx, groupID, externalSpec("Uncle Jim"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resolved["Uncle Jim"] == nil {
			t.Fatal("expected Uncle Jim to be resolved")
		}
		if repo.creates != 1 {
			t.Errorf("expected 1 create, got %d", repo.creates)
		}
	})

	t.Run("reuses and touches on later use", func(t *testing.T) {
		repo := newFakeExternalRepo()
		existing := entity.NewExternalParticipant(groupID, "Uncle Jim")
		repo.byName["Uncle Jim"] = existing
		resolver := NewExternalParticipantResolver(repo)

		resolved, err := resolver.Resolve(ctx, groupID, externalSpec("Uncle Jim"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resolved["Uncle Jim"].ID != existing.ID {
			t.Error("expected the existing record to be reused")
		}
		if repo.creates != 0 {
			t.Errorf("expected no creates, got %d", repo.creates)
		}
		if repo.touches != 1 {
			t.Errorf("expected 1 touch, got %d", repo.touches)
		}
	})

	t.Run("duplicate names resolve once", func(t *testing.T) {
		repo := newFakeExternalRepo()
		resolver := NewExternalParticipantResolver(repo)

		resolved, err := resolver.Resolve(ctx, groupID, externalSpec("Uncle Jim", "Uncle Jim"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resolved) != 1 {
			t.Fatalf("expected 1 resolved record, got %d", len(resolved))
		}
		if repo.creates != 1 {
			t.Errorf("expected 1 create, got %d", repo.creates)
		}
	})

	t.Run("conflict falls back to the winner's row", func(t *testing.T) {
		repo := newFakeExternalRepo()
		repo.conflictOnCreate = true
		resolver := NewExternalParticipantResolver(repo)

		resolved, err := resolver.Resolve(ctx, groupID, externalSpec("Uncle Jim"))
		if err != nil {
			t.Fatalf("expected conflict to be recovered, got error: %v", err)
		}
		winner := repo.byName["Uncle Jim"]
		if resolved["Uncle Jim"].ID != winner.ID {
			t.Error("expected the concurrent writer's row to be reused")
		}
	})

	t.Run("surrounding whitespace maps to one identity", func(t *testing.T) {
		repo := newFakeExternalRepo()
		resolver := NewExternalParticipantResolver(repo)

		resolved, err := resolver.Resolve(ctx, groupID, externalSpec(" Uncle Jim ", "Uncle Jim"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.creates != 1 {
			t.Errorf("expected 1 create, got %d", repo.creates)
		}
		if resolved[" Uncle Jim "].ID != resolved["Uncle Jim"].ID {
			t.Error("expected trimmed and untrimmed spellings to share a record")
		}
	})

	t.Run("member targets are ignored", func(t *testing.T) {
		repo := newFakeExternalRepo()
		resolver := NewExternalParticipantResolver(repo)

		spec := valueobject.SplitSpec{
			Type: valueobject.SplitTypeEqual,
			Shares: []valueobject.FlatShare{
				{Target: valueobject.MemberTarget(uuid.New()), Percentage: pct("100")},
			},
		}

		resolved, err := resolver.Resolve(ctx, groupID, spec)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resolved) != 0 {
			t.Errorf("expected no resolutions, got %d", len(resolved))
		}
		if repo.creates != 0 {
			t.Errorf("expected no creates, got %d", repo.creates)
		}
	})
}
