package expense

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/trip-planner/backend/internal/application/adapter"
	"github.com/trip-planner/backend/internal/domain/entity"
	domainerror "github.com/trip-planner/backend/internal/domain/error"
	"github.com/trip-planner/backend/internal/domain/valueobject"
)

// ExternalParticipantResolver turns free-text external names in a split
// spec into stable external-participant records, creating them on first
// use and refreshing last-used timestamps on reuse.
type ExternalParticipantResolver struct {
	externals adapter.ExternalParticipantRepository
}

func NewExternalParticipantResolver(externals adapter.ExternalParticipantRepository) *ExternalParticipantResolver {
	return &ExternalParticipantResolver{externals: externals}
}

// Resolve returns a record per distinct external name in the spec, keyed
// by the name as written. Names are deduplicated before lookup so a name
// appearing on several rows resolves to a single record.
//
// Names are trimmed of surrounding whitespace before the otherwise exact
// (groupID, name) match, so " Alex" and "Alex" are deliberately one
// identity rather than two.
//
// Creation races with concurrent resolvers on the group's name uniqueness
// constraint; on a conflict the row the other writer created is fetched
// and reused instead of failing the expense.
func (r *ExternalParticipantResolver) Resolve(ctx context.Context, groupID uuid.UUID, spec valueobject.SplitSpec) (map[string]*entity.ExternalParticipant, error) {
	resolved := make(map[string]*entity.ExternalParticipant)

	for _, target := range spec.Targets() {
		if target.IsMember() {
			continue
		}
		name := strings.TrimSpace(target.ExternalName)
		if name == "" {
			continue
		}
		if _, done := resolved[target.ExternalName]; done {
			continue
		}

		external, err := r.resolveOne(ctx, groupID, name)
		if err != nil {
			return nil, err
		}
		resolved[target.ExternalName] = external
	}

	return resolved, nil
}

func (r *ExternalParticipantResolver) resolveOne(ctx context.Context, groupID uuid.UUID, name string) (*entity.ExternalParticipant, error) {
	existing, err := r.externals.FindByGroupAndName(ctx, groupID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up external participant: %w", err)
	}
	if existing != nil {
		if err := r.externals.TouchLastUsed(ctx, existing.ID); err != nil {
			return nil, fmt.Errorf("failed to refresh external participant: %w", err)
		}
		existing.Touch()
		return existing, nil
	}

	created := entity.NewExternalParticipant(groupID, name)
	err = r.externals.Create(ctx, created)
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, domainerror.ErrExternalParticipantConflict) {
		return nil, fmt.Errorf("failed to create external participant: %w", err)
	}

	// Lost the race; the winner's row now exists.
	existing, err = r.externals.FindByGroupAndName(ctx, groupID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to re-fetch external participant after conflict: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("external participant %q vanished after conflict", name)
	}
	return existing, nil
}
