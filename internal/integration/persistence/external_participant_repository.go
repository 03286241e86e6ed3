// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/trip-planner/backend/internal/application/adapter"
	"github.com/trip-planner/backend/internal/domain/entity"
	domainerror "github.com/trip-planner/backend/internal/domain/error"
	"github.com/trip-planner/backend/internal/integration/persistence/model"
)

// uniqueViolation is the Postgres error code for unique constraint failures.
const uniqueViolation = "23505"

// externalParticipantRepository implements adapter.ExternalParticipantRepository.
type externalParticipantRepository struct {
	db *gorm.DB
}

// NewExternalParticipantRepository creates a new external participant repository instance.
func NewExternalParticipantRepository(db *gorm.DB) adapter.ExternalParticipantRepository {
	return &externalParticipantRepository{
		db: db,
	}
}

// Create inserts a new external participant. A unique index on
// (group_id, name) turns concurrent inserts of the same person into
// ErrExternalParticipantConflict so callers can re-fetch the winner.
func (r *externalParticipantRepository) Create(ctx context.Context, participant *entity.ExternalParticipant) error {
	participantModel := model.ExternalParticipantFromEntity(participant)
	result := r.db.WithContext(ctx).Create(participantModel)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerror.ErrExternalParticipantConflict
		}
		return result.Error
	}
	return nil
}

// FindByGroupAndName retrieves a participant by exact (groupID, name).
func (r *externalParticipantRepository) FindByGroupAndName(ctx context.Context, groupID uuid.UUID, name string) (*entity.ExternalParticipant, error) {
	var participantModel model.ExternalParticipantModel
	result := r.db.WithContext(ctx).
		Where("group_id = ? AND name = ?", groupID, name).
		First(&participantModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return participantModel.ToEntity(), nil
}

// FindByGroupID retrieves all external participants of a group, most
// recently used first.
func (r *externalParticipantRepository) FindByGroupID(ctx context.Context, groupID uuid.UUID) ([]*entity.ExternalParticipant, error) {
	var participantModels []model.ExternalParticipantModel
	result := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("last_used_at DESC").
		Find(&participantModels)
	if result.Error != nil {
		return nil, result.Error
	}

	participants := make([]*entity.ExternalParticipant, len(participantModels))
	for i, pm := range participantModels {
		participants[i] = pm.ToEntity()
	}

	return participants, nil
}

// TouchLastUsed refreshes the last-used timestamp of a participant.
func (r *externalParticipantRepository) TouchLastUsed(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.ExternalParticipantModel{}).
		Where("id = ?", id).
		Update("last_used_at", time.Now().UTC())
	return result.Error
}

// isUniqueViolation reports whether err is a unique constraint failure.
// Gorm's error translation covers both the pgx production driver and the
// sqlite test driver; the raw pgx error and the sqlite message are kept as
// fallbacks for connections opened without translation.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
