package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/trip-planner/backend/internal/domain/entity"
	"github.com/trip-planner/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.GroupModel{},
		&model.GroupMemberModel{},
		&model.GroupInviteModel{},
		&model.ExternalParticipantModel{},
		&model.TripModel{},
		&model.TripDayModel{},
		&model.EventModel{},
		&model.PoiModel{},
		&model.ExpenseModel{},
		&model.ExpenseParticipantModel{},
		&model.ExpenseLineItemModel{},
		&model.ItemizedListModel{},
		&model.ExpenseItemModel{},
		&model.EmailQueueModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, name string) *entity.User {
	t.Helper()

	user := entity.NewUser(email, name, "hashed-password")
	if err := db.Create(model.FromEntity(user)).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedGroup(t *testing.T, db *gorm.DB, createdBy uuid.UUID) *entity.Group {
	t.Helper()

	group := entity.NewGroup("Summer Trip Crew", "annual trip group", createdBy)
	if err := db.Create(model.GroupFromEntity(group)).Error; err != nil {
		t.Fatalf("failed to seed group: %v", err)
	}
	return group
}

func seedMember(t *testing.T, db *gorm.DB, groupID, userID uuid.UUID, role entity.MemberRole) *entity.GroupMember {
	t.Helper()

	member := entity.NewGroupMember(groupID, userID, role)
	if err := db.Create(model.GroupMemberFromEntity(member)).Error; err != nil {
		t.Fatalf("failed to seed member: %v", err)
	}
	return member
}

func seedTrip(t *testing.T, db *gorm.DB, groupID, createdBy uuid.UUID, start, end time.Time) (*entity.Trip, []*entity.TripDay) {
	t.Helper()

	trip := entity.NewTrip(groupID, "Lisbon", "Lisbon, Portugal", start, end, createdBy)

	var days []*entity.TripDay
	dayNumber := 1
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, entity.NewTripDay(trip.ID, d, dayNumber))
		dayNumber++
	}

	repo := NewTripRepository(db)
	if err := repo.CreateTrip(context.Background(), trip, days); err != nil {
		t.Fatalf("failed to seed trip: %v", err)
	}
	return trip, days
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
