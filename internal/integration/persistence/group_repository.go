// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trip-planner/backend/internal/application/adapter"
	"github.com/trip-planner/backend/internal/domain/entity"
	"github.com/trip-planner/backend/internal/integration/persistence/model"
)

// groupRepository implements the adapter.GroupRepository interface.
type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository instance.
func NewGroupRepository(db *gorm.DB) adapter.GroupRepository {
	return &groupRepository{
		db: db,
	}
}

// CreateGroup creates a new group in the database.
func (r *groupRepository) CreateGroup(ctx context.Context, group *entity.Group) error {
	groupModel := model.GroupFromEntity(group)
	result := r.db.WithContext(ctx).Create(groupModel)
	return result.Error
}

// FindGroupByID retrieves a group by its ID.
func (r *groupRepository) FindGroupByID(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	var groupModel model.GroupModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&groupModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return groupModel.ToEntity(), nil
}

// FindGroupsByUserID retrieves all groups a user belongs to.
func (r *groupRepository) FindGroupsByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.GroupListItem, error) {
	var results []struct {
		ID          uuid.UUID
		Name        string
		Description string
		MemberCount int
		TripCount   int
		Role        string
		CreatedAt   time.Time
	}

	query := `
		SELECT
			g.id,
			g.name,
			g.description,
			(SELECT COUNT(*) FROM group_members gm2 WHERE gm2.group_id = g.id) as member_count,
			(SELECT COUNT(*) FROM trips t WHERE t.group_id = g.id) as trip_count,
			gm.role,
			g.created_at
		FROM groups g
		INNER JOIN group_members gm ON gm.group_id = g.id
		WHERE gm.user_id = ?
		ORDER BY g.created_at DESC
	`

	if err := r.db.WithContext(ctx).Raw(query, userID).Scan(&results).Error; err != nil {
		return nil, err
	}

	groups := make([]*entity.GroupListItem, len(results))
	for i, res := range results {
		groups[i] = &entity.GroupListItem{
			ID:          res.ID,
			Name:        res.Name,
			Description: res.Description,
			MemberCount: res.MemberCount,
			TripCount:   res.TripCount,
			Role:        entity.MemberRole(res.Role),
			CreatedAt:   res.CreatedAt,
		}
	}

	return groups, nil
}

// UpdateGroup updates a group's fields.
func (r *groupRepository) UpdateGroup(ctx context.Context, group *entity.Group) error {
	groupModel := model.GroupFromEntity(group)
	result := r.db.WithContext(ctx).Save(groupModel)
	return result.Error
}

// DeleteGroup removes a group and everything it owns. Expense rows cascade
// through the trip deletions; external participants and invites go with the
// group itself.
func (r *groupRepository) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tripIDs []uuid.UUID
		if err := tx.Model(&model.TripModel{}).
			Where("group_id = ?", id).
			Pluck("id", &tripIDs).Error; err != nil {
			return err
		}

		if err := deleteExpensesByGroup(tx, id); err != nil {
			return err
		}

		if len(tripIDs) > 0 {
			if err := tx.Delete(&model.EventModel{}, "trip_id IN ?", tripIDs).Error; err != nil {
				return err
			}
			if err := tx.Delete(&model.PoiModel{}, "trip_id IN ?", tripIDs).Error; err != nil {
				return err
			}
			if err := tx.Delete(&model.TripDayModel{}, "trip_id IN ?", tripIDs).Error; err != nil {
				return err
			}
			if err := tx.Delete(&model.TripModel{}, "group_id = ?", id).Error; err != nil {
				return err
			}
		}

		if err := tx.Delete(&model.ExternalParticipantModel{}, "group_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.GroupInviteModel{}, "group_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.GroupMemberModel{}, "group_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.GroupModel{}, "id = ?", id).Error
	})
}

// CreateMember adds a new member to a group.
func (r *groupRepository) CreateMember(ctx context.Context, member *entity.GroupMember) error {
	memberModel := model.GroupMemberFromEntity(member)
	result := r.db.WithContext(ctx).Create(memberModel)
	return result.Error
}

// FindMemberByID retrieves a group member by their ID.
func (r *groupRepository) FindMemberByID(ctx context.Context, id uuid.UUID) (*entity.GroupMember, error) {
	var memberModel model.GroupMemberModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&memberModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	// Get user info
	var userModel model.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", memberModel.UserID).First(&userModel).Error; err == nil {
		memberModel.UserName = userModel.Name
		memberModel.UserEmail = userModel.Email
	}

	return memberModel.ToEntity(), nil
}

// FindMemberByGroupAndUser retrieves a member by group and user ID.
func (r *groupRepository) FindMemberByGroupAndUser(ctx context.Context, groupID, userID uuid.UUID) (*entity.GroupMember, error) {
	var memberModel model.GroupMemberModel
	result := r.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		First(&memberModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	// Get user info
	var userModel model.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", memberModel.UserID).First(&userModel).Error; err == nil {
		memberModel.UserName = userModel.Name
		memberModel.UserEmail = userModel.Email
	}

	return memberModel.ToEntity(), nil
}

// FindMembersByGroupID retrieves all members of a group.
func (r *groupRepository) FindMembersByGroupID(ctx context.Context, groupID uuid.UUID) ([]*entity.GroupMember, error) {
	var memberModels []model.GroupMemberModel
	result := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("joined_at ASC").
		Find(&memberModels)
	if result.Error != nil {
		return nil, result.Error
	}

	r.attachUserInfo(ctx, memberModels)

	members := make([]*entity.GroupMember, len(memberModels))
	for i, mm := range memberModels {
		members[i] = mm.ToEntity()
	}

	return members, nil
}

// FindMembersByUserIDs retrieves the members of a group whose user ids are in
// the given set.
func (r *groupRepository) FindMembersByUserIDs(ctx context.Context, groupID uuid.UUID, userIDs []uuid.UUID) ([]*entity.GroupMember, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	var memberModels []model.GroupMemberModel
	result := r.db.WithContext(ctx).
		Where("group_id = ? AND user_id IN ?", groupID, userIDs).
		Find(&memberModels)
	if result.Error != nil {
		return nil, result.Error
	}

	r.attachUserInfo(ctx, memberModels)

	members := make([]*entity.GroupMember, len(memberModels))
	for i, mm := range memberModels {
		members[i] = mm.ToEntity()
	}

	return members, nil
}

// attachUserInfo joins user names and emails onto member models.
func (r *groupRepository) attachUserInfo(ctx context.Context, memberModels []model.GroupMemberModel) {
	if len(memberModels) == 0 {
		return
	}

	userIDs := make([]uuid.UUID, len(memberModels))
	for i, m := range memberModels {
		userIDs[i] = m.UserID
	}

	var userModels []model.UserModel
	if err := r.db.WithContext(ctx).Where("id IN ?", userIDs).Find(&userModels).Error; err == nil {
		userMap := make(map[uuid.UUID]model.UserModel)
		for _, u := range userModels {
			userMap[u.ID] = u
		}
		for i := range memberModels {
			if user, ok := userMap[memberModels[i].UserID]; ok {
				memberModels[i].UserName = user.Name
				memberModels[i].UserEmail = user.Email
			}
		}
	}
}

// UpdateMember updates a group member.
func (r *groupRepository) UpdateMember(ctx context.Context, member *entity.GroupMember) error {
	memberModel := model.GroupMemberFromEntity(member)
	result := r.db.WithContext(ctx).Save(memberModel)
	return result.Error
}

// DeleteMember removes a member from a group.
func (r *groupRepository) DeleteMember(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.GroupMemberModel{}, "id = ?", id)
	return result.Error
}

// CountAdminsByGroupID counts the number of admins in a group.
func (r *groupRepository) CountAdminsByGroupID(ctx context.Context, groupID uuid.UUID) (int, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.GroupMemberModel{}).
		Where("group_id = ? AND role = ?", groupID, entity.MemberRoleAdmin).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(count), nil
}

// CreateInvite creates a new group invitation.
func (r *groupRepository) CreateInvite(ctx context.Context, invite *entity.GroupInvite) error {
	inviteModel := model.GroupInviteFromEntity(invite)
	result := r.db.WithContext(ctx).Create(inviteModel)
	return result.Error
}

// FindInviteByToken retrieves an invitation by its token.
func (r *groupRepository) FindInviteByToken(ctx context.Context, token string) (*entity.GroupInvite, error) {
	var inviteModel model.GroupInviteModel
	result := r.db.WithContext(ctx).Where("token = ?", token).First(&inviteModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return inviteModel.ToEntity(), nil
}

// FindPendingInviteByGroupAndEmail retrieves a pending invite by group and email.
func (r *groupRepository) FindPendingInviteByGroupAndEmail(ctx context.Context, groupID uuid.UUID, email string) (*entity.GroupInvite, error) {
	var inviteModel model.GroupInviteModel
	result := r.db.WithContext(ctx).
		Where("group_id = ? AND email = ? AND status = ?", groupID, email, entity.InviteStatusPending).
		First(&inviteModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return inviteModel.ToEntity(), nil
}

// FindPendingInvitesByGroupID retrieves all pending invites for a group.
func (r *groupRepository) FindPendingInvitesByGroupID(ctx context.Context, groupID uuid.UUID) ([]*entity.GroupInvite, error) {
	var inviteModels []model.GroupInviteModel
	result := r.db.WithContext(ctx).
		Where("group_id = ? AND status = ?", groupID, entity.InviteStatusPending).
		Order("created_at DESC").
		Find(&inviteModels)
	if result.Error != nil {
		return nil, result.Error
	}

	invites := make([]*entity.GroupInvite, len(inviteModels))
	for i, im := range inviteModels {
		invites[i] = im.ToEntity()
	}

	return invites, nil
}

// UpdateInvite updates an invitation.
func (r *groupRepository) UpdateInvite(ctx context.Context, invite *entity.GroupInvite) error {
	inviteModel := model.GroupInviteFromEntity(invite)
	result := r.db.WithContext(ctx).Save(inviteModel)
	return result.Error
}

// IsUserMemberOfGroup checks if a user is a member of a group.
func (r *groupRepository) IsUserMemberOfGroup(ctx context.Context, groupID, userID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.GroupMemberModel{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// GetGroupWithMembers retrieves a group with its members and pending invites.
func (r *groupRepository) GetGroupWithMembers(ctx context.Context, groupID uuid.UUID) (*entity.GroupWithMembers, error) {
	// Get group
	group, err := r.FindGroupByID(ctx, groupID)
	if err != nil || group == nil {
		return nil, err
	}

	// Get members
	members, err := r.FindMembersByGroupID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	// Get pending invites
	invites, err := r.FindPendingInvitesByGroupID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	return &entity.GroupWithMembers{
		Group:          group,
		Members:        members,
		PendingInvites: invites,
		MemberCount:    len(members),
	}, nil
}
