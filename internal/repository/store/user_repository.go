package store

import (
	"context"
	"fmt"
	"time"

	"ballisticmarket/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		DB: db,
	}
}

// Upsert inserts the user or, when the steam id is already present, refreshes
// the identity fields the provider controls. Profile fields the user filled in
// themselves are left untouched.
func (r *UserRepository) Upsert(ctx context.Context, user *domain.User) error {
	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "steam_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"display_name", "avatar", "profile_url", "updated_at",
		}),
	}).Create(user).Error
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", wrapErr(err))
	}

	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	var user domain.User

	err := r.DB.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return domain.User{}, wrapErr(err)
	}

	return user, nil
}

func (r *UserRepository) FindBySteamID(ctx context.Context, steamID string) (domain.User, error) {
	var user domain.User

	err := r.DB.WithContext(ctx).Where("steam_id = ?", steamID).First(&user).Error
	if err != nil {
		return domain.User{}, wrapErr(err)
	}

	return user, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, steamID string, profile domain.User) error {
	result := r.DB.WithContext(ctx).Model(&domain.User{}).
		Where("steam_id = ?", steamID).
		Updates(map[string]interface{}{
			"roleplay_name": profile.RoleplayName,
			"phone_number":  profile.PhoneNumber,
			"bank_number":   profile.BankNumber,
			"email":         profile.Email,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update profile: %w", wrapErr(result.Error))
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
