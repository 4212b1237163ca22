package user

import (
	"context"
	"errors"
	"fmt"

	"ballisticmarket/domain"
)

// UserRepository contract interface
type UserRepository interface {
	Upsert(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindBySteamID(ctx context.Context, steamID string) (domain.User, error)
	UpdateProfile(ctx context.Context, steamID string, profile domain.User) error
}

// SteamIdentity is what the identity provider hands back on a successful
// login callback.
type SteamIdentity struct {
	SteamID     string
	DisplayName string
	Avatar      string
	ProfileURL  string
}

type UserService struct {
	userRepo UserRepository
}

func NewUserService(userRepo UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// UpsertFromSteam creates or refreshes the user row on every successful
// login, keyed by the steam id, then returns the stored row.
func (s *UserService) UpsertFromSteam(ctx context.Context, identity SteamIdentity) (domain.User, error) {
	if identity.SteamID == "" {
		return domain.User{}, fmt.Errorf("%w: missing steam id", domain.ErrInvalidArgument)
	}

	user := domain.User{
		SteamID:     identity.SteamID,
		DisplayName: identity.DisplayName,
		Avatar:      identity.Avatar,
		ProfileURL:  identity.ProfileURL,
	}

	if err := s.userRepo.Upsert(ctx, &user); err != nil {
		return domain.User{}, err
	}

	// The upsert may have updated an existing row; read back the canonical
	// record including profile fields and the admin flag.
	return s.userRepo.FindBySteamID(ctx, identity.SteamID)
}

func (s *UserService) GetByID(ctx context.Context, id uint) (domain.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

func (s *UserService) GetBySteamID(ctx context.Context, steamID string) (domain.User, error) {
	return s.userRepo.FindBySteamID(ctx, steamID)
}

// UpdateProfile stores the checkout contact fields. Roleplay name, phone and
// bank number are all required; email is optional.
func (s *UserService) UpdateProfile(ctx context.Context, steamID string, profile domain.User) error {
	if profile.RoleplayName == "" || profile.PhoneNumber == "" || profile.BankNumber == "" {
		return fmt.Errorf("%w: roleplay name, phone number, and bank number are required", domain.ErrInvalidArgument)
	}

	return s.userRepo.UpdateProfile(ctx, steamID, profile)
}

// IsAdmin re-resolves the admin flag from storage on every call; roles are
// never cached. A missing user is simply not an admin.
func (s *UserService) IsAdmin(ctx context.Context, userID uint) (bool, error) {
	if userID == 0 {
		return false, nil
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return user.IsAdmin, nil
}
