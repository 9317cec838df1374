package profile

import (
	"context"
	"fmt"

	"github.com/reelmates/backend/internal/domain"
	"github.com/reelmates/backend/internal/repository"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
}

func NewProfileUseCase(profileRepo repository.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
	}
}

// UpdateProfileRequest represents profile create/update data
type UpdateProfileRequest struct {
	DisplayName    string   `json:"displayName" binding:"required,min=1,max=100"`
	PhotoURL       *string  `json:"photoURL" binding:"omitempty,url,max=500"`
	Bio            *string  `json:"bio" binding:"omitempty,max=500"`
	FavoriteGenres []string `json:"favoriteGenres" binding:"omitempty,max=20"`
}

// GetMyProfile returns the requesting user's own profile.
func (uc *ProfileUseCase) GetMyProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	return uc.profileRepo.GetByUserID(ctx, userID)
}

// UpsertMyProfile creates the profile on first write and updates it after.
func (uc *ProfileUseCase) UpsertMyProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*domain.Profile, error) {
	profile := &domain.Profile{
		UserID:         userID,
		DisplayName:    req.DisplayName,
		PhotoURL:       req.PhotoURL,
		Bio:            req.Bio,
		FavoriteGenres: req.FavoriteGenres,
	}

	if err := uc.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}

	return profile, nil
}

// GetPublicProfile returns the projection of another user visible to everyone.
func (uc *ProfileUseCase) GetPublicProfile(ctx context.Context, userID string) (*domain.PublicProfile, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return profile.Public(), nil
}
