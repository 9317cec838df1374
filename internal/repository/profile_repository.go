package repository

import (
	"context"

	"github.com/reelmates/backend/internal/domain"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	Upsert(ctx context.Context, profile *domain.Profile) error
	Delete(ctx context.Context, userID string) error
}
