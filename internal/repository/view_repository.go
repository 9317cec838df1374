package repository

import (
	"context"
	"time"

	"github.com/reelmates/backend/internal/domain"
)

type ViewRepository interface {
	Create(ctx context.Context, view *domain.View) error
	// RecentByUser returns the user's views of the given kind with
	// watched_at >= since, ordered by watched_at descending.
	RecentByUser(ctx context.Context, userID string, since time.Time, kind domain.MediaKind) ([]domain.View, error)
	// RecentByMovie returns all users' views of one movie with
	// watched_at >= since, ordered by watched_at descending.
	RecentByMovie(ctx context.Context, movieID int64, since time.Time, kind domain.MediaKind) ([]domain.View, error)
	// LatestByUserAndMovie returns the user's most recent view of the movie,
	// or domain.ErrViewNotFound.
	LatestByUserAndMovie(ctx context.Context, userID string, movieID int64) (*domain.View, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.View, error)
	// Delete removes the view only if it belongs to userID.
	Delete(ctx context.Context, id string, userID string) error
}
