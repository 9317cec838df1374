package view

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/reelmates/backend/internal/domain"
	"github.com/reelmates/backend/internal/repository"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

type ViewUseCase struct {
	viewRepo repository.ViewRepository

	now func() time.Time
}

func NewViewUseCase(viewRepo repository.ViewRepository) *ViewUseCase {
	return &ViewUseCase{
		viewRepo: viewRepo,
		now:      time.Now,
	}
}

// LogViewRequest represents a request to record a viewing event
type LogViewRequest struct {
	MovieID   int64      `json:"movieId" binding:"required,min=1"`
	MediaKind string     `json:"mediaKind" binding:"required,oneof=movie series"`
	WatchedAt *time.Time `json:"watchedAt"`
	Rating    *float64   `json:"rating" binding:"omitempty,min=0,max=5"`
}

// LogView appends a viewing event to the user's log. Views are immutable once
// created.
func (uc *ViewUseCase) LogView(ctx context.Context, userID string, req *LogViewRequest) (*domain.View, error) {
	kind := domain.MediaKind(req.MediaKind)
	if !kind.Valid() {
		return nil, domain.ErrInvalidMediaKind
	}

	watchedAt := uc.now()
	if req.WatchedAt != nil {
		watchedAt = *req.WatchedAt
	}

	view := &domain.View{
		ID:        uuid.NewString(),
		UserID:    userID,
		MovieID:   req.MovieID,
		MediaKind: kind,
		WatchedAt: watchedAt,
		Rating:    req.Rating,
	}

	if err := uc.viewRepo.Create(ctx, view); err != nil {
		return nil, fmt.Errorf("failed to create view: %w", err)
	}

	return view, nil
}

// ListMyViews returns the user's viewing log, most recent first.
func (uc *ViewUseCase) ListMyViews(ctx context.Context, userID string, limit, offset int) ([]domain.View, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	views, err := uc.viewRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list views: %w", err)
	}
	if views == nil {
		views = []domain.View{}
	}
	return views, nil
}

// DeleteView removes one of the user's own viewing events.
func (uc *ViewUseCase) DeleteView(ctx context.Context, userID, viewID string) error {
	return uc.viewRepo.Delete(ctx, viewID, userID)
}
