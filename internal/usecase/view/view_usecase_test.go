package view

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/reelmates/backend/internal/domain"
)

type fakeViewRepo struct {
	created   []*domain.View
	lastLimit int
	lastOff   int
	deleted   map[string]string
}

func (f *fakeViewRepo) Create(_ context.Context, v *domain.View) error {
	v.CreatedAt = time.Now()
	f.created = append(f.created, v)
	return nil
}

func (f *fakeViewRepo) RecentByUser(_ context.Context, _ string, _ time.Time, _ domain.MediaKind) ([]domain.View, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeViewRepo) RecentByMovie(_ context.Context, _ int64, _ time.Time, _ domain.MediaKind) ([]domain.View, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeViewRepo) LatestByUserAndMovie(_ context.Context, _ string, _ int64) (*domain.View, error) {
	return nil, domain.ErrViewNotFound
}

func (f *fakeViewRepo) ListByUser(_ context.Context, _ string, limit, offset int) ([]domain.View, error) {
	f.lastLimit = limit
	f.lastOff = offset
	return nil, nil
}

func (f *fakeViewRepo) Delete(_ context.Context, id string, userID string) error {
	if f.deleted == nil {
		f.deleted = make(map[string]string)
	}
	f.deleted[id] = userID
	return nil
}

func newTestUseCase(repo *fakeViewRepo) *ViewUseCase {
	uc := NewViewUseCase(repo)
	uc.now = func() time.Time {
		return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	}
	return uc
}

func TestLogView_DefaultsWatchedAtToNow(t *testing.T) {
	repo := &fakeViewRepo{}
	uc := newTestUseCase(repo)

	created, err := uc.LogView(context.Background(), "alice", &LogViewRequest{
		MovieID:   100,
		MediaKind: "movie",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.ID == "" {
		t.Error("expected a generated view id")
	}
	if created.UserID != "alice" {
		t.Errorf("expected userId=alice, got %s", created.UserID)
	}
	if !created.WatchedAt.Equal(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("expected watchedAt defaulted to now, got %v", created.WatchedAt)
	}
	if len(repo.created) != 1 {
		t.Errorf("expected one created view, got %d", len(repo.created))
	}
}

func TestLogView_KeepsExplicitWatchedAtAndRating(t *testing.T) {
	repo := &fakeViewRepo{}
	uc := newTestUseCase(repo)

	watchedAt := time.Date(2026, 7, 20, 21, 30, 0, 0, time.UTC)
	rating := 4.5
	created, err := uc.LogView(context.Background(), "alice", &LogViewRequest{
		MovieID:   100,
		MediaKind: "series",
		WatchedAt: &watchedAt,
		Rating:    &rating,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !created.WatchedAt.Equal(watchedAt) {
		t.Errorf("expected explicit watchedAt kept, got %v", created.WatchedAt)
	}
	if created.MediaKind != domain.MediaKindSeries {
		t.Errorf("expected series kind, got %s", created.MediaKind)
	}
	if created.Rating == nil || *created.Rating != 4.5 {
		t.Errorf("expected rating=4.5, got %v", created.Rating)
	}
}

func TestLogView_RejectsUnknownMediaKind(t *testing.T) {
	uc := newTestUseCase(&fakeViewRepo{})

	_, err := uc.LogView(context.Background(), "alice", &LogViewRequest{
		MovieID:   100,
		MediaKind: "documentary",
	})
	if !errors.Is(err, domain.ErrInvalidMediaKind) {
		t.Fatalf("expected ErrInvalidMediaKind, got %v", err)
	}
}

func TestListMyViews_ClampsLimit(t *testing.T) {
	repo := &fakeViewRepo{}
	uc := newTestUseCase(repo)

	views, err := uc.ListMyViews(context.Background(), "alice", 9999, -5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if views == nil {
		t.Error("expected non-nil slice for empty log")
	}
	if repo.lastLimit != maxListLimit {
		t.Errorf("expected limit clamped to %d, got %d", maxListLimit, repo.lastLimit)
	}
	if repo.lastOff != 0 {
		t.Errorf("expected negative offset reset to 0, got %d", repo.lastOff)
	}
}

func TestListMyViews_DefaultLimit(t *testing.T) {
	repo := &fakeViewRepo{}
	uc := newTestUseCase(repo)

	if _, err := uc.ListMyViews(context.Background(), "alice", 0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastLimit != defaultListLimit {
		t.Errorf("expected default limit %d, got %d", defaultListLimit, repo.lastLimit)
	}
}

func TestDeleteView_ScopedToOwner(t *testing.T) {
	repo := &fakeViewRepo{}
	uc := newTestUseCase(repo)

	if err := uc.DeleteView(context.Background(), "alice", "view-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.deleted["view-1"] != "alice" {
		t.Errorf("expected delete scoped to alice, got %q", repo.deleted["view-1"])
	}
}
