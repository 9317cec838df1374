package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/reelmates/backend/internal/domain"
	"github.com/reelmates/backend/internal/repository"
)

type viewRepository struct {
	db *sqlx.DB
}

func NewViewRepository(db *sqlx.DB) repository.ViewRepository {
	return &viewRepository{db: db}
}

func (r *viewRepository) Create(ctx context.Context, view *domain.View) error {
	query := `
		INSERT INTO views (id, user_id, movie_id, media_kind, watched_at, rating)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		view.ID, view.UserID, view.MovieID, view.MediaKind, view.WatchedAt, view.Rating,
	).Scan(&view.CreatedAt)
}

func (r *viewRepository) RecentByUser(ctx context.Context, userID string, since time.Time, kind domain.MediaKind) ([]domain.View, error) {
	var views []domain.View
	query := `
		SELECT * FROM views
		WHERE user_id = $1 AND media_kind = $2 AND watched_at >= $3
		ORDER BY watched_at DESC
	`
	err := r.db.SelectContext(ctx, &views, query, userID, kind, since)
	return views, err
}

func (r *viewRepository) RecentByMovie(ctx context.Context, movieID int64, since time.Time, kind domain.MediaKind) ([]domain.View, error) {
	var views []domain.View
	query := `
		SELECT * FROM views
		WHERE movie_id = $1 AND media_kind = $2 AND watched_at >= $3
		ORDER BY watched_at DESC
	`
	err := r.db.SelectContext(ctx, &views, query, movieID, kind, since)
	return views, err
}

func (r *viewRepository) LatestByUserAndMovie(ctx context.Context, userID string, movieID int64) (*domain.View, error) {
	var view domain.View
	query := `
		SELECT * FROM views
		WHERE user_id = $1 AND movie_id = $2
		ORDER BY watched_at DESC
		LIMIT 1
	`
	err := r.db.GetContext(ctx, &view, query, userID, movieID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrViewNotFound
		}
		return nil, err
	}
	return &view, nil
}

func (r *viewRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.View, error) {
	var views []domain.View
	query := `
		SELECT * FROM views
		WHERE user_id = $1
		ORDER BY watched_at DESC
		LIMIT $2 OFFSET $3
	`
	err := r.db.SelectContext(ctx, &views, query, userID, limit, offset)
	return views, err
}

func (r *viewRepository) Delete(ctx context.Context, id string, userID string) error {
	query := `DELETE FROM views WHERE id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrViewNotFound
	}
	return nil
}
