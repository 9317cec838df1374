package repository

import (
	"context"

	"github.com/reelmates/backend/internal/domain"
)

// MovieMetadataProvider resolves movie metadata by numeric id. Implementations
// return domain.ErrMovieNotFound for unknown ids; any other error means the
// provider itself failed.
type MovieMetadataProvider interface {
	GetMovie(ctx context.Context, movieID int64) (*domain.MovieMetadata, error)
}
