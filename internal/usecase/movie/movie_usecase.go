package movie

import (
	"context"

	"github.com/reelmates/backend/internal/domain"
	"github.com/reelmates/backend/internal/repository"
)

type MovieUseCase struct {
	movieMeta repository.MovieMetadataProvider
}

func NewMovieUseCase(movieMeta repository.MovieMetadataProvider) *MovieUseCase {
	return &MovieUseCase{
		movieMeta: movieMeta,
	}
}

// GetMovie resolves movie metadata through the freshness cache.
func (uc *MovieUseCase) GetMovie(ctx context.Context, movieID int64) (*domain.MovieMetadata, error) {
	return uc.movieMeta.GetMovie(ctx, movieID)
}
