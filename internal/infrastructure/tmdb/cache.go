package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/reelmates/backend/internal/domain"
	"github.com/reelmates/backend/internal/repository"
)

// CachedProvider is a read-through cache in front of the TMDb client. Entries
// expire after the configured freshness window. Cache failures degrade to a
// direct fetch; they never fail the lookup on their own.
type CachedProvider struct {
	client *Client
	redis  *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

func NewCachedProvider(client *Client, redisClient *redis.Client, ttl time.Duration, log zerolog.Logger) repository.MovieMetadataProvider {
	return &CachedProvider{
		client: client,
		redis:  redisClient,
		ttl:    ttl,
		log:    log,
	}
}

func cacheKey(movieID int64) string {
	return fmt.Sprintf("movie:meta:%d", movieID)
}

func (p *CachedProvider) GetMovie(ctx context.Context, movieID int64) (*domain.MovieMetadata, error) {
	key := cacheKey(movieID)

	cached, err := p.redis.Get(ctx, key).Bytes()
	if err == nil {
		var meta domain.MovieMetadata
		if err := json.Unmarshal(cached, &meta); err == nil {
			return &meta, nil
		}
		p.log.Warn().Int64("movie_id", movieID).Msg("corrupt movie metadata cache entry, refetching")
	} else if !errors.Is(err, redis.Nil) {
		p.log.Warn().Err(err).Int64("movie_id", movieID).Msg("movie metadata cache read failed")
	}

	meta, err := p.client.GetMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(meta)
	if err == nil {
		if err := p.redis.Set(ctx, key, payload, p.ttl).Err(); err != nil {
			p.log.Warn().Err(err).Int64("movie_id", movieID).Msg("movie metadata cache write failed")
		}
	}

	return meta, nil
}
