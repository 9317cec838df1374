package match

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/reelmates/backend/internal/domain"
	"github.com/reelmates/backend/internal/repository"
)

type MatchUseCase struct {
	viewRepo    repository.ViewRepository
	profileRepo repository.ProfileRepository
	movieMeta   repository.MovieMetadataProvider
	log         zerolog.Logger

	// now is swapped out in tests; daysAgo must be deterministic there.
	now func() time.Time
}

func NewMatchUseCase(
	viewRepo repository.ViewRepository,
	profileRepo repository.ProfileRepository,
	movieMeta repository.MovieMetadataProvider,
	log zerolog.Logger,
) *MatchUseCase {
	return &MatchUseCase{
		viewRepo:    viewRepo,
		profileRepo: profileRepo,
		movieMeta:   movieMeta,
		log:         log,
		now:         time.Now,
	}
}

// matchPair holds the two source views of a surviving match before
// enrichment.
type matchPair struct {
	my    domain.View
	their domain.View
}

type pairKey struct {
	userID  string
	movieID int64
}

// FindMatches returns other users who recently watched the same movies as the
// requester, filtered for rating compatibility, deduplicated per
// (user, movie), sorted by recency and truncated to the requested limit.
// Total always counts the full set before truncation.
func (uc *MatchUseCase) FindMatches(ctx context.Context, userID string, filters domain.MatchFilters) (*domain.MatchPage, error) {
	filters = filters.Normalized()
	now := uc.now()
	cutoff := now.AddDate(0, 0, -filters.MaxDaysAgo)

	myViews, err := uc.viewRepo.RecentByUser(ctx, userID, cutoff, domain.MediaKindMovie)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent views: %w", err)
	}
	if len(myViews) == 0 {
		return &domain.MatchPage{Matches: []domain.PotentialMatch{}, Total: 0}, nil
	}

	candidatesByMovie, err := uc.fetchCandidates(ctx, myViews, cutoff)
	if err != nil {
		return nil, err
	}

	// Candidate fetches ran concurrently, but accumulation replays the
	// store-return order of myViews and candidates so the first-seen dedup
	// winner does not depend on scheduling.
	seen := make(map[pairKey]struct{})
	var surviving []matchPair
	for _, myView := range myViews {
		for _, candidate := range candidatesByMovie[myView.MovieID] {
			if !Compatible(myView, candidate, filters) {
				continue
			}
			key := pairKey{userID: candidate.UserID, movieID: myView.MovieID}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			surviving = append(surviving, matchPair{my: myView, their: candidate})
		}
	}

	profiles, metadata, err := uc.enrich(ctx, surviving)
	if err != nil {
		return nil, err
	}

	matches := make([]domain.PotentialMatch, 0, len(surviving))
	for _, pair := range surviving {
		matches = append(matches, buildMatch(pair, profiles[pair.their.UserID], metadata[pair.my.MovieID], now))
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].DaysAgo < matches[j].DaysAgo
	})

	total := len(matches)
	if len(matches) > filters.Limit {
		matches = matches[:filters.Limit]
	}

	uc.log.Debug().
		Str("user_id", userID).
		Int("my_views", len(myViews)).
		Int("total", total).
		Int("returned", len(matches)).
		Msg("computed potential matches")

	return &domain.MatchPage{Matches: matches, Total: total}, nil
}

// MovieWatchers lists other recent viewers of one movie the requester has
// already watched. Unlike FindMatches there is no rating-compatibility filter
// and no per-user dedup: every view event is its own entry.
func (uc *MatchUseCase) MovieWatchers(ctx context.Context, userID string, movieID int64, maxDaysAgo, limit int) ([]domain.PotentialMatch, error) {
	if maxDaysAgo <= 0 {
		maxDaysAgo = domain.DefaultMaxDaysAgo
	}
	now := uc.now()
	cutoff := now.AddDate(0, 0, -maxDaysAgo)

	myView, err := uc.viewRepo.LatestByUserAndMovie(ctx, userID, movieID)
	if err != nil {
		if errors.Is(err, domain.ErrViewNotFound) {
			return []domain.PotentialMatch{}, nil
		}
		return nil, fmt.Errorf("failed to load own view: %w", err)
	}

	candidates, err := uc.viewRepo.RecentByMovie(ctx, movieID, cutoff, domain.MediaKindMovie)
	if err != nil {
		return nil, fmt.Errorf("failed to load views by movie: %w", err)
	}

	var pairs []matchPair
	for _, candidate := range candidates {
		if candidate.UserID == userID {
			continue
		}
		pairs = append(pairs, matchPair{my: *myView, their: candidate})
	}

	profiles, metadata, err := uc.enrich(ctx, pairs)
	if err != nil {
		return nil, err
	}

	matches := make([]domain.PotentialMatch, 0, len(pairs))
	for _, pair := range pairs {
		matches = append(matches, buildMatch(pair, profiles[pair.their.UserID], metadata[pair.my.MovieID], now))
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].DaysAgo < matches[j].DaysAgo
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	return matches, nil
}

// fetchCandidates fans out one RecentByMovie query per distinct movie in the
// requester's views. The first error wins; partial results are discarded.
func (uc *MatchUseCase) fetchCandidates(ctx context.Context, myViews []domain.View, cutoff time.Time) (map[int64][]domain.View, error) {
	movieIDs := make([]int64, 0, len(myViews))
	seen := make(map[int64]struct{}, len(myViews))
	for _, view := range myViews {
		if _, ok := seen[view.MovieID]; ok {
			continue
		}
		seen[view.MovieID] = struct{}{}
		movieIDs = append(movieIDs, view.MovieID)
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
	)
	result := make(map[int64][]domain.View, len(movieIDs))

	for _, movieID := range movieIDs {
		wg.Add(1)
		go func(movieID int64) {
			defer wg.Done()
			views, err := uc.viewRepo.RecentByMovie(ctx, movieID, cutoff, domain.MediaKindMovie)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			result[movieID] = views
		}(movieID)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, fmt.Errorf("failed to load views by movie: %w", firstErr)
	}
	return result, nil
}

// enrich batches profile and metadata lookups for the surviving pairs: one
// lookup per distinct user and per distinct movie. A missing profile or
// unknown movie degrades to nil; any other lookup failure propagates.
func (uc *MatchUseCase) enrich(ctx context.Context, pairs []matchPair) (map[string]*domain.Profile, map[int64]*domain.MovieMetadata, error) {
	userIDs := make(map[string]struct{})
	movieIDs := make(map[int64]struct{})
	for _, pair := range pairs {
		userIDs[pair.their.UserID] = struct{}{}
		movieIDs[pair.my.MovieID] = struct{}{}
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
	)
	profiles := make(map[string]*domain.Profile, len(userIDs))
	metadata := make(map[int64]*domain.MovieMetadata, len(movieIDs))

	for userID := range userIDs {
		wg.Add(1)
		go func(userID string) {
			defer wg.Done()
			profile, err := uc.profileRepo.GetByUserID(ctx, userID)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if !errors.Is(err, domain.ErrProfileNotFound) && firstErr == nil {
					firstErr = fmt.Errorf("failed to load profile: %w", err)
				}
				return
			}
			profiles[userID] = profile
		}(userID)
	}

	for movieID := range movieIDs {
		wg.Add(1)
		go func(movieID int64) {
			defer wg.Done()
			meta, err := uc.movieMeta.GetMovie(ctx, movieID)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if !errors.Is(err, domain.ErrMovieNotFound) && firstErr == nil {
					firstErr = fmt.Errorf("failed to load movie metadata: %w", err)
				}
				return
			}
			metadata[movieID] = meta
		}(movieID)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, nil, firstErr
	}
	return profiles, metadata, nil
}

func buildMatch(pair matchPair, profile *domain.Profile, meta *domain.MovieMetadata, now time.Time) domain.PotentialMatch {
	m := domain.PotentialMatch{
		UserID:         pair.their.UserID,
		MovieID:        pair.my.MovieID,
		TheirWatchedAt: pair.their.WatchedAt,
		MyWatchedAt:    pair.my.WatchedAt,
		DaysAgo:        daysAgo(pair.their.WatchedAt, now),
		MyRating:       pair.my.Rating,
		TheirRating:    pair.their.Rating,
	}
	if profile != nil {
		m.DisplayName = &profile.DisplayName
		m.PhotoURL = profile.PhotoURL
	}
	if meta != nil {
		m.MovieTitle = &meta.Title
		m.MoviePosterPath = meta.PosterPath
	}
	return m
}

func daysAgo(watchedAt, now time.Time) int {
	return int(now.Sub(watchedAt).Hours() / 24)
}
