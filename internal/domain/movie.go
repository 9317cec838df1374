package domain

import "time"

// MovieMetadata is what the metadata proxy knows about a movie. It lives in
// the cache with a freshness TTL and is never written to postgres.
type MovieMetadata struct {
	MovieID     int64    `json:"movieId"`
	Title       string   `json:"title"`
	PosterPath  *string  `json:"posterPath,omitempty"`
	Overview    *string  `json:"overview,omitempty"`
	ReleaseDate *string  `json:"releaseDate,omitempty"`
	VoteAverage *float64 `json:"voteAverage,omitempty"`

	FetchedAt time.Time `json:"fetchedAt"`
}
