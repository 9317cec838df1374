package domain

import "time"

// MediaKind distinguishes movies from series in the viewing log.
// The matching engine only looks at movies.
type MediaKind string

const (
	MediaKindMovie  MediaKind = "movie"
	MediaKindSeries MediaKind = "series"
)

func (k MediaKind) Valid() bool {
	return k == MediaKindMovie || k == MediaKindSeries
}

// View is one viewing event. Views are append-only: they are created when a
// user logs a watch and never mutated afterwards.
type View struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	MovieID   int64     `json:"movieId" db:"movie_id"`
	MediaKind MediaKind `json:"mediaKind" db:"media_kind"`
	WatchedAt time.Time `json:"watchedAt" db:"watched_at"`
	Rating    *float64  `json:"rating,omitempty" db:"rating"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
