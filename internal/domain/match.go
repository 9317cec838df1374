package domain

import "time"

const (
	DefaultMaxDaysAgo = 30
	DefaultMatchLimit = 50
)

// MatchFilters are request-scoped knobs for the match finder. Zero values
// mean "use the default" (or "no filter" for MinRating).
type MatchFilters struct {
	MaxDaysAgo int
	MinRating  float64
	Limit      int
}

// Normalized returns a copy with defaults applied.
func (f MatchFilters) Normalized() MatchFilters {
	if f.MaxDaysAgo <= 0 {
		f.MaxDaysAgo = DefaultMaxDaysAgo
	}
	if f.MinRating < 0 {
		f.MinRating = 0
	}
	if f.Limit <= 0 {
		f.Limit = DefaultMatchLimit
	}
	return f
}

// PotentialMatch is a computed suggestion that another user shares taste with
// the requester based on a commonly watched movie. It is never persisted;
// DaysAgo in particular depends on wall-clock "now" at request time.
type PotentialMatch struct {
	UserID          string    `json:"userId"`
	DisplayName     *string   `json:"displayName,omitempty"`
	PhotoURL        *string   `json:"photoURL,omitempty"`
	MovieID         int64     `json:"movieId"`
	MovieTitle      *string   `json:"movieTitle,omitempty"`
	MoviePosterPath *string   `json:"moviePosterPath,omitempty"`
	TheirWatchedAt  time.Time `json:"theirWatchedAt"`
	MyWatchedAt     time.Time `json:"myWatchedAt"`
	DaysAgo         int       `json:"daysAgo"`
	MyRating        *float64  `json:"myRating,omitempty"`
	TheirRating     *float64  `json:"theirRating,omitempty"`
}

// MatchPage is the multi-title finder's result. Total counts all qualifying
// matches before truncation to the requested limit.
type MatchPage struct {
	Matches []PotentialMatch `json:"matches"`
	Total   int              `json:"total"`
}
