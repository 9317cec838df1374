package match

import (
	"testing"
	"time"

	"github.com/reelmates/backend/internal/domain"
)

func ratingPtr(r float64) *float64 {
	return &r
}

func view(userID string, movieID int64, watchedAt time.Time, rating *float64) domain.View {
	return domain.View{
		ID:        userID + "-view",
		UserID:    userID,
		MovieID:   movieID,
		MediaKind: domain.MediaKindMovie,
		WatchedAt: watchedAt,
		Rating:    rating,
	}
}

func TestCompatible(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		myRating  *float64
		candidate domain.View
		filters   domain.MatchFilters
		want      bool
	}{
		{
			name:      "same user never matches",
			myRating:  ratingPtr(4),
			candidate: view("me", 1, now, ratingPtr(4)),
			want:      false,
		},
		{
			name:      "ratings within one star",
			myRating:  ratingPtr(4),
			candidate: view("other", 1, now, ratingPtr(5)),
			want:      true,
		},
		{
			name:      "ratings exactly one star apart",
			myRating:  ratingPtr(3.5),
			candidate: view("other", 1, now, ratingPtr(4.5)),
			want:      true,
		},
		{
			name:      "ratings more than one star apart",
			myRating:  ratingPtr(4),
			candidate: view("other", 1, now, ratingPtr(2)),
			want:      false,
		},
		{
			name:      "unrated candidate passes the band",
			myRating:  ratingPtr(5),
			candidate: view("other", 1, now, nil),
			want:      true,
		},
		{
			name:      "unrated requester passes the band",
			myRating:  nil,
			candidate: view("other", 1, now, ratingPtr(1)),
			want:      true,
		},
		{
			name:      "both unrated are vacuously compatible",
			myRating:  nil,
			candidate: view("other", 1, now, nil),
			want:      true,
		},
		{
			name:      "minRating excludes unrated candidate",
			myRating:  nil,
			candidate: view("other", 1, now, nil),
			filters:   domain.MatchFilters{MinRating: 3},
			want:      false,
		},
		{
			name:      "minRating excludes low candidate rating",
			myRating:  ratingPtr(4),
			candidate: view("other", 1, now, ratingPtr(3.5)),
			filters:   domain.MatchFilters{MinRating: 4},
			want:      false,
		},
		{
			name:      "minRating keeps candidate at the threshold",
			myRating:  ratingPtr(4),
			candidate: view("other", 1, now, ratingPtr(4)),
			filters:   domain.MatchFilters{MinRating: 4},
			want:      true,
		},
		{
			name:      "minRating gates the candidate rating only",
			myRating:  nil,
			candidate: view("other", 1, now, ratingPtr(4.5)),
			filters:   domain.MatchFilters{MinRating: 4},
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			myView := view("me", 1, now, tt.myRating)
			if got := Compatible(myView, tt.candidate, tt.filters); got != tt.want {
				t.Errorf("Compatible() = %v, want %v", got, tt.want)
			}
		})
	}
}
