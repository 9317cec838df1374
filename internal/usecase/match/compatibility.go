package match

import (
	"math"

	"github.com/reelmates/backend/internal/domain"
)

// Compatible decides whether another user's view of the same movie qualifies
// as a potential match against the requester's view.
//
// Rules, all of which must hold:
//   - never match self;
//   - when minRating is set, the other user must have rated at least that high
//     (the requester's own rating is not gated);
//   - when both sides rated, the ratings must be within one star of each
//     other. An unrated side leaves this rule vacuously satisfied.
func Compatible(myView, candidate domain.View, filters domain.MatchFilters) bool {
	if candidate.UserID == myView.UserID {
		return false
	}

	if filters.MinRating > 0 {
		if candidate.Rating == nil || *candidate.Rating < filters.MinRating {
			return false
		}
	}

	if myView.Rating != nil && candidate.Rating != nil {
		if math.Abs(*myView.Rating-*candidate.Rating) > 1 {
			return false
		}
	}

	return true
}
