package domain

import "time"

type Profile struct {
	UserID         string    `json:"userId" db:"user_id"`
	DisplayName    string    `json:"displayName" db:"display_name"`
	PhotoURL       *string   `json:"photoURL" db:"photo_url"`
	Bio            *string   `json:"bio" db:"bio"`
	FavoriteGenres []string  `json:"favoriteGenres" db:"favorite_genres"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

// PublicProfile is the projection other users are allowed to see.
type PublicProfile struct {
	UserID      string  `json:"userId"`
	DisplayName string  `json:"displayName"`
	PhotoURL    *string `json:"photoURL,omitempty"`
}

func (p *Profile) Public() *PublicProfile {
	return &PublicProfile{
		UserID:      p.UserID,
		DisplayName: p.DisplayName,
		PhotoURL:    p.PhotoURL,
	}
}
