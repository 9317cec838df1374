package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/reelmates/backend/internal/domain"
)

// Client is a thin TMDb API client. It only knows the movie-details call the
// backend proxies; everything else TMDb offers is out of scope.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiKey:     apiKey,
		baseURL:    baseURL,
	}
}

type movieDetailsResponse struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	PosterPath  *string  `json:"poster_path"`
	Overview    *string  `json:"overview"`
	ReleaseDate *string  `json:"release_date"`
	VoteAverage *float64 `json:"vote_average"`
}

// GetMovie fetches movie details from TMDb. Unknown ids map to
// domain.ErrMovieNotFound; any other non-200 status is a client error.
func (c *Client) GetMovie(ctx context.Context, movieID int64) (*domain.MovieMetadata, error) {
	endpoint := fmt.Sprintf("%s/movie/%d?api_key=%s", c.baseURL, movieID, url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build tmdb request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tmdb request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrMovieNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tmdb returned status %d", resp.StatusCode)
	}

	var details movieDetailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		return nil, fmt.Errorf("failed to decode tmdb response: %w", err)
	}

	return &domain.MovieMetadata{
		MovieID:     details.ID,
		Title:       details.Title,
		PosterPath:  details.PosterPath,
		Overview:    details.Overview,
		ReleaseDate: details.ReleaseDate,
		VoteAverage: details.VoteAverage,
		FetchedAt:   time.Now(),
	}, nil
}
