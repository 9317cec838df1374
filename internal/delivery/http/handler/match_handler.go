package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/reelmates/backend/internal/delivery/http/middleware"
	"github.com/reelmates/backend/internal/domain"
	"github.com/reelmates/backend/internal/usecase/match"
)

type MatchHandler struct {
	matchUseCase *match.MatchUseCase
}

func NewMatchHandler(matchUseCase *match.MatchUseCase) *MatchHandler {
	return &MatchHandler{
		matchUseCase: matchUseCase,
	}
}

// GetMatches handles GET /matches
// @Summary Find potential matches
// @Description Find other users who recently watched the same movies
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param maxDaysAgo query int false "Recency window in days" default(30)
// @Param minRating query number false "Minimum rating by the other user"
// @Param limit query int false "Maximum matches returned" default(50)
// @Success 200 {object} domain.MatchPage
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /matches [get]
func (h *MatchHandler) GetMatches(c *gin.Context) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	filters, err := parseMatchFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	page, err := h.matchUseCase.FindMatches(c.Request.Context(), userID.(string), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to find matches",
		})
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetMovieWatchers handles GET /matches/movie/:movie_id
// @Summary List recent watchers of a movie
// @Description List other users who recently watched a movie the requester has watched
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param movie_id path int true "Movie ID"
// @Param maxDaysAgo query int false "Recency window in days" default(30)
// @Param limit query int false "Maximum entries returned"
// @Success 200 {array} domain.PotentialMatch
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /matches/movie/{movie_id} [get]
func (h *MatchHandler) GetMovieWatchers(c *gin.Context) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	movieID, err := strconv.ParseInt(c.Param("movie_id"), 10, 64)
	if err != nil || movieID <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid movie_id",
		})
		return
	}

	maxDaysAgo, err := queryInt(c, "maxDaysAgo", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
		})
		return
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	watchers, err := h.matchUseCase.MovieWatchers(c.Request.Context(), userID.(string), movieID, maxDaysAgo, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list watchers",
		})
		return
	}

	c.JSON(http.StatusOK, watchers)
}

func parseMatchFilters(c *gin.Context) (domain.MatchFilters, error) {
	var filters domain.MatchFilters

	maxDaysAgo, err := queryInt(c, "maxDaysAgo", 0)
	if err != nil {
		return filters, err
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return filters, err
	}

	minRating := 0.0
	if raw := c.Query("minRating"); raw != "" {
		minRating, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return filters, fmt.Errorf("invalid minRating")
		}
		if minRating < 0 || minRating > 5 {
			return filters, fmt.Errorf("minRating must be between 0 and 5")
		}
	}

	filters.MaxDaysAgo = maxDaysAgo
	filters.MinRating = minRating
	filters.Limit = limit
	return filters, nil
}

func queryInt(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return value, nil
}
