package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/reelmates/backend/internal/domain"
	"github.com/reelmates/backend/internal/usecase/movie"
)

type MovieHandler struct {
	movieUseCase *movie.MovieUseCase
}

func NewMovieHandler(movieUseCase *movie.MovieUseCase) *MovieHandler {
	return &MovieHandler{
		movieUseCase: movieUseCase,
	}
}

// GetMovie handles GET /movies/:movie_id
// @Summary Get movie metadata
// @Description Proxy cached TMDb metadata for one movie
// @Tags movies
// @Security BearerAuth
// @Produce json
// @Param movie_id path int true "Movie ID"
// @Success 200 {object} domain.MovieMetadata
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /movies/{movie_id} [get]
func (h *MovieHandler) GetMovie(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movie_id"), 10, 64)
	if err != nil || movieID <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid movie_id",
		})
		return
	}

	meta, err := h.movieUseCase.GetMovie(c.Request.Context(), movieID)
	if err != nil {
		if errors.Is(err, domain.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "movie not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to get movie",
		})
		return
	}

	c.JSON(http.StatusOK, meta)
}
