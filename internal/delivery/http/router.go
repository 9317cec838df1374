package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/reelmates/backend/internal/delivery/http/handler"
	"github.com/reelmates/backend/internal/delivery/http/middleware"
)

type Router struct {
	matchHandler   *handler.MatchHandler
	viewHandler    *handler.ViewHandler
	profileHandler *handler.ProfileHandler
	movieHandler   *handler.MovieHandler
	authMiddleware *middleware.AuthMiddleware
}

func NewRouter(
	matchHandler *handler.MatchHandler,
	viewHandler *handler.ViewHandler,
	profileHandler *handler.ProfileHandler,
	movieHandler *handler.MovieHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		matchHandler:   matchHandler,
		viewHandler:    viewHandler,
		profileHandler: profileHandler,
		movieHandler:   movieHandler,
		authMiddleware: authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()
	router.Use(middleware.Metrics())

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1
	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			// Match routes
			matches := protected.Group("/matches")
			{
				matches.GET("", r.matchHandler.GetMatches)
				matches.GET("/movie/:movie_id", r.matchHandler.GetMovieWatchers)
			}

			// Viewing-log routes
			views := protected.Group("/views")
			{
				views.POST("", r.viewHandler.LogView)
				views.GET("/me", r.viewHandler.ListMyViews)
				views.DELETE("/:view_id", r.viewHandler.DeleteView)
			}

			// Profile routes
			profile := protected.Group("/profile")
			{
				profile.GET("/me", r.profileHandler.GetMyProfile)
				profile.PUT("/me", r.profileHandler.UpdateMyProfile)
				profile.GET("/:user_id", r.profileHandler.GetPublicProfile)
			}

			// Movie metadata proxy
			movies := protected.Group("/movies")
			{
				movies.GET("/:movie_id", r.movieHandler.GetMovie)
			}
		}
	}

	return router
}
