package handler

import "github.com/gin-gonic/gin"

// Register mounts every route on r.
func (h *Handler) Register(r gin.IRouter) {
	// Health check endpoint
	r.GET("/", h.Root)

	api := r.Group("/api")
	{
		// Game routes
		games := api.Group("/games")
		{
			games.GET("", h.ListGames)
			games.GET("/top-rated", h.TopRatedGames) // Must be before /:id
			games.GET("/most-wishlisted", h.MostWishlistedGames)
			games.GET("/:id", h.GetGame)
			games.GET("/:id/reviews", h.GameReviews)
		}

		// User routes
		users := api.Group("/users")
		{
			users.GET("", h.ListUsers)
			users.GET("/:id", h.GetUser)
			users.GET("/:id/library", h.UserLibrary)
			users.GET("/:id/wishlist", h.UserWishlist)
			users.GET("/:id/reviews", h.UserReviews)
		}

		// Analytics routes
		analytics := api.Group("/analytics")
		{
			analytics.GET("/genres", h.GenreStats)
			analytics.GET("/tags", h.TagStats)
			analytics.GET("/overview", h.Overview)
			analytics.GET("/games-count", h.GamesCount)
			analytics.GET("/users-count", h.UsersCount)
			analytics.GET("/reviews-count", h.ReviewsCount)
			analytics.GET("/average-rating", h.AverageRating)
		}
	}
}
