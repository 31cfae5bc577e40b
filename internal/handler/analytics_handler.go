package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gamelibrary/backend/internal/stats"
)

// region --- DTOs ---

// CountResponse wraps a single count.
type CountResponse struct {
	Count int64 `json:"count" example:"42"`
}

// AverageResponse wraps the catalog-wide average rating.
type AverageResponse struct {
	Average float64 `json:"average" example:"4.5"`
}

// endregion

// cached serves key from the cache, computing and storing it on a miss.
// Cache errors are logged and never fail the request.
func cached[T any](h *Handler, c *gin.Context, key string, compute func(ctx context.Context) (T, error)) (T, error) {
	ctx := c.Request.Context()
	log := h.logger(c)

	var v T
	hit, err := h.cache.Get(ctx, key, &v)
	if err != nil {
		log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	} else if hit {
		log.Debug("cache hit", zap.String("key", key))
		return v, nil
	}

	v, err = compute(ctx)
	if err != nil {
		return v, err
	}
	if err := h.cache.Set(ctx, key, v); err != nil {
		log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
	return v, nil
}

// region --- Handlers ---

// GenreStats godoc
// @Summary      Statistics per genre
// @Description  Game count and average rating for every genre, keyed by genre name.
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  map[string]stats.Stat
// @Failure      500  {object}  ErrorResponse
// @Router       /analytics/genres [get]
func (h *Handler) GenreStats(c *gin.Context) {
	result, err := cached(h, c, "analytics:genres", func(ctx context.Context) (map[string]stats.Stat, error) {
		rows, err := h.stats.GenreStats(ctx)
		if err != nil {
			return nil, err
		}
		return stats.BuildKeyedStats(rows), nil
	})
	if err != nil {
		h.fail(c, "Failed to fetch genre statistics", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// TagStats godoc
// @Summary      Statistics per tag
// @Description  Game count, average rating and owning user count for every tag, keyed by tag name.
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  map[string]stats.Stat
// @Failure      500  {object}  ErrorResponse
// @Router       /analytics/tags [get]
func (h *Handler) TagStats(c *gin.Context) {
	result, err := cached(h, c, "analytics:tags", func(ctx context.Context) (map[string]stats.Stat, error) {
		rows, err := h.stats.TagStats(ctx)
		if err != nil {
			return nil, err
		}
		return stats.BuildKeyedStats(rows), nil
	})
	if err != nil {
		h.fail(c, "Failed to fetch tag statistics", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Overview godoc
// @Summary      Catalog overview
// @Description  Totals of games, users and reviews with the average game rating.
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  stats.Overview
// @Failure      500  {object}  ErrorResponse
// @Router       /analytics/overview [get]
func (h *Handler) Overview(c *gin.Context) {
	result, err := cached(h, c, "analytics:overview", func(ctx context.Context) (stats.Overview, error) {
		var o stats.Overview
		var err error
		if o.TotalGames, err = h.stats.CountGames(ctx); err != nil {
			return o, err
		}
		if o.TotalUsers, err = h.stats.CountUsers(ctx); err != nil {
			return o, err
		}
		if o.TotalReviews, err = h.stats.CountReviews(ctx); err != nil {
			return o, err
		}
		avg, err := h.stats.AverageRating(ctx)
		if err != nil {
			return o, err
		}
		o.AvgRating = stats.BuildScalarStat(avg)
		return o, nil
	})
	if err != nil {
		h.fail(c, "Failed to fetch overview", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) countRoute(c *gin.Context, key, msg string, count func(ctx context.Context) (int64, error)) {
	result, err := cached(h, c, key, func(ctx context.Context) (CountResponse, error) {
		n, err := count(ctx)
		return CountResponse{Count: n}, err
	})
	if err != nil {
		h.fail(c, msg, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GamesCount godoc
// @Summary      Number of games
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  CountResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /analytics/games-count [get]
func (h *Handler) GamesCount(c *gin.Context) {
	h.countRoute(c, "analytics:games-count", "Failed to count games", h.stats.CountGames)
}

// UsersCount godoc
// @Summary      Number of users
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  CountResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /analytics/users-count [get]
func (h *Handler) UsersCount(c *gin.Context) {
	h.countRoute(c, "analytics:users-count", "Failed to count users", h.stats.CountUsers)
}

// ReviewsCount godoc
// @Summary      Number of reviews
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  CountResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /analytics/reviews-count [get]
func (h *Handler) ReviewsCount(c *gin.Context) {
	h.countRoute(c, "analytics:reviews-count", "Failed to count reviews", h.stats.CountReviews)
}

// AverageRating godoc
// @Summary      Average game rating
// @Description  Mean of all non-null game ratings, 0 when no game is rated.
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  AverageResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /analytics/average-rating [get]
func (h *Handler) AverageRating(c *gin.Context) {
	result, err := cached(h, c, "analytics:average-rating", func(ctx context.Context) (AverageResponse, error) {
		avg, err := h.stats.AverageRating(ctx)
		if err != nil {
			return AverageResponse{}, err
		}
		return AverageResponse{Average: stats.BuildScalarStat(avg)}, nil
	})
	if err != nil {
		h.fail(c, "Failed to fetch average rating", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// endregion
