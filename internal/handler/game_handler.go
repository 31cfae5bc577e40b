package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gamelibrary/backend/internal/assembler"
	"gamelibrary/backend/internal/repository"
)

// region --- Handlers ---

// ListGames godoc
// @Summary      List games
// @Description  Returns the first games by name with their genres and tags.
// @Tags         games
// @Produce      json
// @Success      200  {array}   assembler.CompositeGame
// @Failure      500  {object}  ErrorResponse
// @Router       /games [get]
func (h *Handler) ListGames(c *gin.Context) {
	ctx := c.Request.Context()

	rows, err := h.games.List(ctx, h.opts.GamesListLimit)
	if err != nil {
		h.fail(c, "Failed to fetch games", err)
		return
	}

	c.JSON(http.StatusOK, h.assembler.AssembleGames(ctx, rows, h.opts.GamesListLimit))
}

// TopRatedGames godoc
// @Summary      Top rated games
// @Description  Returns rated games ordered by average rating, highest first.
// @Tags         games
// @Produce      json
// @Param        limit  query     int  false  "Max results (default 10, max 100)"
// @Success      200    {array}   assembler.CompositeGame
// @Failure      500    {object}  ErrorResponse
// @Router       /games/top-rated [get]
func (h *Handler) TopRatedGames(c *gin.Context) {
	ctx := c.Request.Context()
	limit := parseLimit(c)

	rows, err := h.games.TopRated(ctx, limit)
	if err != nil {
		h.fail(c, "Failed to fetch top rated games", err)
		return
	}

	c.JSON(http.StatusOK, h.assembler.AssembleGames(ctx, rows, limit))
}

// MostWishlistedGames godoc
// @Summary      Most wishlisted games
// @Description  Returns games ordered by how many users wishlisted them. Empty when nobody wishlisted anything.
// @Tags         games
// @Produce      json
// @Param        limit  query     int  false  "Max results (default 10, max 100)"
// @Success      200    {array}   assembler.CompositeGame
// @Failure      500    {object}  ErrorResponse
// @Router       /games/most-wishlisted [get]
func (h *Handler) MostWishlistedGames(c *gin.Context) {
	ctx := c.Request.Context()
	limit := parseLimit(c)
	log := h.logger(c)

	total, err := h.games.WishlistTotal(ctx)
	if err != nil {
		h.fail(c, "Failed to fetch most wishlisted games", err)
		return
	}
	if total == 0 {
		log.Debug("no wishlist entries, returning empty ranking")
		c.JSON(http.StatusOK, []assembler.CompositeGame{})
		return
	}

	rows, err := h.games.MostWishlisted(ctx, limit)
	if err != nil {
		h.fail(c, "Failed to fetch most wishlisted games", err)
		return
	}
	log.Debug("most wishlisted ranked", zap.Int("limit", limit), zap.Int("games", len(rows)), zap.Int64("wishlist_entries", total))

	c.JSON(http.StatusOK, h.assembler.AssembleGames(ctx, rows, limit))
}

// GetGame godoc
// @Summary      Get a game
// @Description  Returns one game with its developer, publisher, genres and tags.
// @Tags         games
// @Produce      json
// @Param        id   path      int  true  "Game ID"
// @Success      200  {object}  assembler.CompositeGame
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /games/{id} [get]
func (h *Handler) GetGame(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	row, err := h.games.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.fail(c, "Game not found", err)
			return
		}
		h.fail(c, "Failed to fetch game", err)
		return
	}

	c.JSON(http.StatusOK, h.assembler.AssembleGame(ctx, *row))
}

// GameReviews godoc
// @Summary      Reviews of a game
// @Description  Returns the reviews of a game with their authors, newest first.
// @Tags         games
// @Produce      json
// @Param        id   path      int  true  "Game ID"
// @Success      200  {array}   repository.ReviewRow
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /games/{id}/reviews [get]
func (h *Handler) GameReviews(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	reviews, err := h.reviews.ForGame(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "Failed to fetch game reviews", err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// endregion
