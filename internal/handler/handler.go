package handler

import (
	"errors"
	"net/http"
	"runtime/debug"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gamelibrary/backend/internal/assembler"
	"gamelibrary/backend/internal/cache"
	"gamelibrary/backend/internal/middleware"
	"gamelibrary/backend/internal/repository"
)

// ErrorResponse is the error body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error" example:"Game not found"`
	Details string `json:"details,omitempty" example:"pinging database: connection refused"`
	Stack   string `json:"stack,omitempty"`
}

// Options tunes the handlers.
type Options struct {
	// GamesListLimit caps GET /games.
	GamesListLimit int
	// Development adds stack traces to 500 responses.
	Development bool
}

// Handler serves the read-only game library API.
type Handler struct {
	games     *repository.GameRepository
	users     *repository.UserRepository
	reviews   *repository.ReviewRepository
	stats     *repository.StatsRepository
	assembler *assembler.Assembler
	cache     cache.Cache
	log       *zap.Logger
	opts      Options
}

// New creates a Handler. A nil cache disables caching.
func New(repo *repository.Repository, c cache.Cache, log *zap.Logger, opts Options) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	if c == nil {
		c = cache.Noop{}
	}
	if opts.GamesListLimit < 1 {
		opts.GamesListLimit = 20
	}
	games := repo.Games()
	return &Handler{
		games:     games,
		users:     repo.Users(),
		reviews:   repo.Reviews(),
		stats:     repo.Stats(),
		assembler: assembler.New(games, log),
		cache:     c,
		log:       log,
		opts:      opts,
	}
}

// Root godoc
// @Summary      Liveness check
// @Produce      plain
// @Success      200 {string} string "Game Library API is running"
// @Router       / [get]
func (h *Handler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Game Library API is running")
}

func (h *Handler) logger(c *gin.Context) *zap.Logger {
	return middleware.LoggerFrom(c, h.log)
}

// fail logs err and answers 500, or 404 when err is a not-found error.
func (h *Handler) fail(c *gin.Context, msg string, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: msg})
		return
	}

	h.logger(c).Error(msg, zap.Error(err))
	resp := ErrorResponse{Error: msg, Details: err.Error()}
	if h.opts.Development {
		resp.Stack = string(debug.Stack())
	}
	c.JSON(http.StatusInternalServerError, resp)
}

// parseID reads the :id path parameter. It answers 400 and returns false
// when the id is not a positive integer.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid ID"})
		return 0, false
	}
	return uint(id), true
}
