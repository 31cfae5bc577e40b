package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gamelibrary/backend/internal/repository"
)

// region --- Handlers ---

// ListUsers godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}   models.User
// @Failure      500  {object}  ErrorResponse
// @Router       /users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.fail(c, "Failed to fetch users", err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUser godoc
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  models.User
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /users/{id} [get]
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.fail(c, "User not found", err)
			return
		}
		h.fail(c, "Failed to fetch user", err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UserLibrary godoc
// @Summary      A user's library
// @Description  Returns the games a user owns, most recently played first. Never-played games come last.
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {array}   repository.LibraryRow
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /users/{id}/library [get]
func (h *Handler) UserLibrary(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	entries, err := h.users.Library(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "Failed to fetch user library", err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// UserWishlist godoc
// @Summary      A user's wishlist
// @Description  Returns the games a user wants, most recently added first.
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {array}   repository.WishlistRow
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /users/{id}/wishlist [get]
func (h *Handler) UserWishlist(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	entries, err := h.users.Wishlist(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "Failed to fetch user wishlist", err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// UserReviews godoc
// @Summary      Reviews written by a user
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {array}   repository.ReviewRow
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /users/{id}/reviews [get]
func (h *Handler) UserReviews(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	reviews, err := h.reviews.ForUser(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "Failed to fetch user reviews", err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// endregion
