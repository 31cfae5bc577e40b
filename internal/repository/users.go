package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gamelibrary/backend/internal/models"
)

// UserRepository handles user, library and wishlist queries.
type UserRepository struct {
	db *gorm.DB
}

// List returns every user.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}
	return users, nil
}

// Get returns one user by id, or ErrNotFound.
func (r *UserRepository) Get(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying user %d: %w", id, err)
	}
	return &user, nil
}

// Library returns the games a user owns, most recently played first.
// Never-played entries come last, newest acquisition first.
func (r *UserRepository) Library(ctx context.Context, userID uint) ([]LibraryRow, error) {
	rows := []LibraryRow{}
	err := r.db.WithContext(ctx).
		Table("library_entries AS l").
		Select("l.id, l.user_id, l.game_id, l.acquired_at, l.hours_played, l.last_played_at, " +
			"g.name AS game_name, g.cover_image_url").
		Joins("JOIN games AS g ON g.id = l.game_id").
		Where("l.user_id = ?", userID).
		Order("CASE WHEN l.last_played_at IS NULL THEN 1 ELSE 0 END, l.last_played_at DESC, l.acquired_at DESC, l.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("querying library of user %d: %w", userID, err)
	}
	return rows, nil
}

// Wishlist returns the games a user wants, newest first.
func (r *UserRepository) Wishlist(ctx context.Context, userID uint) ([]WishlistRow, error) {
	rows := []WishlistRow{}
	err := r.db.WithContext(ctx).
		Table("wishlist_entries AS w").
		Select("w.id, w.user_id, w.game_id, w.added_at, g.name AS game_name, g.cover_image_url, g.price").
		Joins("JOIN games AS g ON g.id = w.game_id").
		Where("w.user_id = ?", userID).
		Order("w.added_at DESC, w.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("querying wishlist of user %d: %w", userID, err)
	}
	return rows, nil
}
