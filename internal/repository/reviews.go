package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

const reviewColumns = "r.id, r.user_id, r.game_id, r.rating, r.title, r.body, r.reviewed_at, " +
	"u.username, u.profile_image_url"

// ReviewRepository handles review queries.
type ReviewRepository struct {
	db *gorm.DB
}

func (r *ReviewRepository) base(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("reviews AS r").
		Joins("JOIN users AS u ON u.id = r.user_id").
		Order("r.reviewed_at DESC, r.id DESC")
}

// ForGame returns the reviews of a game, newest first.
func (r *ReviewRepository) ForGame(ctx context.Context, gameID uint) ([]ReviewRow, error) {
	rows := []ReviewRow{}
	err := r.base(ctx).
		Select(reviewColumns).
		Where("r.game_id = ?", gameID).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("querying reviews of game %d: %w", gameID, err)
	}
	return rows, nil
}

// ForUser returns the reviews a user wrote, newest first, with game names.
func (r *ReviewRepository) ForUser(ctx context.Context, userID uint) ([]ReviewRow, error) {
	rows := []ReviewRow{}
	err := r.base(ctx).
		Select(reviewColumns+", g.name AS game_name").
		Joins("JOIN games AS g ON g.id = r.game_id").
		Where("r.user_id = ?", userID).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("querying reviews of user %d: %w", userID, err)
	}
	return rows, nil
}
