package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gamelibrary/backend/internal/models"
	"gamelibrary/backend/internal/stats"
)

// StatsRepository runs the aggregate queries behind the analytics routes.
type StatsRepository struct {
	db *gorm.DB
}

// GenreStats groups games by genre, largest genre first.
func (r *StatsRepository) GenreStats(ctx context.Context) ([]stats.GroupRow, error) {
	var rows []stats.GroupRow
	err := r.db.WithContext(ctx).
		Table("genres AS ge").
		Select("ge.name AS name, COUNT(DISTINCT gg.game_id) AS game_count, " +
			"AVG(CAST(g.average_rating AS FLOAT)) AS avg_rating").
		Joins("JOIN game_genres AS gg ON gg.genre_id = ge.id").
		Joins("JOIN games AS g ON g.id = gg.game_id").
		Group("ge.id, ge.name").
		Order("COUNT(DISTINCT gg.game_id) DESC, ge.name").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("querying genre stats: %w", err)
	}
	return rows, nil
}

// TagStats groups games by tag, largest tag first. The user count is the
// number of distinct users owning at least one game with the tag. It is a
// subquery so library rows do not skew the rating average.
func (r *StatsRepository) TagStats(ctx context.Context) ([]stats.GroupRow, error) {
	var rows []stats.GroupRow
	err := r.db.WithContext(ctx).
		Table("tags AS t").
		Select("t.name AS name, COUNT(DISTINCT gt.game_id) AS game_count, " +
			"AVG(CAST(g.average_rating AS FLOAT)) AS avg_rating, " +
			"(SELECT COUNT(DISTINCT l.user_id) FROM library_entries AS l " +
			"JOIN game_tags AS lt ON lt.game_id = l.game_id WHERE lt.tag_id = t.id) AS user_count").
		Joins("JOIN game_tags AS gt ON gt.tag_id = t.id").
		Joins("JOIN games AS g ON g.id = gt.game_id").
		Group("t.id, t.name").
		Order("COUNT(DISTINCT gt.game_id) DESC, t.name").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("querying tag stats: %w", err)
	}
	return rows, nil
}

type scalarRow struct {
	Value *float64
}

func (r *StatsRepository) count(ctx context.Context, model any, what string) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(model).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("counting %s: %w", what, err)
	}
	return n, nil
}

// CountGames counts all games.
func (r *StatsRepository) CountGames(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.Game{}, "games")
}

// CountUsers counts all users.
func (r *StatsRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.User{}, "users")
}

// CountReviews counts all reviews.
func (r *StatsRepository) CountReviews(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.Review{}, "reviews")
}

// AverageRating averages the non-null game ratings. It returns nil when no
// game is rated.
func (r *StatsRepository) AverageRating(ctx context.Context) (*float64, error) {
	var row scalarRow
	err := r.db.WithContext(ctx).
		Model(&models.Game{}).
		Select("AVG(CAST(average_rating AS FLOAT)) AS value").
		Where("average_rating IS NOT NULL").
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("averaging ratings: %w", err)
	}
	return row.Value, nil
}
