package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gamelibrary/backend/internal/models"
)

const gameColumns = "g.id, g.name, g.description, g.release_date, g.price, g.cover_image_url, " +
	"g.average_rating, g.system_requirements, g.developer_id, g.publisher_id, " +
	"d.name AS developer_name, p.name AS publisher_name"

// GameRepository handles game queries.
type GameRepository struct {
	db *gorm.DB
}

// base is the primary game query: games joined with developer and publisher.
func (r *GameRepository) base(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("games AS g").
		Select(gameColumns).
		Joins("JOIN developers AS d ON d.id = g.developer_id").
		Joins("JOIN publishers AS p ON p.id = g.publisher_id")
}

// List returns up to limit games ordered by name.
func (r *GameRepository) List(ctx context.Context, limit int) ([]GameRow, error) {
	var rows []GameRow
	err := r.base(ctx).
		Order("g.name ASC, g.id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("querying games: %w", err)
	}
	return rows, nil
}

// TopRated returns up to limit rated games, best first.
func (r *GameRepository) TopRated(ctx context.Context, limit int) ([]GameRow, error) {
	var rows []GameRow
	err := r.base(ctx).
		Where("g.average_rating IS NOT NULL").
		Order("g.average_rating DESC, g.id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("querying top rated games: %w", err)
	}
	return rows, nil
}

// MostWishlisted returns up to limit games that appear on at least one
// wishlist, ordered by how many wishlists hold them. Ties go to the lower id.
func (r *GameRepository) MostWishlisted(ctx context.Context, limit int) ([]GameRow, error) {
	counts := r.db.Model(&models.WishlistEntry{}).
		Select("game_id, COUNT(*) AS wishlist_count").
		Group("game_id")

	var rows []GameRow
	err := r.base(ctx).
		Select(gameColumns+", wc.wishlist_count").
		Joins("JOIN (?) AS wc ON wc.game_id = g.id", counts).
		Order("wc.wishlist_count DESC, g.id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("querying most wishlisted games: %w", err)
	}
	return rows, nil
}

// WishlistTotal counts wishlist entries across all users.
func (r *GameRepository) WishlistTotal(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.WishlistEntry{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("counting wishlist entries: %w", err)
	}
	return n, nil
}

// Get returns one game by id, or ErrNotFound.
func (r *GameRepository) Get(ctx context.Context, id uint) (*GameRow, error) {
	var rows []GameRow
	err := r.base(ctx).
		Where("g.id = ?", id).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("querying game %d: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

type associationRow struct {
	GameID uint
	Name   string
}

// GenreNames returns the genre names of each game, keyed by game id.
func (r *GameRepository) GenreNames(ctx context.Context, gameIDs []uint) (map[uint][]string, error) {
	return r.associationNames(ctx, "game_genres", "genre_id", "genres", gameIDs)
}

// TagNames returns the tag names of each game, keyed by game id.
func (r *GameRepository) TagNames(ctx context.Context, gameIDs []uint) (map[uint][]string, error) {
	return r.associationNames(ctx, "game_tags", "tag_id", "tags", gameIDs)
}

// associationNames runs one lookup for all ids. Names come back in
// association id order within each game.
func (r *GameRepository) associationNames(ctx context.Context, joinTable, fk, table string, gameIDs []uint) (map[uint][]string, error) {
	result := make(map[uint][]string, len(gameIDs))
	if len(gameIDs) == 0 {
		return result, nil
	}

	var rows []associationRow
	err := r.db.WithContext(ctx).
		Table(joinTable+" AS j").
		Select("j.game_id, a.name").
		Joins("JOIN "+table+" AS a ON a.id = j."+fk).
		Where("j.game_id IN ?", gameIDs).
		Order("j.game_id, a.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", table, err)
	}

	for _, row := range rows {
		result[row.GameID] = append(result[row.GameID], row.Name)
	}
	return result, nil
}
