package repository

import "time"

// GameRow is a game joined with its developer and publisher names.
type GameRow struct {
	ID                 uint       `json:"id"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	ReleaseDate        *time.Time `json:"releaseDate"`
	Price              float64    `json:"price"`
	CoverImageURL      string     `json:"coverImageUrl"`
	AverageRating      *float64   `json:"averageRating"`
	SystemRequirements string     `json:"systemRequirements"`
	DeveloperID        uint       `json:"developerId"`
	PublisherID        uint       `json:"publisherId"`
	DeveloperName      string     `json:"developerName"`
	PublisherName      string     `json:"publisherName"`

	// Only set by the most-wishlisted ranking.
	WishlistCount *int64 `json:"wishlistCount,omitempty"`
}

// LibraryRow is a library entry joined with the owned game.
type LibraryRow struct {
	ID            uint       `json:"id"`
	UserID        uint       `json:"userId"`
	GameID        uint       `json:"gameId"`
	AcquiredAt    time.Time  `json:"acquiredAt"`
	HoursPlayed   float64    `json:"hoursPlayed"`
	LastPlayedAt  *time.Time `json:"lastPlayedAt"`
	GameName      string     `json:"gameName"`
	CoverImageURL string     `json:"coverImageUrl"`
}

// WishlistRow is a wishlist entry joined with the wanted game.
type WishlistRow struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"userId"`
	GameID        uint      `json:"gameId"`
	AddedAt       time.Time `json:"addedAt"`
	GameName      string    `json:"gameName"`
	CoverImageURL string    `json:"coverImageUrl"`
	Price         float64   `json:"price"`
}

// ReviewRow is a review joined with its author's display fields.
type ReviewRow struct {
	ID              uint      `json:"id"`
	UserID          uint      `json:"userId"`
	GameID          uint      `json:"gameId"`
	Rating          int       `json:"rating"`
	Title           string    `json:"title"`
	Body            string    `json:"body"`
	ReviewedAt      time.Time `json:"reviewedAt"`
	Username        string    `json:"username"`
	ProfileImageURL string    `json:"profileImageUrl"`

	// Only set for reviews listed by author.
	GameName string `json:"gameName,omitempty"`
}
