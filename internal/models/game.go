package models

import "time"

// Game represents a game in the catalog.
type Game struct {
	ID                 uint   `gorm:"primaryKey"`
	Name               string `gorm:"size:255;not null;index"`
	Description        string
	ReleaseDate        *time.Time
	Price              float64 `gorm:"not null;default:0"`
	CoverImageURL      string  `gorm:"size:512"`
	AverageRating      *float64
	SystemRequirements string
	DeveloperID        uint `gorm:"not null;index"`
	PublisherID        uint `gorm:"not null;index"`

	Developer Developer `gorm:"foreignKey:DeveloperID"`
	Publisher Publisher `gorm:"foreignKey:PublisherID"`
	Genres    []*Genre  `gorm:"many2many:game_genres;"`
	Tags      []*Tag    `gorm:"many2many:game_tags;"`
}

// Developer is the studio that built a game.
type Developer struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:255;not null"`
}

// Publisher is the company that released a game.
type Publisher struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:255;not null"`
}

// Genre is a broad game category (e.g., "RPG", "Strategy").
type Genre struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100;uniqueIndex;not null"`
}
