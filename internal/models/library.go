package models

import "time"

// LibraryEntry records that a user owns a game.
type LibraryEntry struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       uint      `gorm:"not null;uniqueIndex:idx_library_user_game"`
	GameID       uint      `gorm:"not null;uniqueIndex:idx_library_user_game"`
	AcquiredAt   time.Time `gorm:"not null"`
	HoursPlayed  float64   `gorm:"not null;default:0"`
	LastPlayedAt *time.Time

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Game Game `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;"`
}

// WishlistEntry records that a user wants a game.
type WishlistEntry struct {
	ID      uint      `gorm:"primaryKey"`
	UserID  uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_game"`
	GameID  uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_game;index"`
	AddedAt time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Game Game `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;"`
}
