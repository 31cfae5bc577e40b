package models

import "time"

// Review is a user's rating and write-up of a game.
type Review struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"not null;index"`
	GameID     uint      `gorm:"not null;index"`
	Rating     int       `gorm:"not null"`
	Title      string    `gorm:"size:255"`
	Body       string   
	ReviewedAt time.Time `gorm:"not null;index"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Game Game `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;"`
}
