package models

import "time"

// User represents a user in the system.
type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Username        string    `gorm:"size:255;uniqueIndex;not null" json:"username"`
	Email           string    `gorm:"size:255" json:"email"`
	ProfileImageURL string    `gorm:"size:512" json:"profileImageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
}
