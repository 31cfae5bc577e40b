package models

// Tag represents a game tag (e.g., "Open World", "Co-op").
type Tag struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100;uniqueIndex;not null"`
}
