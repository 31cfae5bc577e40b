// Package models holds the gorm models of the game library schema.
package models

// All lists every model in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&Developer{},
		&Publisher{},
		&Genre{},
		&Tag{},
		&Game{},
		&User{},
		&LibraryEntry{},
		&WishlistEntry{},
		&Review{},
	}
}
