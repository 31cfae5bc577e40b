// Package repository runs the read queries of the game library against the
// relational store.
package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// Repository groups the per-entity repositories over one connection pool.
type Repository struct {
	db *gorm.DB
}

// New creates a Repository backed by db.
func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Games returns a GameRepository.
func (r *Repository) Games() *GameRepository {
	return &GameRepository{db: r.db}
}

// Users returns a UserRepository.
func (r *Repository) Users() *UserRepository {
	return &UserRepository{db: r.db}
}

// Reviews returns a ReviewRepository.
func (r *Repository) Reviews() *ReviewRepository {
	return &ReviewRepository{db: r.db}
}

// Stats returns a StatsRepository.
func (r *Repository) Stats() *StatsRepository {
	return &StatsRepository{db: r.db}
}
