// Package testutil provides an in-memory game library database for tests.
package testutil

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gamelibrary/backend/internal/database"
	"gamelibrary/backend/internal/models"
)

// NewDB returns a migrated, empty in-memory SQLite database. The pool is
// pinned to one connection since every sqlite :memory: connection is a
// separate database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// Date is a UTC midnight timestamp.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// Fixture is the sample catalog created by Seed.
//
//	games:    Witcher 3 (5.0; RPG, Action; Open World, Story Rich)
//	          Portal 2 (4.0; Action; Co-op)
//	          Alpha Centauri (unrated; Strategy; no tags)
//	users:    alice, bob
//	library:  alice owns all three, bob owns Witcher 3
//	wishlist: Portal 2 twice, Alpha Centauri once
//	reviews:  two for Witcher 3, one for Portal 2
type Fixture struct {
	Witcher, Portal, Alpha models.Game
	Alice, Bob             models.User
	RPG, Action, Strategy  models.Genre
	OpenWorld, StoryRich   models.Tag
	Coop                   models.Tag
}

// Seed fills db with the sample catalog.
func Seed(t *testing.T, db *gorm.DB) *Fixture {
	t.Helper()
	f := &Fixture{}

	create := func(v any) {
		t.Helper()
		if err := db.Create(v).Error; err != nil {
			t.Fatalf("seed %T: %v", v, err)
		}
	}

	valve := models.Developer{Name: "Valve"}
	cdpr := models.Developer{Name: "CD Projekt Red"}
	create(&valve)
	create(&cdpr)
	valvePub := models.Publisher{Name: "Valve"}
	cdpPub := models.Publisher{Name: "CD Projekt"}
	create(&valvePub)
	create(&cdpPub)

	f.RPG = models.Genre{Name: "RPG"}
	f.Action = models.Genre{Name: "Action"}
	f.Strategy = models.Genre{Name: "Strategy"}
	create(&f.RPG)
	create(&f.Action)
	create(&f.Strategy)

	f.OpenWorld = models.Tag{Name: "Open World"}
	f.StoryRich = models.Tag{Name: "Story Rich"}
	f.Coop = models.Tag{Name: "Co-op"}
	create(&f.OpenWorld)
	create(&f.StoryRich)
	create(&f.Coop)

	f.Witcher = models.Game{
		Name:          "Witcher 3",
		Description:   "Monster hunting.",
		ReleaseDate:   Ptr(Date(2015, time.May, 19)),
		Price:         29.99,
		CoverImageURL: "https://img.example/w3.png",
		AverageRating: Ptr(5.0),
		DeveloperID:   cdpr.ID,
		PublisherID:   cdpPub.ID,
		Genres:        []*models.Genre{&f.RPG, &f.Action},
		Tags:          []*models.Tag{&f.OpenWorld, &f.StoryRich},
	}
	f.Portal = models.Game{
		Name:          "Portal 2",
		Price:         9.99,
		CoverImageURL: "https://img.example/p2.png",
		AverageRating: Ptr(4.0),
		DeveloperID:   valve.ID,
		PublisherID:   valvePub.ID,
		Genres:        []*models.Genre{&f.Action},
		Tags:          []*models.Tag{&f.Coop},
	}
	f.Alpha = models.Game{
		Name:        "Alpha Centauri",
		Price:       5.99,
		DeveloperID: valve.ID,
		PublisherID: valvePub.ID,
		Genres:      []*models.Genre{&f.Strategy},
	}
	create(&f.Witcher)
	create(&f.Portal)
	create(&f.Alpha)

	f.Alice = models.User{Username: "alice", Email: "alice@example.com", ProfileImageURL: "https://img.example/alice.png"}
	f.Bob = models.User{Username: "bob", Email: "bob@example.com"}
	create(&f.Alice)
	create(&f.Bob)

	create(&[]models.LibraryEntry{
		{UserID: f.Alice.ID, GameID: f.Witcher.ID, AcquiredAt: Date(2023, time.January, 1), HoursPlayed: 120, LastPlayedAt: Ptr(Date(2024, time.May, 1))},
		{UserID: f.Alice.ID, GameID: f.Portal.ID, AcquiredAt: Date(2024, time.February, 1)},
		{UserID: f.Alice.ID, GameID: f.Alpha.ID, AcquiredAt: Date(2022, time.January, 1), HoursPlayed: 3.5, LastPlayedAt: Ptr(Date(2024, time.June, 1))},
		{UserID: f.Bob.ID, GameID: f.Witcher.ID, AcquiredAt: Date(2023, time.March, 1), HoursPlayed: 10, LastPlayedAt: Ptr(Date(2023, time.April, 1))},
	})

	create(&[]models.WishlistEntry{
		{UserID: f.Bob.ID, GameID: f.Portal.ID, AddedAt: Date(2024, time.March, 1)},
		{UserID: f.Bob.ID, GameID: f.Alpha.ID, AddedAt: Date(2024, time.April, 1)},
		{UserID: f.Alice.ID, GameID: f.Portal.ID, AddedAt: Date(2024, time.January, 1)},
	})

	create(&[]models.Review{
		{UserID: f.Alice.ID, GameID: f.Witcher.ID, Rating: 5, Title: "Masterpiece", Body: "Gwent alone is worth it.", ReviewedAt: Date(2024, time.January, 10)},
		{UserID: f.Bob.ID, GameID: f.Witcher.ID, Rating: 4, Title: "Long", Body: "Great but long.", ReviewedAt: Date(2024, time.February, 10)},
		{UserID: f.Alice.ID, GameID: f.Portal.ID, Rating: 5, Title: "Clever", Body: "Cake included.", ReviewedAt: Date(2024, time.March, 10)},
	})

	return f
}
