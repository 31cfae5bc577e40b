package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamelibrary/backend/internal/models"
	"gamelibrary/backend/internal/testutil"
)

func seeded(t *testing.T) (*Repository, *testutil.Fixture) {
	t.Helper()
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	return New(db), f
}

func names(rows []GameRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func TestGames_List(t *testing.T) {
	repo, _ := seeded(t)
	ctx := context.Background()

	rows, err := repo.Games().List(ctx, 20)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha Centauri", "Portal 2", "Witcher 3"}, names(rows))

	rows, err = repo.Games().List(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha Centauri", "Portal 2"}, names(rows))
}

func TestGames_GetJoinsDeveloperAndPublisher(t *testing.T) {
	repo, f := seeded(t)

	row, err := repo.Games().Get(context.Background(), f.Witcher.ID)
	require.NoError(t, err)
	assert.Equal(t, "Witcher 3", row.Name)
	assert.Equal(t, "CD Projekt Red", row.DeveloperName)
	assert.Equal(t, "CD Projekt", row.PublisherName)
	require.NotNil(t, row.AverageRating)
	assert.Equal(t, 5.0, *row.AverageRating)
	require.NotNil(t, row.ReleaseDate)
	assert.Equal(t, 2015, row.ReleaseDate.Year())
	assert.Nil(t, row.WishlistCount)
}

func TestGames_GetUnknown(t *testing.T) {
	repo, _ := seeded(t)

	_, err := repo.Games().Get(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGames_TopRated(t *testing.T) {
	repo, _ := seeded(t)

	rows, err := repo.Games().TopRated(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"Witcher 3", "Portal 2"}, names(rows))
	for _, r := range rows {
		assert.NotNil(t, r.AverageRating)
	}

	rows, err = repo.Games().TopRated(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Witcher 3"}, names(rows))
}

func TestGames_MostWishlisted(t *testing.T) {
	repo, f := seeded(t)

	rows, err := repo.Games().MostWishlisted(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, f.Portal.ID, rows[0].ID)
	require.NotNil(t, rows[0].WishlistCount)
	assert.Equal(t, int64(2), *rows[0].WishlistCount)
	assert.Equal(t, "Valve", rows[0].DeveloperName)

	assert.Equal(t, f.Alpha.ID, rows[1].ID)
	assert.Equal(t, int64(1), *rows[1].WishlistCount)
}

func TestGames_MostWishlistedTiesByID(t *testing.T) {
	repo, f := seeded(t)

	// Give Witcher 3 one entry so it ties with Alpha Centauri.
	require.NoError(t, repo.db.Create(&models.WishlistEntry{
		UserID: f.Alice.ID, GameID: f.Witcher.ID, AddedAt: testutil.Date(2024, 5, 1),
	}).Error)

	rows, err := repo.Games().MostWishlisted(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Portal 2", "Witcher 3", "Alpha Centauri"}, names(rows))
}

func TestGames_MostWishlistedEmpty(t *testing.T) {
	repo := New(testutil.NewDB(t))

	total, err := repo.Games().WishlistTotal(context.Background())
	require.NoError(t, err)
	assert.Zero(t, total)

	rows, err := repo.Games().MostWishlisted(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestGames_AssociationNames(t *testing.T) {
	repo, f := seeded(t)
	ctx := context.Background()
	ids := []uint{f.Witcher.ID, f.Portal.ID, f.Alpha.ID}

	genres, err := repo.Games().GenreNames(ctx, ids)
	require.NoError(t, err)
	assert.Equal(t, []string{"RPG", "Action"}, genres[f.Witcher.ID])
	assert.Equal(t, []string{"Action"}, genres[f.Portal.ID])
	assert.Equal(t, []string{"Strategy"}, genres[f.Alpha.ID])

	tags, err := repo.Games().TagNames(ctx, ids)
	require.NoError(t, err)
	assert.Equal(t, []string{"Open World", "Story Rich"}, tags[f.Witcher.ID])
	assert.Equal(t, []string{"Co-op"}, tags[f.Portal.ID])
	assert.NotContains(t, tags, f.Alpha.ID)
}

func TestGames_AssociationNamesNoIDs(t *testing.T) {
	repo, _ := seeded(t)

	got, err := repo.Games().GenreNames(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGames_CanceledContext(t *testing.T) {
	repo, _ := seeded(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Games().List(ctx, 20)
	assert.Error(t, err)
}

func TestUsers_ListAndGet(t *testing.T) {
	repo, f := seeded(t)
	ctx := context.Background()

	users, err := repo.Users().List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)

	u, err := repo.Users().Get(ctx, f.Bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", u.Email)

	_, err = repo.Users().Get(ctx, 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUsers_LibraryOrdering(t *testing.T) {
	repo, f := seeded(t)

	rows, err := repo.Users().Library(context.Background(), f.Alice.ID)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Alpha Centauri", rows[0].GameName)
	assert.Equal(t, "Witcher 3", rows[1].GameName)
	assert.Equal(t, "https://img.example/w3.png", rows[1].CoverImageURL)
	assert.Equal(t, 120.0, rows[1].HoursPlayed)
	assert.Equal(t, "Portal 2", rows[2].GameName)
	assert.Nil(t, rows[2].LastPlayedAt)
}

func TestUsers_LibraryUnknownUser(t *testing.T) {
	repo, _ := seeded(t)

	rows, err := repo.Users().Library(context.Background(), 404)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestUsers_Wishlist(t *testing.T) {
	repo, f := seeded(t)

	rows, err := repo.Users().Wishlist(context.Background(), f.Bob.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Alpha Centauri", rows[0].GameName)
	assert.Equal(t, 5.99, rows[0].Price)
	assert.Equal(t, "Portal 2", rows[1].GameName)
	assert.Equal(t, 9.99, rows[1].Price)
}

func TestReviews_ForGame(t *testing.T) {
	repo, f := seeded(t)

	rows, err := repo.Reviews().ForGame(context.Background(), f.Witcher.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "bob", rows[0].Username)
	assert.Equal(t, "alice", rows[1].Username)
	assert.Equal(t, "https://img.example/alice.png", rows[1].ProfileImageURL)
	assert.Empty(t, rows[0].GameName)
}

func TestReviews_ForUser(t *testing.T) {
	repo, f := seeded(t)

	rows, err := repo.Reviews().ForUser(context.Background(), f.Alice.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Portal 2", rows[0].GameName)
	assert.Equal(t, "Witcher 3", rows[1].GameName)
	assert.Equal(t, "alice", rows[0].Username)
}

func TestStats_Genres(t *testing.T) {
	repo, _ := seeded(t)

	rows, err := repo.Stats().GenreStats(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Action", rows[0].Name)
	assert.Equal(t, int64(2), rows[0].GameCount)
	require.NotNil(t, rows[0].AvgRating)
	assert.InDelta(t, 4.5, *rows[0].AvgRating, 1e-9)

	byName := map[string]int{}
	for i, r := range rows {
		byName[r.Name] = i
	}
	assert.Nil(t, rows[byName["Strategy"]].AvgRating)
	assert.Nil(t, rows[byName["RPG"]].UserCount)
}

func TestStats_Tags(t *testing.T) {
	repo, _ := seeded(t)

	rows, err := repo.Stats().TagStats(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	got := map[string][2]int64{}
	for _, r := range rows {
		require.NotNil(t, r.UserCount, r.Name)
		got[r.Name] = [2]int64{r.GameCount, *r.UserCount}
	}
	assert.Equal(t, [2]int64{1, 2}, got["Open World"])
	assert.Equal(t, [2]int64{1, 2}, got["Story Rich"])
	assert.Equal(t, [2]int64{1, 1}, got["Co-op"])

	for _, r := range rows {
		if r.Name == "Open World" {
			// two owners must not double the game in the average
			assert.InDelta(t, 5.0, *r.AvgRating, 1e-9)
		}
	}
}

func TestStats_CountsAndAverage(t *testing.T) {
	repo, _ := seeded(t)
	ctx := context.Background()

	games, err := repo.Stats().CountGames(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), games)

	users, err := repo.Stats().CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), users)

	reviews, err := repo.Stats().CountReviews(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), reviews)

	avg, err := repo.Stats().AverageRating(ctx)
	require.NoError(t, err)
	require.NotNil(t, avg)
	assert.InDelta(t, 4.5, *avg, 1e-9)
}

func TestStats_AverageRatingNoRatings(t *testing.T) {
	repo := New(testutil.NewDB(t))

	avg, err := repo.Stats().AverageRating(context.Background())
	require.NoError(t, err)
	assert.Nil(t, avg)
}
