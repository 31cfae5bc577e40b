package assembler

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamelibrary/backend/internal/repository"
	"gamelibrary/backend/internal/testutil"
)

// mockLookup implements AssociationLookup for testing.
type mockLookup struct {
	genres    map[uint][]string
	tags      map[uint][]string
	genresErr error
	tagsErr   error

	calls []string
	ids   [][]uint
}

func (m *mockLookup) GenreNames(_ context.Context, ids []uint) (map[uint][]string, error) {
	m.calls = append(m.calls, "genres")
	m.ids = append(m.ids, ids)
	if m.genresErr != nil {
		return nil, m.genresErr
	}
	return m.genres, nil
}

func (m *mockLookup) TagNames(_ context.Context, ids []uint) (map[uint][]string, error) {
	m.calls = append(m.calls, "tags")
	m.ids = append(m.ids, ids)
	if m.tagsErr != nil {
		return nil, m.tagsErr
	}
	return m.tags, nil
}

func TestAssembleGame_GenresWithoutTags(t *testing.T) {
	lookup := &mockLookup{
		genres: map[uint][]string{7: {"RPG", "Action"}},
		tags:   map[uint][]string{},
	}
	a := New(lookup, nil)

	got := a.AssembleGame(context.Background(), repository.GameRow{ID: 7, Name: "Witcher 3"})

	assert.Equal(t, "Witcher 3", got.Name)
	assert.Equal(t, []string{"RPG", "Action"}, got.Genres)
	assert.Equal(t, []string{}, got.Tags)
	assert.False(t, got.Degraded)
	assert.Equal(t, []string{"genres", "tags"}, lookup.calls)

	data, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"genres":["RPG","Action"]`)
	assert.Contains(t, string(data), `"tags":[]`)
	assert.Contains(t, string(data), `"name":"Witcher 3"`)
	assert.NotContains(t, string(data), "degraded")
}

func TestAssembleGames_PreservesOrderAndBatches(t *testing.T) {
	lookup := &mockLookup{
		genres: map[uint][]string{1: {"Strategy"}, 3: {"RPG"}},
		tags:   map[uint][]string{2: {"Co-op"}},
	}
	a := New(lookup, nil)
	rows := []repository.GameRow{{ID: 3}, {ID: 1}, {ID: 2}, {ID: 1}}

	got := a.AssembleGames(context.Background(), rows, 0)

	require.Len(t, got, 4)
	assert.Equal(t, []uint{3, 1, 2, 1}, []uint{got[0].ID, got[1].ID, got[2].ID, got[3].ID})
	assert.Equal(t, []string{"RPG"}, got[0].Genres)
	assert.Equal(t, []string{"Co-op"}, got[2].Tags)
	assert.Equal(t, got[1].Genres, got[3].Genres)

	// one lookup per association type, for every id
	assert.Equal(t, []string{"genres", "tags"}, lookup.calls)
	assert.Equal(t, []uint{3, 1, 2, 1}, lookup.ids[0])
}

func TestAssembleGames_Limit(t *testing.T) {
	lookup := &mockLookup{}
	a := New(lookup, nil)
	rows := []repository.GameRow{{ID: 1}, {ID: 2}, {ID: 3}}

	got := a.AssembleGames(context.Background(), rows, 2)

	require.Len(t, got, 2)
	assert.Equal(t, uint(1), got[0].ID)
	assert.Equal(t, uint(2), got[1].ID)
	assert.Equal(t, []uint{1, 2}, lookup.ids[0])
}

func TestAssembleGames_Empty(t *testing.T) {
	lookup := &mockLookup{}
	a := New(lookup, nil)

	got := a.AssembleGames(context.Background(), nil, 10)

	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Empty(t, lookup.calls)
}

func TestAssembleGames_TagFailureDegrades(t *testing.T) {
	lookup := &mockLookup{
		genres:  map[uint][]string{1: {"RPG"}},
		tagsErr: errors.New("connection reset"),
	}
	a := New(lookup, nil)

	got := a.AssembleGames(context.Background(), []repository.GameRow{{ID: 1}, {ID: 2}}, 0)

	require.Len(t, got, 2)
	assert.Equal(t, []string{"RPG"}, got[0].Genres)
	assert.Equal(t, []string{}, got[0].Tags)
	assert.True(t, got[0].Degraded)
	assert.True(t, got[1].Degraded)
}

func TestAssembleGames_GenreFailureStillFetchesTags(t *testing.T) {
	lookup := &mockLookup{
		genresErr: errors.New("timeout"),
		tags:      map[uint][]string{1: {"Indie"}},
	}
	a := New(lookup, nil)

	got := a.AssembleGame(context.Background(), repository.GameRow{ID: 1})

	assert.Equal(t, []string{}, got.Genres)
	assert.Equal(t, []string{"Indie"}, got.Tags)
	assert.True(t, got.Degraded)
	assert.Equal(t, []string{"genres", "tags"}, lookup.calls)
}

func TestAssembleGames_WithRepository(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	games := repository.New(db).Games()
	a := New(games, nil)

	row, err := games.Get(context.Background(), f.Witcher.ID)
	require.NoError(t, err)

	got := a.AssembleGame(context.Background(), *row)
	assert.Equal(t, []string{"RPG", "Action"}, got.Genres)
	assert.Equal(t, []string{"Open World", "Story Rich"}, got.Tags)

	rows, err := games.List(context.Background(), 20)
	require.NoError(t, err)
	list := a.AssembleGames(context.Background(), rows, 0)
	require.Len(t, list, 3)
	assert.Equal(t, "Alpha Centauri", list[0].Name)
	assert.Equal(t, []string{"Strategy"}, list[0].Genres)
	assert.Equal(t, []string{}, list[0].Tags)
}
