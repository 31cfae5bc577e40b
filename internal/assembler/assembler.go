// Package assembler merges game rows with their genre and tag names.
package assembler

import (
	"context"

	"go.uber.org/zap"

	"gamelibrary/backend/internal/repository"
)

// AssociationLookup fetches one-to-many association names for a set of
// games, keyed by game id. Within a game, names keep the lookup's order.
type AssociationLookup interface {
	GenreNames(ctx context.Context, gameIDs []uint) (map[uint][]string, error)
	TagNames(ctx context.Context, gameIDs []uint) (map[uint][]string, error)
}

// CompositeGame is a game row with its genres and tags. Degraded is set when
// an association lookup failed and one of the lists was left empty.
type CompositeGame struct {
	repository.GameRow
	Genres   []string `json:"genres"`
	Tags     []string `json:"tags"`
	Degraded bool     `json:"degraded,omitempty"`
}

// Assembler builds CompositeGames.
type Assembler struct {
	lookup AssociationLookup
	log    *zap.Logger
}

// New creates an Assembler.
func New(lookup AssociationLookup, log *zap.Logger) *Assembler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Assembler{lookup: lookup, log: log}
}

// AssembleGame attaches genres and tags to a single game.
func (a *Assembler) AssembleGame(ctx context.Context, row repository.GameRow) CompositeGame {
	return a.AssembleGames(ctx, []repository.GameRow{row}, 0)[0]
}

// AssembleGames attaches genres and tags to each row, keeping input order.
// With limit > 0 only the first limit rows are assembled and returned.
// Each association type is fetched with one query for all rows; genres are
// fetched before tags.
func (a *Assembler) AssembleGames(ctx context.Context, rows []repository.GameRow, limit int) []CompositeGame {
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	out := make([]CompositeGame, len(rows))
	if len(rows) == 0 {
		return out
	}

	ids := make([]uint, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}

	genres, genresErr := a.lookup.GenreNames(ctx, ids)
	if genresErr != nil {
		a.log.Warn("genre lookup failed, returning games without genres",
			zap.Uints("game_ids", ids), zap.Error(genresErr))
	}
	tags, tagsErr := a.lookup.TagNames(ctx, ids)
	if tagsErr != nil {
		a.log.Warn("tag lookup failed, returning games without tags",
			zap.Uints("game_ids", ids), zap.Error(tagsErr))
	}
	degraded := genresErr != nil || tagsErr != nil

	for i, row := range rows {
		out[i] = CompositeGame{
			GameRow:  row,
			Genres:   namesOrEmpty(genres, row.ID),
			Tags:     namesOrEmpty(tags, row.ID),
			Degraded: degraded,
		}
	}
	return out
}

func namesOrEmpty(m map[uint][]string, id uint) []string {
	names := m[id]
	if names == nil {
		return []string{}
	}
	out := make([]string, len(names))
	copy(out, names)
	return out
}
