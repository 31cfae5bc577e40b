// Package stats reshapes grouped query results into keyed summaries and
// scalar aggregates.
package stats

// GroupRow is one row of a grouped statistics query: a category name, the
// number of distinct games in it, their average rating and, for tags, the
// number of distinct users owning any of those games.
type GroupRow struct {
	Name      string
	GameCount int64
	AvgRating *float64
	UserCount *int64
}

// Stat is the summary of one category.
type Stat struct {
	Count     int64   `json:"count"`
	AvgRating float64 `json:"avgRating"`
	UserCount *int64  `json:"userCount,omitempty"`
}

// Overview is the global summary of the catalog.
type Overview struct {
	TotalGames   int64   `json:"totalGames"`
	TotalUsers   int64   `json:"totalUsers"`
	TotalReviews int64   `json:"totalReviews"`
	AvgRating    float64 `json:"avgRating"`
}

// BuildKeyedStats maps each row's name to its Stat. Keys keep the source
// text verbatim and a repeated key keeps the last row. A null average
// becomes 0. The result is never nil.
func BuildKeyedStats(rows []GroupRow) map[string]Stat {
	out := make(map[string]Stat, len(rows))
	for _, row := range rows {
		s := Stat{
			Count:     row.GameCount,
			AvgRating: BuildScalarStat(row.AvgRating),
		}
		if row.UserCount != nil {
			uc := *row.UserCount
			s.UserCount = &uc
		}
		out[row.Name] = s
	}
	return out
}

// BuildScalarStat unwraps a nullable aggregate, treating NULL as 0.
func BuildScalarStat(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
