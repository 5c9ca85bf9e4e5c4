package matcher

import (
	"slices"

	"minerprofit-backend/lib/minername"

	"github.com/antzucaro/matchr"
)

// RankNames orders names by Jaro-Winkler similarity to query (most similar
// first) and keeps at most limit of them. It is meant for diagnostics when
// no candidate clears the threshold.
func RankNames(query string, names []string, limit int) []string {
	type ranked struct {
		name       string
		similarity float64
	}

	q := minername.Normalize(query)
	list := make([]ranked, len(names))
	for i, name := range names {
		list[i] = ranked{
			name:       name,
			similarity: matchr.JaroWinkler(q, minername.Normalize(name), false),
		}
	}

	slices.SortStableFunc(list, func(a, b ranked) int {
		if a.similarity > b.similarity {
			return -1
		}
		if a.similarity < b.similarity {
			return 1
		}
		return 0
	})

	if limit >= 0 && len(list) > limit {
		list = list[:limit]
	}
	out := make([]string, len(list))
	for i, r := range list {
		out[i] = r.name
	}
	return out
}
