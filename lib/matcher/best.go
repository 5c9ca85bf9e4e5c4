package matcher

import (
	"minerprofit-backend/lib/minername"
)

type Match[T any] struct {
	Candidate T
	Score     float64
}

// Best scores every candidate against productName and returns the highest
// scoring one if it reaches threshold. Ties go to the first candidate seen,
// so the result depends on candidate order.
func Best[T any](
	scorer Scorer,
	productName string,
	candidates []T,
	nameOf func(T) string,
	threshold float64,
) (Match[T], bool) {
	product := minername.Parse(productName)
	if product.Model == "" {
		return Match[T]{}, false
	}

	var best Match[T]
	found := false
	for _, c := range candidates {
		score := scorer.Score(product, minername.Parse(nameOf(c)))
		if score <= Disqualified {
			continue
		}
		if !found || score > best.Score {
			best = Match[T]{Candidate: c, Score: score}
			found = true
		}
	}

	if !found || best.Score < threshold {
		return Match[T]{}, false
	}
	return best, true
}
