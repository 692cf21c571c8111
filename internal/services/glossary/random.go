package glossary

import (
	"context"
	"math/rand/v2"
	"sort"

	"github.com/jiten-dev/jiten/internal/models"
)

// DefaultRandomCount is the sample size used when a caller does not ask for
// a specific one.
const DefaultRandomCount = 5

// RandomTerms returns up to count distinct terms. The catalog is shuffled
// by sorting on a fresh random key per term, then the head of the shuffled
// sequence is taken.
func (s *Service) RandomTerms(ctx context.Context, count int) ([]models.Term, error) {
	if count <= 0 {
		return []models.Term{}, nil
	}

	all := s.catalog.AllTerms()
	type keyedTerm struct {
		key  float64
		term models.Term
	}
	shuffled := make([]keyedTerm, len(all))
	for i, term := range all {
		shuffled[i] = keyedTerm{key: rand.Float64(), term: term}
	}
	sort.Slice(shuffled, func(i, j int) bool { return shuffled[i].key < shuffled[j].key })

	if count > len(shuffled) {
		count = len(shuffled)
	}
	picked := make([]models.Term, count)
	for i := range picked {
		picked[i] = shuffled[i].term
	}
	return picked, nil
}
