package glossary

import (
	"context"
	"fmt"
	"strings"

	"github.com/jiten-dev/jiten/internal/models"
)

// maxRelatedTerms caps the related listing on a term detail.
const maxRelatedTerms = 5

// GetTerm returns the full term record plus up to maxRelatedTerms related
// terms in catalog order.
func (s *Service) GetTerm(ctx context.Context, id string) (*models.TermDetail, error) {
	term, ok := s.catalog.TermByID(id)
	if !ok {
		return nil, fmt.Errorf("term %q: %w", id, ErrTermNotFound)
	}
	return &models.TermDetail{
		Term:         term,
		RelatedTerms: s.relatedTo(&term),
	}, nil
}

// relatedTo scans the catalog in order and collects terms related to the
// source: either the tag sets overlap, or one of the source's related-name
// hints appears inside the candidate's name. The source itself is skipped.
func (s *Service) relatedTo(source *models.Term) []models.TermSummary {
	related := make([]models.TermSummary, 0, maxRelatedTerms)
	all := s.catalog.AllTerms()
	for i := range all {
		candidate := &all[i]
		if candidate.ID == source.ID {
			continue
		}
		if !source.SharesTag(candidate) && !nameHintMatch(source.RelatedTermNames, candidate.Name) {
			continue
		}
		related = append(related, models.TermSummary{
			ID:             candidate.ID,
			Name:           candidate.Name,
			LocalizedLabel: candidate.LocalizedLabel,
		})
		if len(related) == maxRelatedTerms {
			break
		}
	}
	return related
}

// nameHintMatch reports whether any hint is a substring of name. Hints are
// free text rather than ids: matching is verbatim and partial hits count.
func nameHintMatch(hints []string, name string) bool {
	for _, hint := range hints {
		if strings.Contains(name, hint) {
			return true
		}
	}
	return false
}
