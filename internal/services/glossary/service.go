// Package glossary implements the read-only query services over the term catalog
package glossary

import (
	"context"
	"errors"

	"github.com/jiten-dev/jiten/internal/catalog"
	"github.com/jiten-dev/jiten/internal/common"
	"github.com/jiten-dev/jiten/internal/interfaces"
	"github.com/jiten-dev/jiten/internal/models"
)

// ErrTermNotFound signals a lookup for a term id that is not in the catalog.
var ErrTermNotFound = errors.New("term not found")

// Compile-time interface check
var _ interfaces.GlossaryService = (*Service)(nil)

// Service implements GlossaryService
type Service struct {
	catalog *catalog.Catalog
	logger  *common.Logger
}

// NewService creates a new glossary service
func NewService(cat *catalog.Catalog, logger *common.Logger) *Service {
	return &Service{
		catalog: cat,
		logger:  logger,
	}
}

// ListCategories returns the ordered category listing with display names
// and term counts.
func (s *Service) ListCategories(ctx context.Context) ([]models.CategoryInfo, error) {
	return s.catalog.Categories(), nil
}
