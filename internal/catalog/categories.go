package catalog

import (
	"context"

	"github.com/tatacoa/vitrina/internal/domain"
	"github.com/tatacoa/vitrina/internal/odoo"
)

// ListCategories returns the flat category list used by the filter UI.
// No filtering and no pagination; a gateway failure surfaces as an
// error with an empty result, never as a panic through the handler.
func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const op = "catalog.list_categories"

	rows, err := s.gw.SearchRead(ctx, categoryModel, []interface{}{}, odoo.SearchOptions{
		Fields: []string{"id", "display_name"},
	})
	if err != nil {
		return nil, domain.Unavailable(err, op, "Error al obtener categorías")
	}
	if len(rows) == 0 {
		return nil, domain.NotFound(op, "Categorías no encontradas")
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, r := range rows {
		categories = append(categories, odoo.DecodeCategory(r))
	}
	return categories, nil
}
