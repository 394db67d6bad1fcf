package catalog

import (
	"context"
	"sync"

	"github.com/tatacoa/vitrina/internal/domain"
	"github.com/tatacoa/vitrina/internal/odoo"
)

// taxFields is the projection used when reading account.tax records.
var taxFields = []string{
	"id",
	"name",
	"amount_type",
	"amount",
	"description",
	"price_include",
	"type_tax_use",
}

// ResolveTaxes builds the tax lookup table for one aggregation pass.
// Only the primary (first) tax reference of each variant is
// considered; each distinct id is resolved with exactly one request,
// and the requests run concurrently. Unlike the page fetch, a failed
// resolution is not fatal: the id is logged and left out of the map,
// degrading that product's price to tax-free rather than failing the
// whole catalog.
func (s *Service) ResolveTaxes(ctx context.Context, variants []domain.Variant) map[int64]domain.TaxRecord {
	seen := make(map[int64]struct{})
	ids := make([]int64, 0)
	for _, v := range variants {
		if len(v.TaxIDs) == 0 {
			continue
		}
		primary := v.TaxIDs[0]
		if _, ok := seen[primary]; ok {
			continue
		}
		seen[primary] = struct{}{}
		ids = append(ids, primary)
	}

	taxes := make(map[int64]domain.TaxRecord, len(ids))
	if len(ids) == 0 {
		return taxes
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, id := range ids {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()

			row, err := s.GetTax(ctx, id)
			if err != nil {
				s.logger.Warn("tax resolution failed", "tax_id", id, "error", err)
				return
			}

			tax := odoo.DecodeTax(row)
			mu.Lock()
			taxes[id] = tax
			mu.Unlock()
		}(id)
	}
	wg.Wait()

	return taxes
}
