// Package catalog turns raw ERP rows into display-ready catalog pages:
// querying, tax resolution, and variant aggregation.
package catalog

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/tatacoa/vitrina/internal/domain"
	"github.com/tatacoa/vitrina/internal/odoo"
)

const (
	productModel  = "product.product"
	categoryModel = "product.category"
	taxModel      = "account.tax"

	// DefaultPageSize matches what the storefront requests per page.
	DefaultPageSize = 50

	// MaxPageSize bounds how many rows a single request may pull from
	// the ERP, whatever the query string asks for.
	MaxPageSize = 100
)

// productFields is the fixed projection for product pages. Kept narrow
// on purpose: only one image resolution is fetched, and taxes_id rides
// along so prices can be made tax-inclusive without a second pass.
var productFields = []string{
	"id",
	"display_name",
	"product_tmpl_id",
	"lst_price",
	"list_price",
	"description_sale",
	"categ_id",
	"qty_available",
	"default_code",
	"taxes_id",
	"create_date",
	"write_date",
	"currency_id",
	"image_1024",
}

// Service answers catalog queries against the ERP read gateway.
type Service struct {
	gw     odoo.Gateway
	logger *slog.Logger
}

// NewService creates a catalog service backed by the given gateway.
func NewService(gw odoo.Gateway, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{gw: gw, logger: logger}
}

// Page is one page of raw product rows plus pagination metadata.
type Page struct {
	Rows []odoo.Row
	Meta domain.PageMeta
}

// FetchPage retrieves one catalog page. The record count and the row
// fetch are independent reads issued concurrently, but both must
// succeed: a failure in either fails the whole page, never a partial
// result. Pages are 1-indexed and sorted by list price, descending.
func (s *Service) FetchPage(ctx context.Context, page, pageSize int, categories []string) (*Page, error) {
	const op = "catalog.fetch_page"

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	filter := buildDomain(categories)

	var (
		total int
		rows  []odoo.Row
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.gw.SearchCount(gctx, productModel, filter)
		return err
	})
	g.Go(func() error {
		var err error
		rows, err = s.gw.SearchRead(gctx, productModel, filter, odoo.SearchOptions{
			Fields: productFields,
			Limit:  pageSize,
			Offset: (page - 1) * pageSize,
			Order:  "list_price DESC",
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.Unavailable(err, op, "Error al obtener productos")
	}

	// An empty page still serializes as data: [] on the wire.
	if rows == nil {
		rows = []odoo.Row{}
	}

	return &Page{
		Rows: rows,
		Meta: domain.PageMeta{
			Total:      total,
			Page:       page,
			PageSize:   pageSize,
			TotalPages: totalPages(total, pageSize),
		},
	}, nil
}

// GetProduct fetches the raw rows for a single product id.
func (s *Service) GetProduct(ctx context.Context, id int64) ([]odoo.Row, error) {
	const op = "catalog.get_product"

	rows, err := s.gw.SearchRead(ctx, productModel, []interface{}{
		[]interface{}{"id", "=", id},
	}, odoo.SearchOptions{})
	if err != nil {
		return nil, domain.Unavailable(err, op, "Error al obtener el producto")
	}
	if len(rows) == 0 {
		return nil, domain.NotFound(op, "Producto no encontrado")
	}
	return rows, nil
}

// GetTax fetches a single account.tax record.
func (s *Service) GetTax(ctx context.Context, id int64) (odoo.Row, error) {
	const op = "catalog.get_tax"

	rows, err := s.gw.Read(ctx, taxModel, []int64{id}, taxFields)
	if err != nil {
		return nil, domain.Unavailable(err, op, "Error al obtener el impuesto")
	}
	if len(rows) == 0 {
		return nil, domain.NotFound(op, "Impuesto no encontrado")
	}
	return rows[0], nil
}

// FetchDisplayPage runs the full pipeline for one page: fetch rows,
// resolve the taxes they reference, and aggregate variants into
// display entries. The tax lookup is built fresh for every call and
// discarded with it; nothing is shared between requests.
func (s *Service) FetchDisplayPage(ctx context.Context, page, pageSize int, categories []string) ([]domain.DisplayProduct, domain.PageMeta, error) {
	p, err := s.FetchPage(ctx, page, pageSize, categories)
	if err != nil {
		return nil, domain.PageMeta{}, err
	}

	variants := odoo.DecodeVariants(p.Rows)
	taxes := s.ResolveTaxes(ctx, variants)

	return Aggregate(variants, taxes), p.Meta, nil
}

// buildDomain builds the Odoo domain expression for a catalog query.
// Sellable items only; category names become case-insensitive
// substring matches, OR-combined in Odoo's prefix notation (N names
// need N-1 "|" markers ahead of the N conditions).
func buildDomain(categories []string) []interface{} {
	filter := []interface{}{
		[]interface{}{"sale_ok", "=", true},
	}

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		if c = strings.TrimSpace(c); c != "" {
			names = append(names, c)
		}
	}

	for i := 0; i < len(names)-1; i++ {
		filter = append(filter, "|")
	}
	for _, name := range names {
		filter = append(filter, []interface{}{"categ_id.name", "ilike", name})
	}

	return filter
}

// totalPages is ceil(total / pageSize).
func totalPages(total, pageSize int) int {
	return (total + pageSize - 1) / pageSize
}
