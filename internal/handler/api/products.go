// Package api exposes the storefront JSON endpoints backed by the
// catalog service.
package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/tatacoa/vitrina/internal/catalog"
	"github.com/tatacoa/vitrina/internal/domain"
	"github.com/tatacoa/vitrina/internal/handler"
)

// allCategories is the sentinel the storefront sends when no category
// filter is active.
const allCategories = "Todos"

// ProductHandler serves the product endpoints.
type ProductHandler struct {
	svc    *catalog.Service
	logger *slog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(svc *catalog.Service, logger *slog.Logger) *ProductHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductHandler{svc: svc, logger: logger}
}

// List handles GET /products?page&pageSize&category.
// Returns one page of raw ERP rows plus pagination metadata.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize, categories := pageParams(r)

	result, err := h.svc.FetchPage(r.Context(), page, pageSize, categories)
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	handler.OKPage(w, result.Rows, result.Meta)
}

// Get handles GET /products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		handler.Error(w, r, h.logger, domain.Invalid("products.get", "El ID del producto no es válido"))
		return
	}

	rows, err := h.svc.GetProduct(r.Context(), id)
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	handler.OK(w, rows)
}

// Catalog handles GET /catalog?page&pageSize&category.
// Like List, but runs the whole pipeline server-side and returns
// display-ready entries: variants merged per template, sizes derived,
// prices made tax-inclusive.
func (h *ProductHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	page, pageSize, categories := pageParams(r)

	products, meta, err := h.svc.FetchDisplayPage(r.Context(), page, pageSize, categories)
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	handler.OKPage(w, products, meta)
}

// pageParams extracts pagination and category filters from the query
// string. Bad or missing numbers fall back to the defaults; the
// category parameter is comma-separated, with "Todos" (or absence)
// meaning no filter.
func pageParams(r *http.Request) (page, pageSize int, categories []string) {
	q := r.URL.Query()

	page = 1
	if n, err := strconv.Atoi(q.Get("page")); err == nil && n > 0 {
		page = n
	}

	pageSize = catalog.DefaultPageSize
	if n, err := strconv.Atoi(q.Get("pageSize")); err == nil && n > 0 {
		pageSize = n
	}

	raw := q.Get("category")
	if raw == "" || raw == allCategories {
		return page, pageSize, nil
	}

	for _, c := range strings.Split(raw, ",") {
		if c = strings.TrimSpace(c); c != "" {
			categories = append(categories, c)
		}
	}
	return page, pageSize, categories
}
