package api

import (
	"log/slog"
	"net/http"

	"github.com/tatacoa/vitrina/internal/catalog"
	"github.com/tatacoa/vitrina/internal/handler"
)

// CategoryHandler serves the category listing endpoint.
type CategoryHandler struct {
	svc    *catalog.Service
	logger *slog.Logger
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(svc *catalog.Service, logger *slog.Logger) *CategoryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CategoryHandler{svc: svc, logger: logger}
}

// List handles GET /categories. Flat passthrough, no pagination.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories(r.Context())
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	handler.OK(w, categories)
}
