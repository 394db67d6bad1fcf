package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/tatacoa/vitrina/internal/catalog"
	"github.com/tatacoa/vitrina/internal/domain"
	"github.com/tatacoa/vitrina/internal/handler"
)

// TaxHandler serves single tax record lookups.
type TaxHandler struct {
	svc    *catalog.Service
	logger *slog.Logger
}

// NewTaxHandler creates a new tax handler.
func NewTaxHandler(svc *catalog.Service, logger *slog.Logger) *TaxHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaxHandler{svc: svc, logger: logger}
}

// Get handles GET /taxes/{id}. The id must parse as an integer.
func (h *TaxHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		handler.Error(w, r, h.logger, domain.Invalid("taxes.get", "El ID del impuesto no es válido"))
		return
	}

	row, err := h.svc.GetTax(r.Context(), id)
	if err != nil {
		handler.Error(w, r, h.logger, err)
		return
	}

	handler.OK(w, row)
}
