package routes

import (
	"github.com/tatacoa/vitrina/internal/handler/api"
	"github.com/tatacoa/vitrina/internal/router"
)

// APIDeps contains the handlers behind the storefront API routes.
type APIDeps struct {
	Products   *api.ProductHandler
	Categories *api.CategoryHandler
	Taxes      *api.TaxHandler
}

// RegisterAPIRoutes registers the storefront JSON API.
func RegisterAPIRoutes(r *router.Router, deps APIDeps) {
	r.Get("/categories", deps.Categories.List)
	r.Get("/products", deps.Products.List)
	r.Get("/products/{id}", deps.Products.Get)
	r.Get("/taxes/{id}", deps.Taxes.Get)
	r.Get("/catalog", deps.Products.Catalog)
}
