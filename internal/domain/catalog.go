// Package domain provides the core catalog types shared across the
// application: typed projections of Odoo records and the display
// entities produced by the aggregation pipeline.
package domain

import "time"

// Reference is a validated decode of Odoo's loosely typed many2one
// pairs ([id, name] or false when unset). A zero ID means the
// reference was absent on the source record.
type Reference struct {
	ID   int64
	Name string
}

// Valid reports whether the reference points at a record.
func (r Reference) Valid() bool {
	return r.ID != 0
}

// Variant is a typed projection of one product.product row. Rows with
// the same Template.ID are variants of the same product and are merged
// into a single DisplayProduct.
type Variant struct {
	ID           int64
	DisplayName  string // ERP-formatted: "[code] Name (Variant)"
	Template     Reference
	ListPrice    float64
	TaxIDs       []int64 // ordered, first is the primary tax
	Category     Reference
	Currency     Reference
	QtyAvailable float64
	DefaultCode  string
	Description  string
	Image        string // base64, single resolution
	CreateDate   time.Time
	WriteDate    time.Time
}

// TaxRecord is one account.tax record, resolved at most once per
// distinct id during a single catalog fetch.
type TaxRecord struct {
	ID           int64
	Name         string
	AmountType   string // percentage | fixed | group
	Amount       float64
	PriceInclude bool
}

// Category is a flat product.category projection used by the filter UI.
type Category struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
}

// ProductImage is one image attached to a DisplayProduct. Only the
// base variant's image is carried, marked primary.
type ProductImage struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Alt       string `json:"alt"`
	IsPrimary bool   `json:"isPrimary"`
	Order     int    `json:"order"`
}

// DisplayProduct is the display-ready catalog entry built from a group
// of variants. Constructed per request and discarded after render;
// never persisted.
type DisplayProduct struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       float64        `json:"price"` // tax-inclusive
	Currency    string         `json:"currency"`
	Images      []ProductImage `json:"images"`
	Category    string         `json:"category"`
	Stock       float64        `json:"stock"`
	SKU         string         `json:"sku"`
	Slug        string         `json:"slug"`
	CreatedAt   string         `json:"createdAt"`
	UpdatedAt   string         `json:"updatedAt"`
	Featured    bool           `json:"featured"`
	Sizes       []string       `json:"sizes"`
}

// PageMeta carries pagination metadata for a catalog page.
type PageMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}
