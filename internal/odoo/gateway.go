// Package odoo implements the read gateway to the external Odoo ERP
// over XML-RPC. The gateway owns authentication and wire decoding;
// everything downstream works with validated types.
package odoo

import "context"

// Row is one raw ERP record as decoded from the XML-RPC response.
// Rows are re-serialized verbatim on the raw API endpoints, so no
// key renaming happens at this layer.
type Row map[string]interface{}

// SearchOptions mirrors the keyword arguments accepted by Odoo's
// search_read: field projection, paging window, and sort order.
type SearchOptions struct {
	Fields []string
	Limit  int
	Offset int
	Order  string
}

// Gateway is the read-only capability the catalog services depend on.
// It is injected rather than reached through a package-level singleton
// so tests can substitute an in-memory double.
type Gateway interface {
	// SearchRead searches model records matching the domain expression
	// and reads them in a single round trip.
	SearchRead(ctx context.Context, model string, domain []interface{}, opts SearchOptions) ([]Row, error)

	// SearchCount returns the number of records matching the domain.
	SearchCount(ctx context.Context, model string, domain []interface{}) (int, error)

	// Read fetches the given record ids, projected to fields.
	Read(ctx context.Context, model string, ids []int64, fields []string) ([]Row, error)
}
