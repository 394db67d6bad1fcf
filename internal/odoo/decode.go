package odoo

import (
	"encoding/base64"
	"time"

	"github.com/tatacoa/vitrina/internal/domain"
)

// Odoo's wire format is loosely typed: unset fields come back as the
// boolean false, many2one references as [id, name] pairs, many2many as
// id lists, and datetimes as either ISO values or "YYYY-MM-DD HH:MM:SS"
// strings depending on server version. All of that is normalized here,
// at the gateway boundary, so the catalog code never inspects raw rows.

const datetimeLayout = "2006-01-02 15:04:05"

// Int returns the field as an int64, 0 when absent or mistyped.
func (r Row) Int(key string) int64 {
	switch v := r[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}

// String returns the field as a string. Odoo sends false for empty
// char/text fields, which decodes to the empty string.
func (r Row) String(key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

// Float returns the field as a float64, 0 when absent.
func (r Row) Float(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	}
	return 0
}

// Bool returns the field as a bool.
func (r Row) Bool(key string) bool {
	v, _ := r[key].(bool)
	return v
}

// Reference decodes a many2one [id, name] pair. An unset reference
// (false on the wire) yields the zero Reference.
func (r Row) Reference(key string) domain.Reference {
	pair, ok := r[key].([]interface{})
	if !ok || len(pair) < 2 {
		return domain.Reference{}
	}

	ref := domain.Reference{}
	switch id := pair[0].(type) {
	case int64:
		ref.ID = id
	case float64:
		ref.ID = int64(id)
	}
	if name, ok := pair[1].(string); ok {
		ref.Name = name
	}
	return ref
}

// IDs decodes a many2many id list, preserving order.
func (r Row) IDs(key string) []int64 {
	raw, ok := r[key].([]interface{})
	if !ok {
		return nil
	}

	ids := make([]int64, 0, len(raw))
	for _, v := range raw {
		switch id := v.(type) {
		case int64:
			ids = append(ids, id)
		case float64:
			ids = append(ids, int64(id))
		}
	}
	return ids
}

// Time decodes a datetime field from either decoded time.Time values
// or Odoo's plain "YYYY-MM-DD HH:MM:SS" strings.
func (r Row) Time(key string) time.Time {
	switch v := r[key].(type) {
	case time.Time:
		return v
	case string:
		if t, err := time.Parse(datetimeLayout, v); err == nil {
			return t
		}
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Binary decodes a base64 field back to its textual base64 form.
// The XML-RPC layer hands binary fields over as raw bytes.
func (r Row) Binary(key string) string {
	switch v := r[key].(type) {
	case []byte:
		return base64.StdEncoding.EncodeToString(v)
	case string:
		return v
	}
	return ""
}

// DecodeVariant maps one product.product row to its typed projection.
func DecodeVariant(r Row) domain.Variant {
	return domain.Variant{
		ID:           r.Int("id"),
		DisplayName:  r.String("display_name"),
		Template:     r.Reference("product_tmpl_id"),
		ListPrice:    r.Float("lst_price"),
		TaxIDs:       r.IDs("taxes_id"),
		Category:     r.Reference("categ_id"),
		Currency:     r.Reference("currency_id"),
		QtyAvailable: r.Float("qty_available"),
		DefaultCode:  r.String("default_code"),
		Description:  r.String("description_sale"),
		Image:        r.Binary("image_1024"),
		CreateDate:   r.Time("create_date"),
		WriteDate:    r.Time("write_date"),
	}
}

// DecodeVariants maps a page of product rows.
func DecodeVariants(rows []Row) []domain.Variant {
	variants := make([]domain.Variant, 0, len(rows))
	for _, r := range rows {
		variants = append(variants, DecodeVariant(r))
	}
	return variants
}

// DecodeTax maps one account.tax row.
func DecodeTax(r Row) domain.TaxRecord {
	return domain.TaxRecord{
		ID:           r.Int("id"),
		Name:         r.String("name"),
		AmountType:   r.String("amount_type"),
		Amount:       r.Float("amount"),
		PriceInclude: r.Bool("price_include"),
	}
}

// DecodeCategory maps one product.category row.
func DecodeCategory(r Row) domain.Category {
	return domain.Category{
		ID:          r.Int("id"),
		DisplayName: r.String("display_name"),
	}
}
