package odoo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRow_Reference(t *testing.T) {
	tests := []struct {
		name     string
		row      Row
		wantID   int64
		wantName string
	}{
		{
			name:     "valid pair",
			row:      Row{"product_tmpl_id": []interface{}{int64(7), "Zapatilla Alta"}},
			wantID:   7,
			wantName: "Zapatilla Alta",
		},
		{
			name:   "unset reference is false on the wire",
			row:    Row{"product_tmpl_id": false},
			wantID: 0,
		},
		{
			name:   "missing key",
			row:    Row{},
			wantID: 0,
		},
		{
			name:   "truncated pair",
			row:    Row{"product_tmpl_id": []interface{}{int64(7)}},
			wantID: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := tt.row.Reference("product_tmpl_id")
			assert.Equal(t, tt.wantID, ref.ID)
			assert.Equal(t, tt.wantName, ref.Name)
			assert.Equal(t, tt.wantID != 0, ref.Valid())
		})
	}
}

func TestRow_String_FalseMeansEmpty(t *testing.T) {
	row := Row{"default_code": false, "display_name": "[A1] Bota (38)"}

	assert.Equal(t, "", row.String("default_code"))
	assert.Equal(t, "[A1] Bota (38)", row.String("display_name"))
	assert.Equal(t, "", row.String("missing"))
}

func TestRow_Time(t *testing.T) {
	want := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		row  Row
		want time.Time
	}{
		{
			name: "decoded time value",
			row:  Row{"create_date": want},
			want: want,
		},
		{
			name: "odoo string datetime",
			row:  Row{"create_date": "2025-03-14 09:30:00"},
			want: want,
		},
		{
			name: "absent field",
			row:  Row{"create_date": false},
			want: time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.row.Time("create_date").Equal(tt.want))
		})
	}
}

func TestDecodeVariant(t *testing.T) {
	row := Row{
		"id":               int64(42),
		"display_name":     "[REF9] Guayo Predator (40)",
		"product_tmpl_id":  []interface{}{int64(9), "Guayo Predator"},
		"lst_price":        float64(189900),
		"taxes_id":         []interface{}{int64(3), int64(5)},
		"categ_id":         []interface{}{int64(2), "Calzado"},
		"currency_id":      []interface{}{int64(8), "COP"},
		"qty_available":    float64(4),
		"default_code":     "REF9",
		"description_sale": false,
		"image_1024":       []byte{0x01, 0x02},
		"create_date":      "2025-01-02 08:00:00",
		"write_date":       "2025-02-03 10:15:00",
	}

	v := DecodeVariant(row)

	assert.Equal(t, int64(42), v.ID)
	assert.Equal(t, "[REF9] Guayo Predator (40)", v.DisplayName)
	assert.Equal(t, int64(9), v.Template.ID)
	assert.Equal(t, "Guayo Predator", v.Template.Name)
	assert.Equal(t, 189900.0, v.ListPrice)
	assert.Equal(t, []int64{3, 5}, v.TaxIDs)
	assert.Equal(t, "Calzado", v.Category.Name)
	assert.Equal(t, "COP", v.Currency.Name)
	assert.Equal(t, 4.0, v.QtyAvailable)
	assert.Equal(t, "REF9", v.DefaultCode)
	assert.Equal(t, "", v.Description)
	assert.Equal(t, "AQI=", v.Image)
	assert.Equal(t, 2025, v.CreateDate.Year())
}

func TestDecodeTax(t *testing.T) {
	row := Row{
		"id":            int64(3),
		"name":          "IVA 19%",
		"amount_type":   "percent",
		"amount":        float64(19),
		"price_include": false,
	}

	tax := DecodeTax(row)

	assert.Equal(t, int64(3), tax.ID)
	assert.Equal(t, "IVA 19%", tax.Name)
	assert.Equal(t, 19.0, tax.Amount)
	assert.False(t, tax.PriceInclude)
}
