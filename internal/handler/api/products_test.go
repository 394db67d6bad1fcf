package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatacoa/vitrina/internal/catalog"
	"github.com/tatacoa/vitrina/internal/odoo"
)

type productEnvelope struct {
	Success bool                     `json:"success"`
	Data    []map[string]interface{} `json:"data"`
	Meta    *struct {
		Total      int `json:"total"`
		Page       int `json:"page"`
		PageSize   int `json:"pageSize"`
		TotalPages int `json:"totalPages"`
	} `json:"meta"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeProducts(t *testing.T, rec *httptest.ResponseRecorder) productEnvelope {
	t.Helper()
	var body productEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestProductList_Success(t *testing.T) {
	gw := odoo.NewMockGateway()
	gw.SearchCountFunc = func(ctx context.Context, model string, filter []interface{}) (int, error) {
		return 95, nil
	}
	gw.SearchReadFunc = func(ctx context.Context, model string, filter []interface{}, opts odoo.SearchOptions) ([]odoo.Row, error) {
		return []odoo.Row{{"id": int64(1), "display_name": "Guayo (38)"}}, nil
	}

	h := NewProductHandler(catalog.NewService(gw, nil), nil)
	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/products?page=2&pageSize=50", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeProducts(t, rec)
	assert.True(t, body.Success)
	require.NotNil(t, body.Meta)
	assert.Equal(t, 95, body.Meta.Total)
	assert.Equal(t, 2, body.Meta.Page)
	assert.Equal(t, 2, body.Meta.TotalPages)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Guayo (38)", body.Data[0]["display_name"])
}

func TestProductList_CategoryFilterReachesGateway(t *testing.T) {
	var gotFilter []interface{}
	gw := odoo.NewMockGateway()
	gw.SearchReadFunc = func(ctx context.Context, model string, filter []interface{}, opts odoo.SearchOptions) ([]odoo.Row, error) {
		gotFilter = filter
		return []odoo.Row{}, nil
	}

	h := NewProductHandler(catalog.NewService(gw, nil), nil)
	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/products?category=Calzado,Camisetas", nil))

	require.Len(t, gotFilter, 4, "sale_ok + one marker + two conditions")
	assert.Equal(t, "|", gotFilter[1])
}

func TestProductList_TodosMeansNoFilter(t *testing.T) {
	var gotFilter []interface{}
	gw := odoo.NewMockGateway()
	gw.SearchReadFunc = func(ctx context.Context, model string, filter []interface{}, opts odoo.SearchOptions) ([]odoo.Row, error) {
		gotFilter = filter
		return []odoo.Row{}, nil
	}

	h := NewProductHandler(catalog.NewService(gw, nil), nil)
	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/products?category=Todos", nil))

	assert.Len(t, gotFilter, 1, "only the sale_ok restriction")
}

func TestProductList_GatewayFailure(t *testing.T) {
	gw := odoo.NewMockGateway()
	gw.SearchReadFunc = func(ctx context.Context, model string, filter []interface{}, opts odoo.SearchOptions) ([]odoo.Row, error) {
		return nil, errors.New("boom")
	}

	h := NewProductHandler(catalog.NewService(gw, nil), nil)
	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/products", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeProducts(t, rec)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "FETCH_ERROR", body.Error.Code)
}

func TestProductGet(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		rows       []odoo.Row
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "found",
			id:         "42",
			rows:       []odoo.Row{{"id": int64(42)}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "empty result is 404",
			id:         "42",
			rows:       []odoo.Row{},
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "non-numeric id",
			id:         "abc",
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_ID",
		},
		{
			name:       "gateway failure",
			id:         "42",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "FETCH_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := odoo.NewMockGateway()
			gw.SearchReadFunc = func(ctx context.Context, model string, filter []interface{}, opts odoo.SearchOptions) ([]odoo.Row, error) {
				return tt.rows, tt.err
			}

			h := NewProductHandler(catalog.NewService(gw, nil), nil)
			req := httptest.NewRequest(http.MethodGet, "/products/"+tt.id, nil)
			req.SetPathValue("id", tt.id)
			rec := httptest.NewRecorder()
			h.Get(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeProducts(t, rec)
			if tt.wantCode != "" {
				require.NotNil(t, body.Error)
				assert.Equal(t, tt.wantCode, body.Error.Code)
			} else {
				assert.True(t, body.Success)
			}
		})
	}
}

func TestCatalog_DisplayEntries(t *testing.T) {
	gw := odoo.NewMockGateway()
	gw.SearchCountFunc = func(ctx context.Context, model string, filter []interface{}) (int, error) {
		return 2, nil
	}
	gw.SearchReadFunc = func(ctx context.Context, model string, filter []interface{}, opts odoo.SearchOptions) ([]odoo.Row, error) {
		return []odoo.Row{
			{
				"id":              int64(1),
				"display_name":    "[A] Guayo (38)",
				"product_tmpl_id": []interface{}{int64(10), "Guayo"},
				"lst_price":       float64(100000),
				"taxes_id":        []interface{}{int64(3)},
				"qty_available":   float64(2),
			},
			{
				"id":              int64(2),
				"display_name":    "[A] Guayo (39)",
				"product_tmpl_id": []interface{}{int64(10), "Guayo"},
				"lst_price":       float64(100000),
				"taxes_id":        []interface{}{int64(3)},
				"qty_available":   float64(5),
			},
		}, nil
	}
	gw.ReadFunc = func(ctx context.Context, model string, ids []int64, fields []string) ([]odoo.Row, error) {
		return []odoo.Row{{"id": int64(3), "amount": float64(19), "amount_type": "percent"}}, nil
	}

	h := NewProductHandler(catalog.NewService(gw, nil), nil)
	rec := httptest.NewRecorder()
	h.Catalog(rec, httptest.NewRequest(http.MethodGet, "/catalog", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    []struct {
			Name  string   `json:"name"`
			Price float64  `json:"price"`
			Stock float64  `json:"stock"`
			Sizes []string `json:"sizes"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1, "two variants merge into one entry")
	assert.Equal(t, "Guayo", body.Data[0].Name)
	assert.Equal(t, 119000.0, body.Data[0].Price)
	assert.Equal(t, 7.0, body.Data[0].Stock)
	assert.Equal(t, []string{"38", "39"}, body.Data[0].Sizes)
}
