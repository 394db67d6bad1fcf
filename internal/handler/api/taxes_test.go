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

func TestTaxGet(t *testing.T) {
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
			id:         "3",
			rows:       []odoo.Row{{"id": int64(3), "amount": float64(19)}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "non-numeric id is rejected before the gateway",
			id:         "iva",
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_ID",
		},
		{
			name:       "absent record",
			id:         "999",
			rows:       []odoo.Row{},
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "backend error",
			id:         "3",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "FETCH_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			gw := odoo.NewMockGateway()
			gw.ReadFunc = func(ctx context.Context, model string, ids []int64, fields []string) ([]odoo.Row, error) {
				called = true
				assert.Equal(t, "account.tax", model)
				return tt.rows, tt.err
			}

			h := NewTaxHandler(catalog.NewService(gw, nil), nil)
			req := httptest.NewRequest(http.MethodGet, "/taxes/"+tt.id, nil)
			req.SetPathValue("id", tt.id)
			rec := httptest.NewRecorder()
			h.Get(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body struct {
				Success bool                   `json:"success"`
				Data    map[string]interface{} `json:"data"`
				Error   *struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

			if tt.wantCode != "" {
				require.NotNil(t, body.Error)
				assert.Equal(t, tt.wantCode, body.Error.Code)
			} else {
				assert.True(t, body.Success)
				assert.Equal(t, float64(19), body.Data["amount"])
			}

			if tt.wantStatus == http.StatusBadRequest {
				assert.False(t, called, "invalid ids never reach the gateway")
			}
		})
	}
}

func TestCategoryList(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		gw := odoo.NewMockGateway()
		gw.SearchReadFunc = func(ctx context.Context, model string, filter []interface{}, opts odoo.SearchOptions) ([]odoo.Row, error) {
			assert.Equal(t, "product.category", model)
			return []odoo.Row{
				{"id": int64(1), "display_name": "Calzado"},
				{"id": int64(2), "display_name": "Camisetas"},
			}, nil
		}

		h := NewCategoryHandler(catalog.NewService(gw, nil), nil)
		rec := httptest.NewRecorder()
		h.List(rec, httptest.NewRequest(http.MethodGet, "/categories", nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Success bool `json:"success"`
			Data    []struct {
				ID          int64  `json:"id"`
				DisplayName string `json:"display_name"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
		require.Len(t, body.Data, 2)
		assert.Equal(t, "Calzado", body.Data[0].DisplayName)
	})

	t.Run("empty backend is 404", func(t *testing.T) {
		h := NewCategoryHandler(catalog.NewService(odoo.NewMockGateway(), nil), nil)
		rec := httptest.NewRecorder()
		h.List(rec, httptest.NewRequest(http.MethodGet, "/categories", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("gateway failure is 500", func(t *testing.T) {
		gw := odoo.NewMockGateway()
		gw.SearchReadFunc = func(ctx context.Context, model string, filter []interface{}, opts odoo.SearchOptions) ([]odoo.Row, error) {
			return nil, errors.New("boom")
		}

		h := NewCategoryHandler(catalog.NewService(gw, nil), nil)
		rec := httptest.NewRecorder()
		h.List(rec, httptest.NewRequest(http.MethodGet, "/categories", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
