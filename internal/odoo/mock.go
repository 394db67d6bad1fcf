package odoo

import (
	"context"
)

// MockGateway is a test implementation of Gateway.
type MockGateway struct {
	SearchReadFunc  func(ctx context.Context, model string, domain []interface{}, opts SearchOptions) ([]Row, error)
	SearchCountFunc func(ctx context.Context, model string, domain []interface{}) (int, error)
	ReadFunc        func(ctx context.Context, model string, ids []int64, fields []string) ([]Row, error)
}

// NewMockGateway creates a mock gateway for testing.
func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

// SearchRead delegates to the configured function or returns no rows.
func (m *MockGateway) SearchRead(ctx context.Context, model string, domain []interface{}, opts SearchOptions) ([]Row, error) {
	if m.SearchReadFunc != nil {
		return m.SearchReadFunc(ctx, model, domain, opts)
	}
	return []Row{}, nil
}

// SearchCount delegates to the configured function or returns zero.
func (m *MockGateway) SearchCount(ctx context.Context, model string, domain []interface{}) (int, error) {
	if m.SearchCountFunc != nil {
		return m.SearchCountFunc(ctx, model, domain)
	}
	return 0, nil
}

// Read delegates to the configured function or returns no rows.
func (m *MockGateway) Read(ctx context.Context, model string, ids []int64, fields []string) ([]Row, error) {
	if m.ReadFunc != nil {
		return m.ReadFunc(ctx, model, ids, fields)
	}
	return []Row{}, nil
}
