package odoo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/kolo/xmlrpc"
)

// Config holds the connection settings for one Odoo instance.
type Config struct {
	BaseURL  string
	Database string
	Username string
	Password string
}

// Client talks to Odoo's external API: authentication against
// /xmlrpc/2/common and model calls through /xmlrpc/2/object execute_kw.
// Authentication is lazy; the first model call triggers it and the
// resulting uid is reused for the lifetime of the client.
type Client struct {
	cfg    Config
	common *xmlrpc.Client
	object *xmlrpc.Client
	logger *slog.Logger

	mu  sync.Mutex
	uid int64
}

// NewClient builds a Client for the configured instance. No network
// I/O happens here; authentication is deferred to the first call.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}

	base := strings.TrimSuffix(cfg.BaseURL, "/")

	common, err := xmlrpc.NewClient(base+"/xmlrpc/2/common", nil)
	if err != nil {
		return nil, fmt.Errorf("odoo common endpoint: %w", err)
	}

	object, err := xmlrpc.NewClient(base+"/xmlrpc/2/object", nil)
	if err != nil {
		return nil, fmt.Errorf("odoo object endpoint: %w", err)
	}

	return &Client{
		cfg:    cfg,
		common: common,
		object: object,
		logger: logger,
	}, nil
}

// call runs an XML-RPC method call, honoring context cancellation.
// The underlying transport has no context support, so the call runs in
// its own goroutine; on cancellation the response is discarded.
func (c *Client) call(ctx context.Context, client *xmlrpc.Client, method string, args []interface{}, reply interface{}) error {
	done := make(chan error, 1)
	go func() {
		done <- client.Call(method, args, reply)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}

// authenticate resolves and caches the session uid.
// Odoo 19+ requires the user_agent_env argument.
func (c *Client) authenticate(ctx context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.uid != 0 {
		return c.uid, nil
	}

	var reply interface{}
	err := c.call(ctx, c.common, "authenticate", []interface{}{
		c.cfg.Database,
		c.cfg.Username,
		c.cfg.Password,
		map[string]interface{}{
			"base_location": c.cfg.BaseURL,
			"lang":          "es_ES",
			"tz":            "America/Bogota",
		},
	}, &reply)
	if err != nil {
		return 0, fmt.Errorf("odoo authenticate: %w", err)
	}

	// Odoo answers false (not a fault) on bad credentials.
	uid, ok := reply.(int64)
	if !ok || uid == 0 {
		return 0, fmt.Errorf("odoo authenticate: invalid credentials for %q", c.cfg.Username)
	}

	c.uid = uid
	c.logger.Info("odoo session established", "uid", uid, "database", c.cfg.Database)
	return uid, nil
}

// executeKw invokes models.execute_kw(db, uid, password, model, method, args, kwargs).
func (c *Client) executeKw(ctx context.Context, model, method string, args []interface{}, kwargs map[string]interface{}, reply interface{}) error {
	uid, err := c.authenticate(ctx)
	if err != nil {
		return err
	}

	params := []interface{}{
		c.cfg.Database,
		uid,
		c.cfg.Password,
		model,
		method,
		args,
	}
	if len(kwargs) > 0 {
		params = append(params, kwargs)
	}

	if err := c.call(ctx, c.object, "execute_kw", params, reply); err != nil {
		return fmt.Errorf("odoo %s.%s: %w", model, method, err)
	}
	return nil
}

// SearchRead implements Gateway.
func (c *Client) SearchRead(ctx context.Context, model string, domain []interface{}, opts SearchOptions) ([]Row, error) {
	kwargs := map[string]interface{}{}
	if len(opts.Fields) > 0 {
		kwargs["fields"] = opts.Fields
	}
	if opts.Limit > 0 {
		kwargs["limit"] = opts.Limit
	}
	if opts.Offset > 0 {
		kwargs["offset"] = opts.Offset
	}
	if opts.Order != "" {
		kwargs["order"] = opts.Order
	}

	var reply []Row
	if err := c.executeKw(ctx, model, "search_read", []interface{}{domain}, kwargs, &reply); err != nil {
		return nil, err
	}
	return reply, nil
}

// SearchCount implements Gateway.
func (c *Client) SearchCount(ctx context.Context, model string, domain []interface{}) (int, error) {
	var reply int64
	if err := c.executeKw(ctx, model, "search_count", []interface{}{domain}, nil, &reply); err != nil {
		return 0, err
	}
	return int(reply), nil
}

// Read implements Gateway.
func (c *Client) Read(ctx context.Context, model string, ids []int64, fields []string) ([]Row, error) {
	kwargs := map[string]interface{}{}
	if len(fields) > 0 {
		kwargs["fields"] = fields
	}

	var reply []Row
	if err := c.executeKw(ctx, model, "read", []interface{}{ids}, kwargs, &reply); err != nil {
		return nil, err
	}
	return reply, nil
}
