package salesapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"app/models"
)

var (
	// ErrUpstream indicates the orders API could not be reached or
	// answered with a failure status.
	ErrUpstream = errors.New("sales API request failed")
	// ErrBadPayload indicates the orders API answered with a shape we
	// do not recognize.
	ErrBadPayload = errors.New("sales API returned invalid payload")
)

// Client fetches recent orders from the remote orders API, serving
// cached data while it is fresh.
type Client struct {
	url      string
	http     *http.Client
	cache    *Cache
	validate *validator.Validate
}

// NewClient creates a Client against url. The cache is injected so
// tests can clear it or pre-seed it.
func NewClient(url string, cache *Cache) *Client {
	return &Client{
		url: url,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
		cache:    cache,
		validate: validator.New(),
	}
}

// FetchRecentOrders returns recent orders, hitting the network only
// when the cache has expired. The API may answer with a top-level
// array or an object carrying an "orders" key; anything else is a
// payload error. Individual records failing schema validation are
// dropped, not fatal.
func (c *Client) FetchRecentOrders(ctx context.Context) ([]models.Order, error) {
	if orders, ok := c.cache.Get(); ok {
		return orders, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	orders, err := decodeOrders(body)
	if err != nil {
		return nil, err
	}

	orders = c.validOrders(orders)
	c.cache.Set(orders)
	return orders, nil
}

// decodeOrders accepts either a top-level array or {"orders": [...]}.
func decodeOrders(body []byte) ([]models.Order, error) {
	var direct []models.Order
	if err := json.Unmarshal(body, &direct); err == nil {
		return direct, nil
	}

	var wrapped struct {
		Orders *[]models.Order `json:"orders"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil || wrapped.Orders == nil {
		return nil, fmt.Errorf("%w: missing 'orders' key or list", ErrBadPayload)
	}
	return *wrapped.Orders, nil
}

// validOrders applies the order schema at the gateway boundary,
// dropping records that fail it.
func (c *Client) validOrders(orders []models.Order) []models.Order {
	valid := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if err := c.validate.Struct(o); err != nil {
			log.Printf("⚠️  [SALES API] Dropping invalid order record: %v", err)
			continue
		}
		valid = append(valid, o)
	}
	return valid
}
