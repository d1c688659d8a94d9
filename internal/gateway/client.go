// Package gateway implements the HTTP client for the catalog API.
// It normalizes success and error shapes so the stores can treat every
// network operation identically.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"catalogctl/internal/core/catalog"
)

// Credentials carry the session token explicitly into each authenticated
// call. There is no ambient token lookup.
type Credentials struct {
	Token string
	Email string
}

// ListQuery parameterizes a product list request.
type ListQuery struct {
	Page     int
	PageSize int
	Search   string
}

// Options configures optional client behavior.
type Options struct {
	Timeout   time.Duration
	RateLimit float64 // requests per second, 0 = default
	Logger    zerolog.Logger
}

// Client issues requests against a catalog API base URL.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	log     zerolog.Logger
}

// New creates a new API client for the given base URL.
func New(baseURL string, opts Options) *Client {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	limit := opts.RateLimit
	if limit <= 0 {
		limit = 5
	}

	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(limit), int(limit)+1),
		log:     opts.Logger,
	}
}

// Login exchanges an email for a session token.
// POST /auth {email} -> {token}.
func (c *Client) Login(ctx context.Context, email string) (Credentials, error) {
	body, err := c.do(ctx, http.MethodPost, "/auth", "", map[string]string{"email": email})
	if err != nil {
		return Credentials{}, err
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return Credentials{}, fmt.Errorf("decode login response: %w", err)
	}
	if resp.Token == "" {
		return Credentials{}, fmt.Errorf("login response missing token")
	}

	return Credentials{Token: resp.Token, Email: email}, nil
}

// ListProducts fetches one page of products, normalized to a ProductPage.
func (c *Client) ListProducts(ctx context.Context, creds Credentials, q ListQuery) (ProductPage, error) {
	if creds.Token == "" {
		return ProductPage{}, ErrMissingToken
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = 10
	}

	params := url.Values{}
	params.Set("offset", strconv.Itoa((page-1)*pageSize))
	params.Set("limit", strconv.Itoa(pageSize))
	if q.Search != "" {
		params.Set("search", q.Search)
	}

	body, err := c.do(ctx, http.MethodGet, "/products?"+params.Encode(), creds.Token, nil)
	if err != nil {
		return ProductPage{}, err
	}

	return decodeProductPage(body)
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, creds Credentials, id int64) (catalog.Product, error) {
	if creds.Token == "" {
		return catalog.Product{}, ErrMissingToken
	}

	body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), creds.Token, nil)
	if err != nil {
		return catalog.Product{}, err
	}

	var product catalog.Product
	if err := json.Unmarshal(body, &product); err != nil {
		return catalog.Product{}, fmt.Errorf("decode product: %w", err)
	}
	return product, nil
}

// CreateProduct creates a product from a draft. The returned entity
// carries the server-assigned id and timestamps.
func (c *Client) CreateProduct(ctx context.Context, creds Credentials, draft catalog.Draft) (catalog.Product, error) {
	if creds.Token == "" {
		return catalog.Product{}, ErrMissingToken
	}

	body, err := c.do(ctx, http.MethodPost, "/products", creds.Token, draft)
	if err != nil {
		return catalog.Product{}, err
	}

	var product catalog.Product
	if err := json.Unmarshal(body, &product); err != nil {
		return catalog.Product{}, fmt.Errorf("decode created product: %w", err)
	}
	return product, nil
}

// UpdateProduct updates a product and returns the server's view of it.
func (c *Client) UpdateProduct(ctx context.Context, creds Credentials, id int64, draft catalog.Draft) (catalog.Product, error) {
	if creds.Token == "" {
		return catalog.Product{}, ErrMissingToken
	}

	body, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), creds.Token, draft)
	if err != nil {
		return catalog.Product{}, err
	}

	var product catalog.Product
	if err := json.Unmarshal(body, &product); err != nil {
		return catalog.Product{}, fmt.Errorf("decode updated product: %w", err)
	}
	return product, nil
}

// DeleteProduct deletes a product by id.
func (c *Client) DeleteProduct(ctx context.Context, creds Credentials, id int64) error {
	if creds.Token == "" {
		return ErrMissingToken
	}

	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), creds.Token, nil)
	return err
}

// do issues a single request and returns the response body. Non-2xx
// responses come back as *APIError.
func (c *Client) do(ctx context.Context, method, path string, token string, payload any) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Str("method", method).Str("path", path).Str("request_id", requestID).Err(err).Msg("request failed")
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request complete")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, body)
	}

	return body, nil
}
