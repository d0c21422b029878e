package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rmello/shopfront/internal/models"
)

// Client talks to the inventory service REST API. It performs no retries;
// a failed call is reported once and the operation stays retryable.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logrus.Logger
}

// NewClient creates a client for the API rooted at baseURL, e.g.
// "http://localhost:8080". A zero timeout leaves the transport default.
func NewClient(baseURL string, timeout time.Duration, log *logrus.Logger) *Client {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

type productsEnvelope struct {
	Status string           `json:"status,omitempty"`
	Data   []models.Product `json:"data,omitempty"`
}

type pageEnvelope struct {
	Content []models.Product `json:"content"`
}

// Products fetches the full dashboard snapshot from GET /api/v1/products,
// which wraps the list as {status, data}.
func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var env productsEnvelope
	if err := c.getJSON(ctx, "/api/v1/products", &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// StorefrontProducts fetches one page of the storefront snapshot from
// GET /api/v1/storefront/products, which wraps the list as {content}.
func (c *Client) StorefrontProducts(ctx context.Context, page, size int) ([]models.Product, error) {
	endpoint := "/api/v1/storefront/products?page=" + strconv.Itoa(page) + "&size=" + strconv.Itoa(size)
	var env pageEnvelope
	if err := c.getJSON(ctx, endpoint, &env); err != nil {
		return nil, err
	}
	return env.Content, nil
}

// PlaceOrder posts the order and returns the created order's identifier.
// A rejection is returned as *OrderError with the server message.
func (c *Client) PlaceOrder(ctx context.Context, req models.OrderRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("encoding order: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/orders", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", &OrderError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var rejection struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&rejection)
		return "", &OrderError{Message: rejection.Message}
	}

	var created models.OrderSummary
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", &OrderError{Message: "unreadable order confirmation"}
	}
	return created.ID, nil
}

// MyOrders returns the order history for a customer email, newest first as
// served by the backend.
func (c *Client) MyOrders(ctx context.Context, email string) ([]models.OrderSummary, error) {
	endpoint := "/api/v1/storefront/my-orders?email=" + url.QueryEscape(email)
	var orders []models.OrderSummary
	if err := c.getJSON(ctx, endpoint, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Trending returns the most viewed products, ordered by view count.
func (c *Client) Trending(ctx context.Context) ([]models.TrendingEntry, error) {
	var entries []models.TrendingEntry
	if err := c.getJSON(ctx, "/api/v1/analytics/trending", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// TopRated returns the best reviewed products.
func (c *Client) TopRated(ctx context.Context) ([]models.RatedProduct, error) {
	var entries []models.RatedProduct
	if err := c.getJSON(ctx, "/api/v1/analytics/top-rated", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Reviews returns the reviews for a product, newest first.
func (c *Client) Reviews(ctx context.Context, productID int) ([]models.Review, error) {
	var reviews []models.Review
	if err := c.getJSON(ctx, fmt.Sprintf("/api/v1/reviews/%d", productID), &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// PostReview submits a review for a product.
func (c *Client) PostReview(ctx context.Context, productID int, review models.Review) error {
	body, err := json.Marshal(review)
	if err != nil {
		return fmt.Errorf("encoding review: %w", err)
	}

	endpoint := fmt.Sprintf("/api/v1/reviews/%d", productID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &FetchError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{Endpoint: endpoint, Status: resp.StatusCode}
	}
	return nil
}

// LogActivity records a user action for the analytics service. Activity
// logging is best effort; errors are logged and swallowed.
func (c *Client) LogActivity(ctx context.Context, event models.ActivityEvent) {
	if event.Timestamp == "" {
		event.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	body, err := json.Marshal(event)
	if err != nil {
		c.log.WithError(err).Debug("activity event not encodable")
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/activity", bytes.NewReader(body))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithError(err).WithField("action", event.Action).Debug("log activity failed")
		return
	}
	resp.Body.Close()
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &FetchError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{Endpoint: endpoint, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &FetchError{Endpoint: endpoint, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}
