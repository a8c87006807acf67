package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/ingdavann/bookverse-project/internal/domain"
)

const (
	// DefaultBaseURL is the public itbook.store API root.
	DefaultBaseURL = "https://api.itbook.store/1.0"

	defaultTimeout = 30 * time.Second
	userAgent      = "Bookverse/1.0"
)

// Client implements domain.CatalogClient against the itbook.store API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ domain.CatalogClient = (*Client)(nil)

// NewClient creates a catalog client. An empty baseURL selects the
// public API.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// New returns the current new-release listing.
func (c *Client) New(ctx context.Context) ([]domain.Book, error) {
	body, err := c.doRequest(ctx, "/new")
	if err != nil {
		return nil, err
	}

	resp, err := c.parseSearchResponse(body)
	if err != nil {
		return nil, err
	}

	return mapBooks(resp.Books), nil
}

// Search returns one page of keyword search results. Page 0 or 1 is the
// first page.
func (c *Client) Search(ctx context.Context, query string, page int) (*domain.SearchResult, error) {
	path := "/search/" + url.PathEscape(query)
	if page > 1 {
		path = fmt.Sprintf("%s/%d", path, page)
	}

	body, err := c.doRequest(ctx, path)
	if err != nil {
		return nil, err
	}

	resp, err := c.parseSearchResponse(body)
	if err != nil {
		return nil, err
	}

	return mapSearchResult(resp), nil
}

// Book returns the full detail record for an isbn13.
func (c *Client) Book(ctx context.Context, isbn13 string) (*domain.BookDetail, error) {
	body, err := c.doRequest(ctx, "/books/"+url.PathEscape(isbn13))
	if err != nil {
		return nil, err
	}

	var dto bookDetailDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if dto.Error != "0" {
		c.logger.Debug("catalog reported error", "isbn13", isbn13, "code", dto.Error)
		return nil, &domain.CatalogError{Code: dto.Error}
	}

	return mapBookDetail(&dto), nil
}

// doRequest performs a GET against the catalog API.
func (c *Client) doRequest(ctx context.Context, path string) ([]byte, error) {
	reqURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("catalog request", "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("catalog request failed", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrBookNotInCatalog
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("catalog request error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return body, nil
}

// parseSearchResponse decodes a listing body and checks the in-band
// error sentinel.
func (c *Client) parseSearchResponse(body []byte) (*searchResponse, error) {
	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if resp.Error != "0" {
		return nil, &domain.CatalogError{Code: resp.Error}
	}
	return &resp, nil
}
