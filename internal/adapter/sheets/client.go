package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	domainErrors "github.com/polkiloo/mentorcrm/internal/domain/errors"
	"github.com/polkiloo/mentorcrm/internal/domain/model"
	"github.com/polkiloo/mentorcrm/internal/domain/repository"
)

// Client reads and appends record store rows.
type Client interface {
	repository.RecordReader
	repository.RecordWriter
}

// Options tune the HTTP client.
type Options struct {
	// Timeout bounds each request; zero leaves requests unbounded.
	Timeout time.Duration
	// Acknowledge makes Append inspect the response status.
	Acknowledge bool
}

// HTTPClient talks to spreadsheet script endpoints over HTTP.
type HTTPClient struct {
	httpClient  *http.Client
	acknowledge bool
	logger      *slog.Logger
}

// NewHTTPClient creates a record store client.
func NewHTTPClient(opts Options, logger *slog.Logger) *HTTPClient {
	return &HTTPClient{
		httpClient:  &http.Client{Timeout: opts.Timeout},
		acknowledge: opts.Acknowledge,
		logger:      logger,
	}
}

// FetchRows loads every row of the collection behind rawURL.
// An empty URL yields an empty collection.
func (c *HTTPClient) FetchRows(ctx context.Context, rawURL string) ([]model.Row, error) {
	if rawURL == "" {
		return []model.Row{}, nil
	}
	endpoint, err := parseEndpoint(rawURL)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("record store read failed",
			slog.String("url", endpoint),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)
		return nil, fmt.Errorf("record store error: %s", resp.Status)
	}

	return decodeRows(resp.Body)
}

// Append posts payload to rawURL. Unless acknowledgements are enabled the
// response is ignored and the receipt stays unconfirmed.
func (c *HTTPClient) Append(ctx context.Context, rawURL string, payload any) (repository.Receipt, error) {
	receipt := repository.Receipt{Endpoint: rawURL}
	if rawURL == "" {
		return receipt, domainErrors.ErrEndpointNotConfigured
	}
	endpoint, err := parseEndpoint(rawURL)
	if err != nil {
		return receipt, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return receipt, fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return receipt, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return receipt, err
	}
	defer resp.Body.Close()

	if !c.acknowledge {
		_, _ = io.Copy(io.Discard, resp.Body)
		return receipt, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("record store write rejected",
			slog.String("url", endpoint),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(respBody)),
		)
		return receipt, fmt.Errorf("record store error: %s", resp.Status)
	}
	receipt.Confirmed = true
	return receipt, nil
}

func parseEndpoint(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse record store url: %w", err)
	}
	if !parsed.IsAbs() {
		return "", fmt.Errorf("record store url must be absolute")
	}
	return parsed.String(), nil
}

func decodeRows(r io.Reader) ([]model.Row, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	var raw any
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode rows: %w", err)
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, domainErrors.ErrUnexpectedPayload
	}

	rows := make([]model.Row, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			rows = append(rows, model.Row(obj))
		}
	}
	return rows, nil
}
