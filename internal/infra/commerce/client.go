// Package commerce implements the domain gateways over the remote commerce
// API's REST surface.
package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"neocart/config"
	"neocart/internal/domain/entity"
	"neocart/internal/domain/gateway"

	"github.com/pkg/errors"
)

// Client is the shared HTTP transport for every gateway implementation.
// Mutating calls attach the bearer credential; read calls attach it when one
// is supplied.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient is the constructor for the commerce API client.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.Commerce.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Commerce.Timeout},
		logger:     logger,
	}
}

// upstreamError is a non-2xx response from the commerce API, carrying the
// server's reason verbatim.
type upstreamError struct {
	status int
	detail string
}

func (e *upstreamError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.status, e.detail)
}

// do performs one round trip. body is JSON-encoded when non-nil; the response
// body is decoded into out when non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, credential entity.Credential, body any, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if !credential.IsZero() {
		req.Header.Set("Authorization", "Bearer "+credential.String())
	}

	return c.send(req, out)
}

// send executes a prepared request and decodes the response.
func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Commerce API unreachable", slog.String("method", req.Method), slog.String("path", req.URL.Path), slog.Any("error", err))

		return errors.Wrap(err, "commerce api request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &upstreamError{status: resp.StatusCode, detail: decodeDetail(data)}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, "failed to decode response body")
	}

	return nil
}

// decodeDetail extracts the server's rejection reason from an error body.
func decodeDetail(data []byte) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Detail != "" {
		return body.Detail
	}

	return strings.TrimSpace(string(data))
}

// translate maps an upstream response to the domain error contract: a
// declined credential, a validation rejection carrying the server's reason
// verbatim, or a wrapped transport failure.
func translate(err error) error {
	if err == nil {
		return nil
	}

	var upstream *upstreamError
	if errors.As(err, &upstream) {
		switch {
		case upstream.status == http.StatusUnauthorized || upstream.status == http.StatusForbidden:
			return errors.Wrap(gateway.ErrCredentialRejected, upstream.detail)
		case upstream.status >= 400 && upstream.status < 500:
			return &gateway.RejectionError{Reason: upstream.detail}
		}
	}

	return err
}

// isStatus reports whether err is an upstream response with the given code.
func isStatus(err error, status int) bool {
	var upstream *upstreamError

	return errors.As(err, &upstream) && upstream.status == status
}
