// Package upstream implements the HTTP clients for the two scheduling
// services the operations feed is aggregated from. Retries live here, in the
// transport; the aggregation layer above never retries.
package upstream

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"workshop-admin-api/internal/pkg/config"
	"workshop-admin-api/internal/pkg/fieldpath"

	"github.com/hashicorp/go-retryablehttp"
)

// StatusError is a non-2xx upstream response passed through unchanged; no
// structured taxonomy beyond the status code.
type StatusError struct {
	Service    string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s upstream returned status %d", e.Service, e.StatusCode)
}

// ValidationError carries an upstream 422 payload as a typed field tree so
// handlers can resolve messages by dotted path.
type ValidationError struct {
	Service string
	Fields  fieldpath.Node
}

func (e *ValidationError) Error() string {
	return e.Service + " upstream rejected the request"
}

func newHTTPClient(cfg config.UpstreamConfig) *http.Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.RetryMax
	rc.HTTPClient.Timeout = cfg.Timeout
	rc.Logger = nil
	// Hand the final 5xx response back once retries are exhausted so
	// responseError can map its status; the default handler swallows it.
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	return rc.StandardClient()
}

func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimRight(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "http://" + baseURL
	}
	return baseURL
}

// responseError maps a non-2xx response to an error, draining the body so the
// transport can reuse the connection.
func responseError(service string, resp *http.Response) error {
	if resp.StatusCode == http.StatusUnprocessableEntity {
		body, err := io.ReadAll(resp.Body)
		if err == nil {
			if node, decodeErr := fieldpath.Decode(body); decodeErr == nil {
				return &ValidationError{Service: service, Fields: node}
			}
		}
		return &StatusError{Service: service, StatusCode: resp.StatusCode}
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return &StatusError{Service: service, StatusCode: resp.StatusCode}
}
