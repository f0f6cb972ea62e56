package gate

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	go_json "github.com/goccy/go-json"
)

// getJSON fetches u and decodes the body into result.
func getJSON(ctx context.Context, c *http.Client, p Provider, u string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &NetworkError{Provider: p, Op: "request", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.Do(req)
	if err != nil {
		return &NetworkError{Provider: p, Op: "get", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &NetworkError{Provider: p, Op: "get", Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Provider: p, Op: "read", Status: resp.StatusCode, Err: err}
	}
	if err := go_json.Unmarshal(body, result); err != nil {
		return &NetworkError{Provider: p, Op: "decode", Status: resp.StatusCode, Err: fmt.Errorf("%w\nbody: %s", err, string(body))}
	}
	return nil
}

func joinURL(base string, parts ...string) string {
	return strings.TrimRight(base, "/") + "/" + strings.Join(parts, "/")
}
