package xhttp

import (
	"fmt"
	"net/http"

	"github.com/garrettladley/wordclock/internal/version"
)

type wordclockTransport struct {
	base http.RoundTripper
}

var _ http.RoundTripper = (*wordclockTransport)(nil)

func (t *wordclockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set(version.Header, version.Get())
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}

// NewTransport returns an http.RoundTripper that tags requests with the
// wordclock User-Agent and version headers.
func NewTransport() http.RoundTripper {
	return &wordclockTransport{base: http.DefaultTransport}
}
