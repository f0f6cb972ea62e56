package gate

import (
	"context"
	"net/http"
	"net/url"
)

var _ Querier = (*Hue)(nil)

// Hue reads a room or zone from a Philips Hue bridge.
type Hue struct {
	url    string
	client *http.Client
}

func NewHue(bridgeURL, username, group string, c *http.Client) *Hue {
	return &Hue{
		url:    joinURL(bridgeURL, "api", url.PathEscape(username), "groups", url.PathEscape(group)),
		client: c,
	}
}

type hueGroup struct {
	State *struct {
		AllOn bool `json:"all_on"`
		AnyOn bool `json:"any_on"`
	} `json:"state"`
}

func (h *Hue) AnyLightOn(ctx context.Context) (bool, error) {
	var g hueGroup
	if err := getJSON(ctx, h.client, ProviderHue, h.url, &g); err != nil {
		return false, err
	}
	// the bridge answers 200 with an error list for bad users and groups
	if g.State == nil {
		return false, &NetworkError{Provider: ProviderHue, Op: "decode", Status: http.StatusOK}
	}
	return g.State.AnyOn, nil
}
