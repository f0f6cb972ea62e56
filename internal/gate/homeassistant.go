package gate

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"
)

var _ Querier = (*HomeAssistant)(nil)

// HomeAssistant reads one entity, usually a light group, through the REST
// API using a long-lived access token.
type HomeAssistant struct {
	url    string
	client *http.Client
}

func NewHomeAssistant(baseURL, token, entity string, c *http.Client) *HomeAssistant {
	authed := *c
	authed.Transport = &oauth2.Transport{
		Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
		Base:   c.Transport,
	}
	return &HomeAssistant{
		url:    joinURL(baseURL, "api", "states", url.PathEscape(entity)),
		client: &authed,
	}
}

type haState struct {
	EntityID string `json:"entity_id"`
	State    string `json:"state"`
}

func (h *HomeAssistant) AnyLightOn(ctx context.Context) (bool, error) {
	var s haState
	if err := getJSON(ctx, h.client, ProviderHomeAssistant, h.url, &s); err != nil {
		return false, err
	}
	switch s.State {
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return false, &NetworkError{
			Provider: ProviderHomeAssistant,
			Op:       "decode",
			Err:      fmt.Errorf("entity %q is %q", s.EntityID, s.State),
		}
	}
}
