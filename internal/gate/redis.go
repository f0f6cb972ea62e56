package gate

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

var _ Querier = (*Redis)(nil)

type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// Redis reads a light state that some other process mirrors into a key.
type Redis struct {
	client stringGetter
	closer func() error
	key    string
}

func NewRedis(rawURL, key string) (*Redis, error) {
	opt, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	client := redis.NewClient(opt)
	return &Redis{client: client, closer: client.Close, key: key}, nil
}

func (r *Redis) AnyLightOn(ctx context.Context) (bool, error) {
	v, err := r.client.Get(ctx, r.key).Result()
	if err != nil {
		return false, &NetworkError{Provider: ProviderRedis, Op: "get", Err: err}
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "1", "true":
		return true, nil
	case "off", "0", "false":
		return false, nil
	default:
		return false, &NetworkError{Provider: ProviderRedis, Op: "decode", Err: fmt.Errorf("key %q holds %q", r.key, v)}
	}
}

func (r *Redis) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer()
}
