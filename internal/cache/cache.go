// Package cache wraps the shared Redis-compatible store the connector
// cluster coordinates through. The well-known hash "user:connector" maps
// each online user to the node holding their session.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// OnlineUsersKey is the cluster-wide hash of user_id → "<service_name>:<service_id>".
const OnlineUsersKey = "user:connector"

// ErrUnexpectedResponse is returned when the store answers a command with a
// value outside its documented range (e.g. an HSET reply other than 0 or 1).
var ErrUnexpectedResponse = errors.New("cache: unexpected response")

// Cache is safe for concurrent use; the underlying client pools connections.
type Cache struct {
	client *redis.Client
	logger *zap.Logger
}

// New connects to the store at url (redis:// form) and verifies the
// connection with a ping.
func New(ctx context.Context, url string, logger *zap.Logger) (*Cache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("cache: parse url: %w", err)
	}

	c := &Cache{
		client: redis.NewClient(opts),
		logger: logger.Named("cache"),
	}
	if err := c.Ping(ctx); err != nil {
		_ = c.client.Close()
		return nil, err
	}
	return c, nil
}

// Ping checks store liveness.
func (c *Cache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("cache: ping: %w", err)
	}
	return nil
}

// SetIfAbsent sets key to value only if it does not exist, reporting whether
// the write took effect. A non-zero ttl rides on the same SET NX command, so
// the expiry is applied only when the set succeeded and a losing writer never
// touches the winner's expiry.
func (c *Cache) SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	set, err := c.client.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("cache: setnx %s: %w", key, err)
	}
	return set, nil
}

// HashSet writes hash field to value, reporting whether the field was newly
// created. The HSET reply distinguishes creation (1) from update (0);
// anything else is a protocol violation.
func (c *Cache) HashSet(ctx context.Context, key, field, value string) (bool, error) {
	n, err := c.client.HSet(ctx, key, field, value).Result()
	if err != nil {
		return false, fmt.Errorf("cache: hset %s %s: %w", key, field, err)
	}
	switch n {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("cache: hset %s %s: %w: %d", key, field, ErrUnexpectedResponse, n)
	}
}

// HashDelete removes a hash field, reporting whether it existed.
func (c *Cache) HashDelete(ctx context.Context, key, field string) (bool, error) {
	n, err := c.client.HDel(ctx, key, field).Result()
	if err != nil {
		return false, fmt.Errorf("cache: hdel %s %s: %w", key, field, err)
	}
	switch n {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("cache: hdel %s %s: %w: %d", key, field, ErrUnexpectedResponse, n)
	}
}

// Close releases the connection pool.
func (c *Cache) Close() error {
	return c.client.Close()
}
