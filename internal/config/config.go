// Package config loads and validates the connector's configuration file.
// The file is a JSON object; its path comes from the --config flag or the
// CONNECTOR_CONFIG environment variable. REDIS_URL is the one setting read
// from the environment instead of the file, so deployments can inject
// credentials without rewriting config files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// DefaultPath is used when neither --config nor CONNECTOR_CONFIG is set.
const DefaultPath = "app_config.json"

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "CONNECTOR_CONFIG"

// EnvRedisURL supplies the cache address, e.g. "redis://127.0.0.1:6379".
const EnvRedisURL = "REDIS_URL"

// ErrInvalidConfig wraps every validation failure reported by Load.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// AppConfig is immutable after Load.
type AppConfig struct {
	ServiceID      string `json:"service_id"`
	ServiceName    string `json:"service_name"`
	HTTPHost       string `json:"http_host"`
	HTTPPort       int    `json:"http_port"`
	GRPCHost       string `json:"grpc_host"`
	GRPCPort       int    `json:"grpc_port"`
	RefreshTTLSecs int    `json:"refresh_ttl_secs"`
	ConsulHost     string `json:"consul_host"`
	ConsulPort     int    `json:"consul_port"`
}

// ResolvePath picks the config file location: explicit flag value first,
// then the CONNECTOR_CONFIG environment variable, then DefaultPath.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(EnvConfigPath); v != "" {
		return v
	}
	return DefaultPath
}

// Load reads and validates the configuration file at path. A missing
// service_id is filled with a fresh UUID so every node gets a unique
// registration without operator bookkeeping.
func Load(path string) (*AppConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if cfg.ServiceID == "" {
		cfg.ServiceID = uuid.NewString()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *AppConfig) validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("%w: service_name is required", ErrInvalidConfig)
	}
	if c.HTTPHost == "" {
		return fmt.Errorf("%w: http_host is required", ErrInvalidConfig)
	}
	if c.GRPCHost == "" {
		return fmt.Errorf("%w: grpc_host is required", ErrInvalidConfig)
	}
	if c.ConsulHost == "" {
		return fmt.Errorf("%w: consul_host is required", ErrInvalidConfig)
	}
	for name, port := range map[string]int{
		"http_port":   c.HTTPPort,
		"grpc_port":   c.GRPCPort,
		"consul_port": c.ConsulPort,
	} {
		if port < 1 || port > 65535 {
			return fmt.Errorf("%w: %s must be a valid port number", ErrInvalidConfig, name)
		}
	}
	if c.RefreshTTLSecs < 1 {
		return fmt.Errorf("%w: refresh_ttl_secs must be positive", ErrInvalidConfig)
	}
	return nil
}

// HTTPAddr is the listen address of the WebSocket/health server.
func (c *AppConfig) HTTPAddr() string {
	return net.JoinHostPort(c.HTTPHost, strconv.Itoa(c.HTTPPort))
}

// GRPCAddr is the listen address of the dispatch gRPC server.
func (c *AppConfig) GRPCAddr() string {
	return net.JoinHostPort(c.GRPCHost, strconv.Itoa(c.GRPCPort))
}

// ConsulBaseURL is the directory's HTTP API root.
func (c *AppConfig) ConsulBaseURL() string {
	return "http://" + net.JoinHostPort(c.ConsulHost, strconv.Itoa(c.ConsulPort))
}

// Identity is the value this node writes into the shared online hash so
// other nodes can address it.
func (c *AppConfig) Identity() string {
	return c.ServiceName + ":" + c.ServiceID
}

// RefreshTTL is the registration TTL as a duration.
func (c *AppConfig) RefreshTTL() time.Duration {
	return time.Duration(c.RefreshTTLSecs) * time.Second
}

// RedisURL returns the cache address from the environment.
func RedisURL() (string, error) {
	v := os.Getenv(EnvRedisURL)
	if v == "" {
		return "", fmt.Errorf("%w: %s environment variable is required", ErrInvalidConfig, EnvRedisURL)
	}
	return v, nil
}
