package httpclient

import (
	"time"

	"github.com/rkbennett/logstash-output-opensearch/logger"
	"github.com/rkbennett/logstash-output-opensearch/metrics"
	"github.com/rkbennett/logstash-output-opensearch/resilience"
	"github.com/rkbennett/logstash-output-opensearch/validation"
)

// Connection pool and timeout defaults mirror the output plugin's settings.
const (
	DefaultPoolMax                 = 1000
	DefaultPoolMaxPerRoute         = 100
	DefaultValidateAfterInactivity = 10 * time.Second
	DefaultTimeout                 = 60 * time.Second
	DefaultTargetBulkBytes         = 20 * 1024 * 1024
)

// Paths holds the normalized request paths derived from the user's base path.
type Paths struct {
	// Base is the connection base path. Empty means the server root.
	Base string
	// Bulk is the path bulk submissions are posted to.
	Bulk string
	// Sniffing is the path used for node discovery.
	Sniffing string
	// Healthcheck is the path probed to check node liveness.
	Healthcheck string
}

// BasicAuth carries resolved, percent-encoded credentials.
type BasicAuth struct {
	// User is the percent-encoded username.
	User string
	// Password is the percent-encoded password.
	Password string
}

// Config is the fully resolved client configuration. It is produced once by
// the resolver and never mutated afterwards.
type Config struct {
	// Hosts are the target nodes.
	Hosts []Host `validate:"min=1"`

	// PoolMax caps the total connection pool size.
	PoolMax int `mapstructure:"pool_max" validate:"gt=0"`

	// PoolMaxPerRoute caps connections per target host.
	PoolMaxPerRoute int `mapstructure:"pool_max_per_route" validate:"gt=0"`

	// ValidateAfterInactivity is how long an idle pooled connection may sit
	// before it is re-checked.
	ValidateAfterInactivity time.Duration `mapstructure:"validate_after_inactivity"`

	// Compression enables gzip on request bodies.
	Compression bool `mapstructure:"http_compression"`

	// Headers are custom headers applied to every request. Never nil.
	Headers map[string]string `mapstructure:"custom_headers"`

	// LegacyTemplate selects the legacy index-template endpoint.
	LegacyTemplate bool `mapstructure:"legacy_template"`

	// Proxy is an optional proxy URL. Empty disables proxying.
	Proxy string `mapstructure:"proxy" validate:"omitempty,url"`

	// TLS holds the resolved TLS settings. Nil means TLS was neither forced
	// nor requested; a non-nil value with Enabled=false means explicitly
	// disabled.
	TLS *TLSSettings

	// Paths are the normalized request paths.
	Paths Paths

	// Parameters are passed through as query parameters on every request.
	Parameters map[string]string `mapstructure:"parameters"`

	// Auth carries resolved basic credentials. Nil means no authentication.
	Auth *BasicAuth

	// AuthType tags which authentication mechanism produced Auth.
	AuthType string `mapstructure:"auth_type" validate:"omitempty,oneof=basic"`

	// Timeout is the per-request timeout.
	Timeout time.Duration `mapstructure:"timeout"`

	// Sniffing enables node discovery, probing Paths.Sniffing.
	Sniffing bool `mapstructure:"sniffing"`

	// SniffingDelay is the interval between discovery rounds.
	SniffingDelay time.Duration `mapstructure:"sniffing_delay"`

	// Resurrect is the retry policy for re-probing dead hosts.
	Resurrect resilience.RetryConfig

	// TargetBulkBytes flushes a bulk once its payload reaches this size.
	TargetBulkBytes int64 `mapstructure:"target_bulk_bytes" validate:"gt=0"`

	// Metrics is the sink bulk submissions are recorded into. Optional.
	Metrics *metrics.Sink

	// Logger receives client-side log lines. Optional.
	Logger *logger.Logger
}

// ApplyDefaults fills in zero-value fields with the plugin's defaults.
func (c *Config) ApplyDefaults() {
	if c.PoolMax <= 0 {
		c.PoolMax = DefaultPoolMax
	}
	if c.PoolMaxPerRoute <= 0 {
		c.PoolMaxPerRoute = DefaultPoolMaxPerRoute
	}
	if c.ValidateAfterInactivity <= 0 {
		c.ValidateAfterInactivity = DefaultValidateAfterInactivity
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.TargetBulkBytes <= 0 {
		c.TargetBulkBytes = DefaultTargetBulkBytes
	}
	if c.Headers == nil {
		c.Headers = map[string]string{}
	}
}

// Validate checks that the configuration is consistent.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if c.TLS != nil {
		if err := c.TLS.Validate(); err != nil {
			return err
		}
	}
	return nil
}
