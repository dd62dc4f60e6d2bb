package resolver

import (
	"time"

	"github.com/rkbennett/logstash-output-opensearch/httpclient"
	"github.com/rkbennett/logstash-output-opensearch/logger"
	"github.com/rkbennett/logstash-output-opensearch/metrics"
	"github.com/rkbennett/logstash-output-opensearch/options"
	"github.com/rkbennett/logstash-output-opensearch/resilience"
)

// Dependencies are the external collaborators resolution wires into the
// resulting configuration.
type Dependencies struct {
	// Logger receives the verification-disabled warning and is attached to
	// the client configuration. Defaults to the standard logger.
	Logger *logger.Logger
	// Metrics is the optional sink recorded into by the client.
	Metrics *metrics.Sink
}

// Resolve turns the raw settings and host list into a validated client
// configuration and request policy. It never mutates its inputs; calling
// it twice with the same settings yields structurally equal results.
func Resolve(opts options.Options, hosts []httpclient.Host, deps Dependencies) (*httpclient.Config, *RequestPolicy, error) {
	log := deps.Logger
	if log == nil {
		log = logger.NewDefault()
	}
	log = log.WithComponent("resolver")

	paths := resolvePaths(opts)

	tlsSettings, err := resolveTLS(opts, hosts, log)
	if err != nil {
		return nil, nil, err
	}

	auth := resolveAuth(opts)

	policy, err := resolvePolicy(opts)
	if err != nil {
		return nil, nil, err
	}

	authType := opts.StringOr("auth_type", "")
	if auth != nil && authType == "" {
		authType = "basic"
	}

	cfg := &httpclient.Config{
		Hosts:                   hosts,
		PoolMax:                 opts.IntOr("pool_max", httpclient.DefaultPoolMax),
		PoolMaxPerRoute:         opts.IntOr("pool_max_per_route", httpclient.DefaultPoolMaxPerRoute),
		ValidateAfterInactivity: time.Duration(opts.IntOr("validate_after_inactivity", 10000)) * time.Millisecond,
		Compression:             opts.BoolOr("http_compression", false),
		Headers:                 opts.StringMap("custom_headers"),
		LegacyTemplate:          opts.BoolOr("legacy_template", true),
		Proxy:                   opts.StringOr("proxy", ""),
		TLS:                     tlsSettings,
		Paths:                   paths,
		Parameters:              opts.StringMap("parameters"),
		Auth:                    auth,
		AuthType:                authType,
		Timeout:                 opts.DurationOr("timeout", httpclient.DefaultTimeout),
		Sniffing:                opts.BoolOr("sniffing", false),
		SniffingDelay:           opts.DurationOr("sniffing_delay", 5*time.Second),
		Resurrect:               resilience.ResurrectConfig(opts.DurationOr("resurrect_delay", 5*time.Second)),
		TargetBulkBytes:         opts.Bytes("target_bulk_bytes", httpclient.DefaultTargetBulkBytes),
		Metrics:                 deps.Metrics,
		Logger:                  deps.Logger,
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	log.Debug("configuration resolved", logger.Fields(
		logger.FieldHosts, len(hosts),
		logger.FieldAction, policy.Action,
		logger.FieldPath, cfg.Paths.Bulk,
	))

	return cfg, policy, nil
}

// Build resolves the settings and hands the assembled configuration to the
// HTTP client constructor. A construction error is propagated unchanged.
func Build(opts options.Options, hosts []httpclient.Host, deps Dependencies) (*httpclient.Client, *RequestPolicy, error) {
	cfg, policy, err := Resolve(opts, hosts, deps)
	if err != nil {
		return nil, nil, err
	}
	client, err := httpclient.New(*cfg)
	if err != nil {
		return nil, nil, err
	}
	return client, policy, nil
}
