package httpclient

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/net/http2"

	"github.com/rkbennett/logstash-output-opensearch/logger"
)

// Client is the HTTP connection layer for the output. It owns a pooled
// transport configured from a resolved Config.
type Client struct {
	id         string
	httpClient *http.Client
	config     Config
	log        *logger.Logger
}

// New creates a client from a resolved configuration. The configuration is
// validated before any resource is allocated; a validation failure is
// returned unchanged to the caller.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConns = cfg.PoolMax
	transport.MaxConnsPerHost = cfg.PoolMaxPerRoute
	transport.MaxIdleConnsPerHost = cfg.PoolMaxPerRoute
	transport.IdleConnTimeout = cfg.ValidateAfterInactivity
	transport.DisableCompression = !cfg.Compression

	if cfg.Proxy != "" {
		proxyURL, err := url.Parse(cfg.Proxy)
		if err != nil {
			return nil, fmt.Errorf("parse proxy %q: %w", cfg.Proxy, err)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	if cfg.TLS != nil {
		tlsCfg, err := cfg.TLS.Build()
		if err != nil {
			return nil, err
		}
		if tlsCfg != nil {
			transport.TLSClientConfig = tlsCfg
			if err := http2.ConfigureTransport(transport); err != nil {
				return nil, fmt.Errorf("configure http2: %w", err)
			}
		}
	}

	log := cfg.Logger
	if log == nil {
		log = logger.NewDefault()
	}

	c := &Client{
		id: uuid.NewString(),
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		config: cfg,
		log:    log.WithComponent("httpclient"),
	}

	c.log.Debug("client constructed", logger.Fields(
		logger.FieldHosts, len(cfg.Hosts),
		"pool_max", cfg.PoolMax,
		"tls", cfg.TLS != nil && cfg.TLS.Enabled,
	))

	return c, nil
}

// ID returns the client instance identifier.
func (c *Client) ID() string { return c.id }

// Config returns the resolved configuration the client was built from.
func (c *Client) Config() Config { return c.config }

// Do executes a request against the given host, applying the configured
// base path, parameters, headers, auth, and compression.
func (c *Client) Do(ctx context.Context, host Host, req Request) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, host, req)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, NewTimeoutError(err)
		}
		return nil, NewConnectionError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewConnectionError(fmt.Errorf("read response body: %w", err))
	}

	result := &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
	}
	if classErr := ClassifyStatusCode(resp.StatusCode, body); classErr != nil {
		return result, classErr
	}
	return result, nil
}

// Healthcheck probes the healthcheck path on the given host.
func (c *Client) Healthcheck(ctx context.Context, host Host) error {
	_, err := c.Do(ctx, host, Request{
		Method: http.MethodHead,
		Path:   c.config.Paths.Healthcheck,
	})
	return err
}

// Close releases idle connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// buildRequest assembles the http.Request for a host.
func (c *Client) buildRequest(ctx context.Context, host Host, req Request) (*http.Request, error) {
	target := host.URL() + joinPath(c.config.Paths.Base, req.Path)

	var body io.Reader
	if len(req.Body) > 0 {
		if c.config.Compression {
			var buf bytes.Buffer
			zw := gzip.NewWriter(&buf)
			if _, err := zw.Write(req.Body); err != nil {
				return nil, fmt.Errorf("compress request body: %w", err)
			}
			if err := zw.Close(); err != nil {
				return nil, fmt.Errorf("compress request body: %w", err)
			}
			body = &buf
		} else {
			body = bytes.NewReader(req.Body)
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	q := httpReq.URL.Query()
	for k, v := range c.config.Parameters {
		q.Set(k, v)
	}
	for k, v := range req.Query {
		q.Set(k, v)
	}
	httpReq.URL.RawQuery = q.Encode()

	for k, v := range c.config.Headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	if len(req.Body) > 0 && c.config.Compression {
		httpReq.Header.Set("Content-Encoding", "gzip")
	}

	if c.config.Auth != nil {
		httpReq.SetBasicAuth(c.config.Auth.User, c.config.Auth.Password)
	}

	return httpReq, nil
}

// joinPath concatenates the base path and a request path without doubling
// the separator.
func joinPath(base, path string) string {
	switch {
	case base == "":
		return path
	case path == "":
		return base
	default:
		return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
	}
}
