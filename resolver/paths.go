package resolver

import (
	"strings"

	"github.com/rkbennett/logstash-output-opensearch/httpclient"
	"github.com/rkbennett/logstash-output-opensearch/options"
)

// normalizePath collapses any run of consecutive slashes into a single
// slash. No other characters are altered, and normalization is idempotent.
func normalizePath(path string) string {
	if !strings.Contains(path, "//") {
		return path
	}
	var b strings.Builder
	b.Grow(len(path))
	prevSlash := false
	for _, r := range path {
		if r == '/' {
			if prevSlash {
				continue
			}
			prevSlash = true
		} else {
			prevSlash = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// resolvePaths derives the connection, bulk, sniffing, and healthcheck
// paths from the user's base path and per-path overrides. Overrides are
// taken as given (normalized); everything else is derived from the base.
func resolvePaths(opts options.Options) httpclient.Paths {
	base := opts.StringOr("path", "")

	var paths httpclient.Paths
	if _, ok := opts.String("path"); ok {
		paths.Base = normalizePath("/" + base + "/")
	}

	if bulk, ok := opts.String("bulk_path"); ok {
		paths.Bulk = normalizePath("/" + bulk)
	} else {
		paths.Bulk = normalizePath("/" + base + "/_bulk")
	}

	if sniff, ok := opts.String("sniffing_path"); ok {
		paths.Sniffing = normalizePath("/" + sniff)
	} else {
		paths.Sniffing = normalizePath("/" + base + "/_nodes/http")
	}

	if health, ok := opts.String("healthcheck_path"); ok {
		paths.Healthcheck = normalizePath("/" + health)
	} else {
		paths.Healthcheck = normalizePath("/" + base)
	}

	return paths
}
