// Package metrics provides the OpenTelemetry metric sink referenced by the
// resolved request policy. The resolver only carries the sink; the HTTP
// client records into it while flushing bulks.
package metrics
