// Package httpclient is the connection layer for the OpenSearch output.
// It consumes the fully resolved Config produced by the resolver and builds
// an HTTP client with pooling, TLS, proxy, compression, and basic auth.
//
// The configuration resolution itself lives in the resolver package; this
// package only materializes a client from an already validated Config.
package httpclient
