// Package resolver turns the raw output settings into a validated client
// configuration and request policy.
//
// Resolution runs as a fixed sequence of steps: connection settings
// extraction, path normalization, TLS reconciliation, authentication
// derivation, and versioning/action compatibility checks. It is a pure
// function of its inputs; the only side effect is a warning log line when
// certificate verification is explicitly disabled.
package resolver
