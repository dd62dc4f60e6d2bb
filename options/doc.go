// Package options models the raw, user-supplied configuration for the
// output plugin: an untyped key/value mapping with presence-aware typed
// accessors, so "unset" stays distinguishable from "explicitly false/empty".
//
// Options values are never mutated by resolution; every accessor reads
// without side effects.
package options
