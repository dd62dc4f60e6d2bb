package options

import (
	"time"

	"github.com/spf13/cast"

	"github.com/rkbennett/logstash-output-opensearch/secret"
	"github.com/rkbennett/logstash-output-opensearch/util"
)

// Options is the raw configuration mapping supplied by the user. Values may
// be strings, booleans, numbers, secret-wrapped values, or nested maps.
type Options map[string]any

// FromMap wraps an existing map without copying it.
func FromMap(m map[string]any) Options {
	return Options(m)
}

// Has reports whether the key is present, regardless of its value.
func (o Options) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// String returns the value as a string and whether the key was present.
func (o Options) String(key string) (string, bool) {
	v, ok := o[key]
	if !ok || v == nil {
		return "", false
	}
	return cast.ToString(v), true
}

// StringOr returns the value as a string, or def when absent.
func (o Options) StringOr(key, def string) string {
	if s, ok := o.String(key); ok {
		return s
	}
	return def
}

// Bool returns the value as a bool and whether the key was present.
func (o Options) Bool(key string) (bool, bool) {
	v, ok := o[key]
	if !ok || v == nil {
		return false, false
	}
	return cast.ToBool(v), true
}

// BoolOr returns the value as a bool, or def when absent.
func (o Options) BoolOr(key string, def bool) bool {
	if b, ok := o.Bool(key); ok {
		return b
	}
	return def
}

// Int returns the value as an int and whether the key was present.
func (o Options) Int(key string) (int, bool) {
	v, ok := o[key]
	if !ok || v == nil {
		return 0, false
	}
	return cast.ToInt(v), true
}

// IntOr returns the value as an int, or def when absent.
func (o Options) IntOr(key string, def int) int {
	if n, ok := o.Int(key); ok {
		return n
	}
	return def
}

// Bytes returns the value as a byte count. Numbers are taken as bytes;
// strings accept human-readable sizes ("20MB"). Returns def when absent
// or unparsable.
func (o Options) Bytes(key string, def int64) int64 {
	v, ok := o[key]
	if !ok || v == nil {
		return def
	}
	if s, isStr := v.(string); isStr {
		return util.ParseSize(s, def)
	}
	return cast.ToInt64(v)
}

// Duration returns the value as a duration and whether the key was present.
// Bare numbers are taken as seconds; strings accept Go duration syntax.
func (o Options) Duration(key string) (time.Duration, bool) {
	v, ok := o[key]
	if !ok || v == nil {
		return 0, false
	}
	switch tv := v.(type) {
	case time.Duration:
		return tv, true
	case string:
		if d, err := time.ParseDuration(tv); err == nil {
			return d, true
		}
		return time.Duration(cast.ToFloat64(tv) * float64(time.Second)), true
	default:
		return time.Duration(cast.ToFloat64(v) * float64(time.Second)), true
	}
}

// DurationOr returns the value as a duration, or def when absent.
func (o Options) DurationOr(key string, def time.Duration) time.Duration {
	if d, ok := o.Duration(key); ok {
		return d
	}
	return def
}

// StringMap returns the value as a map of strings. Absent keys yield nil.
func (o Options) StringMap(key string) map[string]string {
	v, ok := o[key]
	if !ok || v == nil {
		return nil
	}
	return cast.ToStringMapString(v)
}

// Secret returns the value as a secret. Plain strings are wrapped so every
// credential flows through the same capability. Absent keys yield nil.
func (o Options) Secret(key string) secret.Secret {
	v, ok := o[key]
	if !ok || v == nil {
		return nil
	}
	if s, isSecret := v.(secret.Secret); isSecret {
		return s
	}
	return secret.Static(cast.ToString(v))
}
