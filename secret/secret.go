package secret

import "os"

// Secret is an opaque holder of a sensitive string. Implementations must not
// expose the value through String, formatting, or serialization.
type Secret interface {
	// Reveal returns the plaintext value. An empty string means no value.
	Reveal() string
}

// Static wraps a plaintext value already held in memory.
type Static string

// Reveal returns the wrapped value.
func (s Static) Reveal() string { return string(s) }

// String masks the value so accidental formatting never leaks it.
func (s Static) String() string { return "<secret>" }

// Env resolves the value from an environment variable at reveal time.
type Env string

// Reveal returns the current value of the environment variable.
func (e Env) Reveal() string { return os.Getenv(string(e)) }

// String masks the value so accidental formatting never leaks it.
func (e Env) String() string { return "<secret>" }

// Reveal returns the plaintext of s, or empty when s is nil.
func Reveal(s Secret) string {
	if s == nil {
		return ""
	}
	return s.Reveal()
}
