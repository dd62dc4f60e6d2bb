// Package secret models sensitive configuration values as a capability.
// A Secret yields its plaintext only through an explicit Reveal call; the
// rest of the module never logs or serializes the unwrapped value.
package secret
