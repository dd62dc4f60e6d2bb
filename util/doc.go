// Package util provides small generic helpers shared across the module:
// pointer helpers for optional settings, string fallbacks, and size parsing.
package util
