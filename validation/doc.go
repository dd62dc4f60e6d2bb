// Package validation provides tag-driven struct validation built on
// go-playground/validator, returning the module's structured ConfigError.
package validation
