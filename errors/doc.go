// Package errors provides the structured error type used across the module.
// Configuration resolution failures carry a machine-readable code and a
// human-readable message identifying the violated rule.
package errors
