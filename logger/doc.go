// Package logger wraps zerolog with plugin-oriented conveniences: leveled
// structured logging, component tagging, and an injectable writer so tests
// can capture output.
package logger
