// Package logging provides structured logging using Go's standard library
// log/slog. It outputs logs in JSON format and is used by the loading layer
// to report which configuration sources were consulted.
package logging
