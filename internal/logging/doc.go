// Package logging provides structured logging using uber/zap.
//
// Two modes: production (JSON, machine-parseable) and development
// (colored console). Output goes to stderr so the pipeline's stdout
// stays free for the program's own reporting.
package logging
