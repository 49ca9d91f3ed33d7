// Package logging builds the slog loggers used across castmerge and exposes
// typed attribute helpers so call sites stay terse and consistent.
//
// Console format targets humans running the CLI; JSON format targets log
// shippers. NewFromConfig also tees output into the configured log
// directory.
package logging
