// Package logger provides structured logging utilities built on Go's
// standard slog package: a small factory for configured loggers and a
// set of pre-built attribute helpers for the generation pipeline.
//
// # Basic Usage
//
// Create a logger with the factory function:
//
//	import "github.com/dmitrymomot/usergen/core/logger"
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithAttrs(slog.String("app", "usergen")),
//	)
//
//	log.Info("generation finished",
//		logger.Records(1200),
//		logger.Lines(21600),
//		logger.Elapsed(start),
//	)
//
// By default records go to os.Stderr as text at Info level, keeping the
// log stream separated from generated usernames on stdout.
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for nil or empty inputs, so call
// sites never need explicit guards:
//
//	log.Error("generation failed",
//		logger.Error(err),      // omitted entirely when err is nil
//		logger.File(outPath),   // omitted when the path is empty
//		logger.Workers(4),
//	)
package logger
