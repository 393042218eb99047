// Package usergen generates candidate username lists by expanding format
// patterns over real-name records. It is built as a small set of focused
// packages: a pattern compiler, streaming name sources, a concurrent
// expansion pipeline, and a buffered line writer, tied together by the
// usergen command-line tool.
//
// # Package Organization
//
//	github.com/dmitrymomot/usergen/core/config     - Type-safe environment variable loading
//	github.com/dmitrymomot/usergen/core/format     - Format spec compiler, defaults, and expansion
//	github.com/dmitrymomot/usergen/core/logger     - Structured logging built on slog
//	github.com/dmitrymomot/usergen/core/namesource - Streaming name records from files
//	github.com/dmitrymomot/usergen/core/pipeline   - Concurrent pattern-expansion pipeline
//	github.com/dmitrymomot/usergen/pkg/linebuf     - Buffered line-oriented writer
//	github.com/dmitrymomot/usergen/cmd/usergen     - The usergen CLI
//
// # Getting Documentation
//
// For detailed documentation on any package, use the go doc command:
//
//	go doc github.com/dmitrymomot/usergen/core/format
//	go doc -all github.com/dmitrymomot/usergen/core/pipeline
//
// # Quick Start
//
// Generate usernames from a file of full names with the default formats:
//
//	usergen -i names.txt -o usernames.txt
//
// Or drive the pipeline directly from Go:
//
//	patterns, err := format.CompileAll(format.DefaultFormats())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	src, err := namesource.Open("names.txt")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer src.Close()
//
//	out, err := os.Create("usernames.txt")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer out.Close()
//
//	p, err := pipeline.New(patterns, src, out)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := p.Run(context.Background()); err != nil {
//		log.Fatal(err)
//	}
package usergen
