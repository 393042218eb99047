// Package namesource streams name records from newline-delimited input
// files without materializing them in memory.
//
// Two source kinds are provided. Open (or FromReader for an existing
// stream) reads pre-paired full names, one record per line, splitting each
// line into first, middle, and last fields. OpenProduct pairs every line of
// a first-names file with every line of a last-names file, caching only the
// smaller side and re-streaming the larger one, so arbitrarily large
// products run in memory proportional to the smaller file.
//
// All sources share the scanner-style Source interface:
//
//	src, err := namesource.OpenProduct("first.txt", "last.txt")
//	if err != nil {
//		return err
//	}
//	defer src.Close()
//
//	for src.Next() {
//		rec := src.Record()
//		// expand rec
//	}
//	if err := src.Err(); err != nil {
//		return err
//	}
//
// Blank lines are skipped and surrounding whitespace is trimmed everywhere.
// A source that produces no records at all reports ErrNoRecords, either
// from Err after exhaustion (single file) or from OpenProduct directly,
// which counts both sides up front.
package namesource
