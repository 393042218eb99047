// Package format compiles textual username format specs into executable
// patterns and expands them against name records. Compilation is pure and
// deterministic; compiled patterns are immutable and safe to share across
// goroutines.
//
// # Spec Grammar
//
// A spec is scanned left to right. The keywords first, last, and middle are
// replaced with the matching record field; their capitalized forms First,
// Last, and Middle render the field title-cased. Keyword matching is greedy
// and longest-first at each position, so "firstname" is the first field
// followed by the literal "name". Every other character is literal text.
//
// Two modifiers may follow a field keyword directly:
//
//   - [N] truncates the field value to its first N runes. N past the end of
//     the value means the whole value, never an error.
//   - A bare decimal run N puts the pattern in numeric-suffix mode: each
//     rendered line is emitted once per integer 0..N with the integer
//     appended. One suffix per spec; a second one fails compilation.
//
// Brackets and digits anywhere else are literal text, so "user1" is just the
// literal string "user1".
//
// # Usage
//
//	p, err := format.Compile("first[1].last")
//	if err != nil {
//		var cerr *format.CompileError
//		if errors.As(err, &cerr) {
//			log.Printf("bad spec %q at %q", cerr.Spec, cerr.Offending)
//		}
//		return err
//	}
//
//	lines := p.Expand(format.Name{First: "John", Last: "Smith"}, false)
//	// lines == []string{"j.smith"}
//
// Numeric suffixes fan out:
//
//	p, _ := format.Compile("first2")
//	p.Expand(format.Name{First: "John"}, false)
//	// ["john0", "john1", "john2"]
//
// # Case Handling
//
// Capitalized keywords title-case the field value read in its original
// casing. When the caseSensitive argument of Expand is false, the joined
// result is lowercased after rendering, so output is uniformly lowercase
// regardless of keyword or record casing.
//
// # Default Formats
//
// DefaultFormats returns the built-in spec list covering the common
// first/last combinations with separators, initials, and truncation.
// ReadSpecs parses a user-supplied formats file (one spec per line, # for
// comments).
package format
