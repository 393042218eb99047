package format

import (
	"strconv"
	"strings"
)

type keyword struct {
	word        string
	field       fieldRef
	capitalized bool
}

// keywords are matched at each scan position, longest first. Lowercase
// keywords render the field as stored; capitalized keywords render it
// title-cased. Any other casing is literal text.
var keywords = []keyword{
	{"middle", fieldMiddle, false},
	{"Middle", fieldMiddle, true},
	{"first", fieldFirst, false},
	{"First", fieldFirst, true},
	{"last", fieldLast, false},
	{"Last", fieldLast, true},
}

// Compile parses a format spec into an executable pattern.
//
// The spec is scanned left to right. Field keywords (first, last, middle,
// and their capitalized forms) become field tokens; everything else is
// literal text. A keyword may be followed by [N] to truncate the field to
// its first N runes, and by a bare decimal run to fan the whole pattern out
// into suffixed variants 0..N. Digits and brackets anywhere else are
// literals.
func Compile(spec string) (*Pattern, error) {
	if spec == "" {
		return nil, compileError(spec, "", ErrEmptySpec)
	}

	p := &Pattern{spec: spec}
	var lit strings.Builder
	flushLiteral := func() {
		if lit.Len() > 0 {
			p.tokens = append(p.tokens, token{kind: tokenLiteral, text: lit.String()})
			lit.Reset()
		}
	}

	i := 0
	for i < len(spec) {
		kw, ok := matchKeyword(spec[i:])
		if !ok {
			lit.WriteByte(spec[i])
			i++
			continue
		}
		flushLiteral()
		i += len(kw.word)

		tok := token{kind: tokenField, field: kw.field}
		if kw.capitalized {
			tok.caseMode = caseCapitalized
		}

		if i < len(spec) && spec[i] == '[' {
			end := strings.IndexByte(spec[i:], ']')
			if end < 0 {
				return nil, compileError(spec, spec[i:], ErrUnmatchedBracket)
			}
			n, err := strconv.Atoi(spec[i+1 : i+end])
			if err != nil || n < 1 {
				return nil, compileError(spec, spec[i:i+end+1], ErrBadTruncation)
			}
			tok.truncate = n
			i += end + 1
		}
		p.tokens = append(p.tokens, tok)

		if run := digitRun(spec[i:]); run != "" {
			if p.suffix != nil {
				return nil, compileError(spec, run, ErrMultipleSuffixes)
			}
			n, err := strconv.Atoi(run)
			if err != nil {
				return nil, compileError(spec, run, ErrBadSuffix)
			}
			p.suffix = &suffixRange{low: 0, high: n}
			i += len(run)
		}
	}
	flushLiteral()

	return p, nil
}

// CompileAll compiles every spec in order, failing on the first invalid one.
// Callers that want to skip invalid specs should call Compile per spec.
func CompileAll(specs []string) ([]*Pattern, error) {
	patterns := make([]*Pattern, 0, len(specs))
	for _, spec := range specs {
		p, err := Compile(spec)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}

func matchKeyword(s string) (keyword, bool) {
	for _, kw := range keywords {
		if strings.HasPrefix(s, kw.word) {
			return kw, true
		}
	}
	return keyword{}, false
}

func digitRun(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i]
}
