package format

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Expand renders the pattern for one name record. Patterns without a numeric
// suffix yield exactly one string; patterns with a suffix 0..N yield N+1
// strings in increasing suffix order. Expansion never fails: a field the
// record does not have renders as an empty string.
//
// Capitalized field tokens read the original casing of the record value.
// When caseSensitive is false the joined result is lowercased afterwards, so
// every returned string is entirely lowercase.
func (p *Pattern) Expand(n Name, caseSensitive bool) []string {
	return p.AppendExpand(nil, n, caseSensitive)
}

// AppendExpand appends the expansion of the pattern to dst and returns the
// extended slice. It lets callers reuse one backing array across records.
func (p *Pattern) AppendExpand(dst []string, n Name, caseSensitive bool) []string {
	base := p.render(n, caseSensitive)
	if p.suffix == nil {
		return append(dst, base)
	}
	for i := p.suffix.low; i <= p.suffix.high; i++ {
		dst = append(dst, base+strconv.Itoa(i))
	}
	return dst
}

func (p *Pattern) render(n Name, caseSensitive bool) string {
	var b strings.Builder
	for _, tok := range p.tokens {
		if tok.kind == tokenLiteral {
			b.WriteString(tok.text)
			continue
		}
		b.WriteString(renderField(tok, n))
	}
	if caseSensitive {
		return b.String()
	}
	return strings.ToLower(b.String())
}

func renderField(tok token, n Name) string {
	var v string
	switch tok.field {
	case fieldFirst:
		v = n.First
	case fieldMiddle:
		v = n.Middle
	case fieldLast:
		v = n.Last
	}
	if tok.truncate > 0 {
		v = truncateRunes(v, tok.truncate)
	}
	if tok.caseMode == caseCapitalized && v != "" {
		// cases.Caser is stateful, so one is created per call instead of
		// being shared across worker goroutines.
		v = cases.Title(language.Und).String(v)
	}
	return v
}

func truncateRunes(s string, n int) string {
	if n >= len(s) {
		return s
	}
	seen := 0
	for i := range s {
		if seen == n {
			return s[:i]
		}
		seen++
	}
	return s
}
