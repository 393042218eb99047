package format

// Name is one name record to expand. Middle is empty when the record has no
// middle name; expansion substitutes an empty string for it.
type Name struct {
	First  string
	Middle string
	Last   string
}

type fieldRef uint8

const (
	fieldFirst fieldRef = iota
	fieldMiddle
	fieldLast
)

type caseMode uint8

const (
	caseAsIs caseMode = iota
	caseCapitalized
)

type tokenKind uint8

const (
	tokenLiteral tokenKind = iota
	tokenField
)

// token is one element of a compiled pattern: literal text copied verbatim,
// or a field reference with optional truncation and case transform.
type token struct {
	kind     tokenKind
	text     string
	field    fieldRef
	truncate int // first N runes of the field value, 0 means the whole field
	caseMode caseMode
}

// suffixRange fans one rendered line out into high-low+1 lines, each with the
// integer appended as a decimal literal.
type suffixRange struct {
	low  int
	high int
}

// Pattern is the compiled, executable form of a format spec. It is immutable
// after compilation and safe to share across goroutines.
type Pattern struct {
	spec   string
	tokens []token
	suffix *suffixRange
}

// String returns the original format spec the pattern was compiled from.
func (p *Pattern) String() string {
	return p.spec
}

// Variants reports how many strings the pattern yields per record: 1 without
// a numeric suffix, high-low+1 with one.
func (p *Pattern) Variants() int {
	if p.suffix == nil {
		return 1
	}
	return p.suffix.high - p.suffix.low + 1
}
