package namesource

import (
	"strings"

	"github.com/dmitrymomot/usergen/core/format"
)

// Source is a lazy sequence of name records. The usage mirrors
// bufio.Scanner: Next advances and reports whether a record is available,
// Record returns the current one, and Err reports the first error once Next
// returned false. A source exhausted without producing a single record sets
// Err to ErrNoRecords.
//
// Sources keep a single pull cursor and are not safe for concurrent Next
// calls; the pipeline serializes pulls through one producer.
type Source interface {
	Next() bool
	Record() format.Name
	Err() error
	Close() error
}

// parseLine splits one input line into a name record. The first whitespace
// token is the first name, the last token the last name (empty when the line
// holds a single token), and anything between joins into the middle name.
// Blank lines report ok=false.
func parseLine(line string) (format.Name, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return format.Name{}, false
	}
	n := format.Name{First: fields[0]}
	if len(fields) > 1 {
		n.Last = fields[len(fields)-1]
	}
	if len(fields) > 2 {
		n.Middle = strings.Join(fields[1:len(fields)-1], " ")
	}
	return n, true
}
