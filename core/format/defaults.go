package format

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
)

// defaultFormats is the built-in spec list used when a caller supplies no
// formats of its own. All entries compile.
var defaultFormats = []string{
	"first",
	"last",
	"firstlast",
	"lastfirst",
	"first.last",
	"last.first",
	"first-last",
	"last-first",
	"first_last",
	"last_first",
	"first[1].last",
	"last[1].first",
	"firstlast[1]",
	"first[1]last",
	"last[1]first",
	"lastfirst[1]",
	"first[1]last[1]",
	"last[1]first[1]",
}

// DefaultFormats returns a copy of the built-in format spec list. Callers may
// modify the returned slice freely.
func DefaultFormats() []string {
	return slices.Clone(defaultFormats)
}

// ReadSpecs reads newline-delimited format specs. Blank lines and lines whose
// first non-space character is '#' are skipped; remaining lines are trimmed
// and returned in file order.
func ReadSpecs(r io.Reader) ([]string, error) {
	var specs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		specs = append(specs, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read format specs: %w", err)
	}
	return specs, nil
}
