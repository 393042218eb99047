package namesource

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrymomot/usergen/core/format"
)

// Product yields the full Cartesian product of a first-names file and a
// last-names file as name records. The smaller file (by non-blank line
// count, ties favoring the first-names side) is cached in memory once; the
// larger file is re-streamed from disk for every cached entry, so peak
// memory stays proportional to the smaller side.
//
// Records come out in a stable order: outer loop over the cached side in
// file order, inner loop over the streamed side in file order.
type Product struct {
	cached      []string
	cachedFirst bool
	streamPath  string
	stream      *os.File
	sc          *bufio.Scanner
	outer       int
	total       int
	cur         format.Name
	err         error
}

// OpenProduct prepares a combinatorial source from the two name files. Both
// files are counted up front; a side without a single usable line fails with
// ErrNoRecords.
func OpenProduct(firstPath, lastPath string) (*Product, error) {
	firstN, err := Count(firstPath)
	if err != nil {
		return nil, err
	}
	lastN, err := Count(lastPath)
	if err != nil {
		return nil, err
	}
	if firstN == 0 {
		return nil, fmt.Errorf("%s: %w", firstPath, ErrNoRecords)
	}
	if lastN == 0 {
		return nil, fmt.Errorf("%s: %w", lastPath, ErrNoRecords)
	}

	p := &Product{total: firstN * lastN}
	if firstN <= lastN {
		p.cachedFirst = true
		p.cached, err = readLines(firstPath)
		p.streamPath = lastPath
	} else {
		p.cached, err = readLines(lastPath)
		p.streamPath = firstPath
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Len reports the exact number of records the product will yield.
func (p *Product) Len() int {
	return p.total
}

// Next advances to the next (first, last) pair, reopening the streamed file
// whenever the outer cursor moves to the next cached entry.
func (p *Product) Next() bool {
	if p.err != nil || p.outer >= len(p.cached) {
		return false
	}
	for {
		if p.sc == nil {
			if err := p.openStream(); err != nil {
				p.err = err
				return false
			}
		}
		for p.sc.Scan() {
			v := strings.TrimSpace(p.sc.Text())
			if v == "" {
				continue
			}
			p.cur = p.pair(p.cached[p.outer], v)
			return true
		}
		if err := p.sc.Err(); err != nil {
			p.err = fmt.Errorf("read %s: %w", p.streamPath, err)
			p.closeStream()
			return false
		}
		p.closeStream()
		p.outer++
		if p.outer >= len(p.cached) {
			return false
		}
	}
}

// Record returns the record produced by the last successful Next call.
func (p *Product) Record() format.Name {
	return p.cur
}

// Err reports the first error hit while streaming.
func (p *Product) Err() error {
	return p.err
}

// Close releases the streamed file handle if one is open.
func (p *Product) Close() error {
	return p.closeStream()
}

func (p *Product) pair(cached, streamed string) format.Name {
	if p.cachedFirst {
		return format.Name{First: cached, Last: streamed}
	}
	return format.Name{First: streamed, Last: cached}
}

func (p *Product) openStream() error {
	f, err := os.Open(p.streamPath)
	if err != nil {
		return fmt.Errorf("open name file: %w", err)
	}
	p.stream = f
	p.sc = bufio.NewScanner(f)
	return nil
}

func (p *Product) closeStream() error {
	if p.stream == nil {
		return nil
	}
	err := p.stream.Close()
	p.stream = nil
	p.sc = nil
	return err
}
