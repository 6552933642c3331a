package point

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// coordinates is the number of fields every record must carry.
const coordinates = 3

// ParseLine parses a single "x,y,z" record. The trimmed line becomes the Node ID.
//
// Returns ErrMalformedRecord (wrapped) when the field count is not three or a
// field is not a real number. No default Node is ever fabricated.
func ParseLine(line string) (Node, error) {
	id := strings.TrimSpace(line)
	fields := strings.Split(id, Separator)
	if len(fields) != coordinates {
		return Node{}, fmt.Errorf("%q: want %d fields, got %d: %w", id, coordinates, len(fields), ErrMalformedRecord)
	}

	var xyz [coordinates]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return Node{}, fmt.Errorf("%q: field %d: %v: %w", id, i+1, err, ErrMalformedRecord)
		}
		xyz[i] = v
	}

	return New(id, xyz[0], xyz[1], xyz[2]), nil
}

// Parse reads every record from r in order.
//
// The first malformed record aborts parsing; the error carries the 1-based
// line number and wraps ErrMalformedRecord.
func Parse(r io.Reader) ([]Node, error) {
	var nodes []Node
	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		n, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("point: line %d: %w", lineNo, err)
		}
		nodes = append(nodes, n)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("point: read: %w", err)
	}

	return nodes, nil
}

// Load opens path and parses it with Parse.
func Load(path string) ([]Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("point: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}
