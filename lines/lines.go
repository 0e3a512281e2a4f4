// Package lines turns a text stream into puzzle input lines.
//
// A trailing "\r" is removed from every line and blank lines are skipped, so
// files saved with CRLF endings or a final empty line read the same as clean ones.
package lines

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrReaderNil is returned when a nil io.Reader is passed.
var ErrReaderNil = errors.New("lines: reader is nil")

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Each calls fn for every non-blank line of r, in order. An error from fn
// stops reading and is returned unchanged.
func Each(r io.Reader, fn func(line string) error) error {
	if r == nil {
		return ErrReaderNil
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("lines: read: %w", err)
	}

	return nil
}

// Read returns every non-blank line of r.
func Read(r io.Reader) ([]string, error) {
	var out []string
	err := Each(r, func(line string) error {
		out = append(out, line)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
