// Package pattern reads Game of Life patterns into dense boolean grids.
// It understands the plaintext (.cells) and run-length encoded (.rle) formats.
package pattern

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Parse errors
var (
	// ErrSyntax indicates malformed pattern text.
	ErrSyntax = errors.New("pattern syntax error")

	// ErrUnsupportedRule indicates an RLE rule other than B3/S23.
	ErrUnsupportedRule = errors.New("unsupported rule")

	// ErrUnknownFormat indicates a format name that is not recognised.
	ErrUnknownFormat = errors.New("unknown pattern format")

	// ErrUnknownPattern indicates a builtin name that does not exist.
	ErrUnknownPattern = errors.New("unknown pattern")
)

// Format selects a pattern encoding.
type Format string

const (
	// FormatAuto detects the encoding from the content.
	FormatAuto Format = "auto"

	// FormatPlaintext is the .cells format: '.' dead, 'O' alive, '!' comments.
	FormatPlaintext Format = "plaintext"

	// FormatRLE is the run-length encoded format.
	FormatRLE Format = "rle"
)

// ParseFormat converts a user supplied name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return FormatAuto, nil
	case "plaintext", "cells", "plain":
		return FormatPlaintext, nil
	case "rle":
		return FormatRLE, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Pattern is a dense rectangle of cells plus the metadata found in the source.
type Pattern struct {
	Name     string
	Comments []string
	Rows     int
	Cols     int
	Cells    [][]bool
}

// Population returns the number of live cells.
func (p *Pattern) Population() int {
	count := 0
	for _, row := range p.Cells {
		for _, alive := range row {
			if alive {
				count++
			}
		}
	}
	return count
}

// newPattern allocates an all-dead rows x cols pattern.
func newPattern(rows, cols int) *Pattern {
	cells := make([][]bool, rows)
	for r := range cells {
		cells[r] = make([]bool, cols)
	}
	return &Pattern{Rows: rows, Cols: cols, Cells: cells}
}

// Parse reads a pattern in the given format.
func Parse(r io.Reader, format Format) (*Pattern, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read pattern: %w", err)
	}

	if format == FormatAuto {
		format = detect(data)
	}
	switch format {
	case FormatPlaintext:
		return ParsePlaintext(bytes.NewReader(data))
	case FormatRLE:
		return ParseRLE(bytes.NewReader(data))
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// detect guesses the encoding: RLE files carry an "x = ..." header line.
func detect(data []byte) Format {
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}
		if strings.HasPrefix(line, "x") && strings.Contains(line, "=") {
			return FormatRLE
		}
		return FormatPlaintext
	}
	return FormatPlaintext
}

// Load reads a pattern file. The format comes from the extension when it is
// .rle or .cells, and from the content otherwise.
func Load(path string, format Format) (*Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pattern: %w", err)
	}
	defer f.Close()

	if format == FormatAuto {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".rle":
			format = FormatRLE
		case ".cells":
			format = FormatPlaintext
		}
	}

	p, err := Parse(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return p, nil
}
