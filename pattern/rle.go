package pattern

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxCells bounds the area an RLE header may declare.
const maxCells = 1 << 26

// maxRun bounds a single run count so accumulating digits cannot overflow.
const maxRun = 1 << 30

// ParseRLE reads the run-length encoded format: '#' comment lines, a header
// "x = W, y = H[, rule = B3/S23]", then runs of 'b' (dead), 'o' (alive) and
// '$' (end of row) terminated by '!'. The cell data may wrap across lines.
func ParseRLE(r io.Reader) (*Pattern, error) {
	var name string
	var comments []string
	var body strings.Builder
	rows, cols := -1, -1

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "#"):
			tag, text := line[1:], ""
			if len(tag) > 0 {
				tag, text = tag[:1], strings.TrimSpace(tag[1:])
			}
			if tag == "N" {
				name = text
			} else if text != "" {
				comments = append(comments, text)
			}
		case rows < 0:
			var err error
			rows, cols, err = parseHeader(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		default:
			body.WriteString(line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read rle: %w", err)
	}
	if rows < 0 {
		return nil, fmt.Errorf("%w: missing header", ErrSyntax)
	}

	p := newPattern(rows, cols)
	p.Name = name
	p.Comments = comments
	if err := decodeRuns(body.String(), p); err != nil {
		return nil, err
	}
	return p, nil
}

// parseHeader reads "x = W, y = H, rule = ..." and returns (rows, cols).
func parseHeader(line string) (int, int, error) {
	rows, cols := -1, -1
	for _, field := range strings.Split(line, ",") {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return 0, 0, fmt.Errorf("%w: header field %q", ErrSyntax, field)
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		switch key {
		case "x", "y":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return 0, 0, fmt.Errorf("%w: header %s = %q", ErrSyntax, key, value)
			}
			if key == "x" {
				cols = n
			} else {
				rows = n
			}
		case "rule":
			if !isConway(value) {
				return 0, 0, fmt.Errorf("%w: %s", ErrUnsupportedRule, value)
			}
		}
	}
	if rows < 0 || cols < 0 {
		return 0, 0, fmt.Errorf("%w: header needs x and y", ErrSyntax)
	}
	if cols > 0 && rows > maxCells/cols {
		return 0, 0, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrSyntax, cols, rows, maxCells)
	}
	return rows, cols, nil
}

// isConway accepts the usual spellings of B3/S23.
func isConway(rule string) bool {
	switch strings.ToUpper(strings.ReplaceAll(rule, " ", "")) {
	case "B3/S23", "23/3", "S23/B3":
		return true
	}
	return false
}

// decodeRuns fills p from the run-length body.
func decodeRuns(body string, p *Pattern) error {
	r, c, count := 0, 0, 0
	for pos, ch := range body {
		switch {
		case ch >= '0' && ch <= '9':
			count = count*10 + int(ch-'0')
			if count > maxRun {
				return fmt.Errorf("%w: offset %d: run count too large", ErrSyntax, pos)
			}
			continue
		case ch == '!':
			return nil
		}

		n := max(count, 1)
		count = 0
		switch ch {
		case 'b', '.':
			c += n
		case '$':
			r += n
			c = 0
		default:
			// Any other letter is a live state in multi-state RLE; Life only has one.
			if !(ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z') {
				return fmt.Errorf("%w: offset %d: unexpected %q", ErrSyntax, pos, ch)
			}
			if r >= p.Rows || n > p.Cols-c {
				return fmt.Errorf("%w: offset %d: run leaves the %dx%d bounds", ErrSyntax, pos, p.Cols, p.Rows)
			}
			for k := 0; k < n; k++ {
				p.Cells[r][c+k] = true
			}
			c += n
		}
	}
	return fmt.Errorf("%w: missing terminating '!'", ErrSyntax)
}
