package pattern

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParsePlaintext reads the .cells format. Lines starting with '!' are
// comments; "!Name: x" sets the pattern name. 'O' or '*' marks a live cell,
// '.' a dead one. Short rows are padded with dead cells.
func ParsePlaintext(r io.Reader) (*Pattern, error) {
	var name string
	var comments []string
	var rows []string

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), " \t\r")
		if strings.HasPrefix(line, "!") {
			text := strings.TrimSpace(line[1:])
			if v, ok := strings.CutPrefix(text, "Name:"); ok {
				name = strings.TrimSpace(v)
			} else {
				comments = append(comments, text)
			}
			continue
		}
		for col, ch := range line {
			switch ch {
			case '.', 'O', 'o', '*':
			default:
				return nil, fmt.Errorf("%w: line %d col %d: unexpected %q", ErrSyntax, lineNo, col+1, ch)
			}
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read plaintext: %w", err)
	}

	// Trailing blank lines carry no cells.
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	cols := 0
	for _, row := range rows {
		cols = max(cols, len(row))
	}

	p := newPattern(len(rows), cols)
	p.Name = name
	p.Comments = comments
	for r, row := range rows {
		for c, ch := range row {
			p.Cells[r][c] = ch != '.'
		}
	}
	return p, nil
}
