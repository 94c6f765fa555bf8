package airdrop

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// Row is a single non-blank input line split into its two fields.
type Row struct {
	Line    int
	Address string
	Amount  string
}

// ReadRows splits CSV text into rows. Each line is cut at its first comma;
// fields are trimmed, blank lines are skipped and CRLF endings are accepted.
// A line without a comma yields a row with an empty amount, which the
// converter rejects. With skipHeader the first non-blank line is dropped.
func ReadRows(r io.Reader, skipHeader bool) ([]Row, error) {
	var rows []Row

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if line == 1 {
			text = strings.TrimPrefix(text, "\ufeff")
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if skipHeader {
			skipHeader = false
			continue
		}

		address, amount, _ := strings.Cut(text, ",")
		rows = append(rows, Row{
			Line:    line,
			Address: strings.TrimSpace(address),
			Amount:  strings.TrimSpace(amount),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input at line %d: %w", line+1, err)
	}

	return rows, nil
}
