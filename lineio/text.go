package lineio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/arrangement/advanced"
	"github.com/pkg/errors"
)

type token struct {
	text string
	line int
}

// Read the plain format: the number of lines, then four integers x1 y1 x2 y2
// per line. Tokens may be split across input lines however you like; anything
// after the last line is ignored.
func ReadText(r io.Reader) ([]advanced.Line, error) {
	tokens, err := scanTokens(r)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, errors.New("empty input: expected line count")
	}

	n, err := strconv.Atoi(tokens[0].text)
	if err != nil || n < 0 {
		return nil, errors.Errorf("line %d: invalid line count %q", tokens[0].line, tokens[0].text)
	}
	tokens = tokens[1:]
	if len(tokens) < 4*n {
		return nil, errors.Errorf("expected %d coordinates for %d lines, got %d", 4*n, n, len(tokens))
	}

	lines := make([]advanced.Line, 0, n)
	for i := 0; i < n; i++ {
		fields := tokens[4*i : 4*i+4]
		var coords [4]int64
		for j, field := range fields {
			coords[j], err = parseCoordinate(field.text)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", field.line)
			}
		}
		line, err := newLine(coords[0], coords[1], coords[2], coords[3])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", fields[0].line)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// Input lines can be arbitrarily long (the whole input may sit on one line), so
// this reads with a bufio.Reader rather than a size-capped Scanner.
func scanTokens(r io.Reader) ([]token, error) {
	var tokens []token
	reader := bufio.NewReader(r)
	lineNumber := 0
	for {
		text, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "reading input")
		}
		if text != "" {
			lineNumber++
			for _, field := range strings.Fields(text) {
				tokens = append(tokens, token{field, lineNumber})
			}
		}
		if err == io.EOF {
			return tokens, nil
		}
	}
}
