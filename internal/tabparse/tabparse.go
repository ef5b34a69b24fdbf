/* Package tabparse provides a parser for semicolon-separated data tables.

The format follows the conventions of the Unicode Character Database files
(see http://www.unicode.org/reports/tr44/): one data item per line, fields
separated by ';', everything after a '#' is a comment, empty lines and
comment-only lines are skipped. Unlike UCD files, the first field is an
arbitrary key instead of a code-point range.

   17;    Palatalization of coda ㄷ/ㅌ    # Regulation 17
*/
package tabparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Token represents a single data line of a table.
type Token struct {
	LineNo  int      // line number of the item within the input source, 1…n
	Fields  []string // trimmed fields of the line
	Comment string   // rest-of-line comment, if any
}

func (token *Token) String() string {
	return fmt.Sprintf("token[at %d %#v]", token.LineNo, token.Fields)
}

// Field gets field #i (1…n) from the current data item.
func (token *Token) Field(i int) string {
	if len(token.Fields) > 0 && i > 0 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}

// Key is a shortcut for Field(1).
func (token *Token) Key() string {
	return token.Field(1)
}

// ErrMalformedLine is returned for data lines with less fields than required.
var ErrMalformedLine = errors.New("malformed table line")

// Scanner iterates over the data items of a table.
type Scanner struct {
	lines     *bufio.Scanner
	minFields int
	lineNo    int
	Token     *Token // last token produced by the scanner
	LastError error  // last error, if any
}

// New creates a scanner for an input reader. Data lines with fewer than
// minFields fields are flagged with ErrMalformedLine.
func New(inputReader io.Reader, minFields int) (*Scanner, error) {
	if inputReader == nil {
		return nil, errors.New("no input present")
	}
	sc := &Scanner{
		lines:     bufio.NewScanner(inputReader),
		minFields: minFields,
	}
	return sc, nil
}

// Next is called to receive the next data item. It returns false at the end
// of input or at the first malformed line; clients check LastError to tell
// these apart.
func (sc *Scanner) Next() bool {
	for sc.lines.Scan() {
		sc.lineNo++
		line := strings.TrimSpace(sc.lines.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		token := &Token{LineNo: sc.lineNo}
		if i := strings.IndexByte(line, '#'); i >= 0 {
			token.Comment = strings.TrimSpace(line[i+1:])
			line = line[:i]
		}
		for _, f := range strings.Split(line, ";") {
			token.Fields = append(token.Fields, strings.TrimSpace(f))
		}
		if len(token.Fields) < sc.minFields || token.Key() == "" {
			sc.LastError = fmt.Errorf("%w at line %d: %q", ErrMalformedLine, sc.lineNo, line)
			return false
		}
		sc.Token = token
		return true
	}
	sc.LastError = sc.lines.Err()
	return false
}

// Parse iterates over each data line of a table and calls callback f on it.
func Parse(r io.Reader, minFields int, f func(token *Token)) error {
	sc, err := New(r, minFields)
	if err != nil {
		return err
	}
	for sc.Next() {
		f(sc.Token)
	}
	return sc.LastError
}
