// FILE: lixenwraith/microconf/scanner.go
package microconf

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// whitespace is the set of bytes trimmed around keys and values.
// Carriage returns are included so CRLF files read the same as LF files.
const whitespace = " \t\r\n"

// Candidate is a physical line after comment stripping and leading whitespace removal.
type Candidate struct {
	Text string // Trailing whitespace is still present
	Line int    // 1-based physical line number
}

// Scanner yields candidate lines from a stream. It reads forward only and
// cannot be restarted.
type Scanner struct {
	r    *bufio.Reader
	line int
	err  error
	done bool
}

// NewScanner creates a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r)}
}

// Next returns the next non-empty candidate line.
// It returns false at end of stream or after a read error; see Err.
func (s *Scanner) Next() (Candidate, bool) {
	for !s.done {
		raw, err := s.r.ReadString('\n')
		if err != nil {
			s.done = true
			if !errors.Is(err, io.EOF) {
				s.err = err
				return Candidate{}, false
			}
			if raw == "" {
				break
			}
		}
		s.line++

		if text := trimLine(raw); text != "" {
			return Candidate{Text: text, Line: s.line}, true
		}
	}
	return Candidate{}, false
}

// Line returns the number of physical lines read so far.
func (s *Scanner) Line() int {
	return s.line
}

// Err returns the first non-EOF read error.
func (s *Scanner) Err() error {
	return s.err
}

// trimLine drops the comment and leading whitespace of a raw line.
// An empty result means the line carries nothing to match.
func trimLine(raw string) string {
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		raw = raw[:i]
	}
	return strings.TrimLeft(raw, whitespace)
}
