// FILE: lixenwraith/microconf/resolve.go
package microconf

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// resolve applies a candidate line to the first binding whose key it starts with.
// Lines matching no binding are ignored.
func resolve(c Candidate, bindings []Binding) error {
	for _, b := range bindings {
		rest, ok := matchKey(c.Text, b.Key)
		if !ok {
			continue
		}
		return b.apply(splitValue(rest), c.Line)
	}
	return nil
}

// matchKey reports whether text begins with key followed by whitespace,
// a separator, or the end of the text. It returns the text after the key.
func matchKey(text, key string) (string, bool) {
	if key == "" || !strings.HasPrefix(text, key) {
		return "", false
	}
	rest := text[len(key):]
	if rest == "" {
		return rest, true
	}
	switch c := rest[0]; {
	case c == '=' || c == ':':
		return rest, true
	case strings.IndexByte(whitespace, c) >= 0:
		return rest, true
	default:
		return "", false
	}
}

// splitValue strips the optional separator and surrounding whitespace.
func splitValue(rest string) string {
	rest = strings.TrimLeft(rest, whitespace)
	if rest != "" && (rest[0] == '=' || rest[0] == ':') {
		rest = rest[1:]
	}
	return strings.Trim(rest, whitespace)
}

// apply converts raw by the binding type and writes the destination.
// The destination is left untouched when conversion fails.
func (b Binding) apply(raw string, line int) error {
	switch b.Type {
	case TypeBool:
		v, ok := parseBool(raw)
		if !ok {
			return b.fail(InvalidBool, raw, line, nil)
		}
		*b.dest.(*bool) = v

	case TypeChar:
		r, size := utf8.DecodeRuneInString(raw)
		if raw == "" || size != len(raw) || (r == utf8.RuneError && size == 1) {
			return b.fail(InvalidChar, raw, line, nil)
		}
		*b.dest.(*rune) = r

	case TypeString:
		*b.dest.(*string) = strings.Clone(raw)

	case TypeInt:
		v, err := strconv.ParseInt(raw, 10, strconv.IntSize)
		if err != nil {
			return b.fail(InvalidInt, raw, line, err)
		}
		*b.dest.(*int) = int(v)

	case TypeFloat:
		v, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return b.fail(InvalidFloat, raw, line, err)
		}
		*b.dest.(*float32) = float32(v)

	case TypeDouble:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return b.fail(InvalidDouble, raw, line, err)
		}
		*b.dest.(*float64) = v

	default:
		return &ParseError{Kind: UnknownType, Key: b.Key, Line: line}
	}
	return nil
}

func (b Binding) fail(kind ErrorKind, raw string, line int, err error) error {
	return &ParseError{Kind: kind, Key: b.Key, Line: line, Value: raw, Err: err}
}

// parseBool accepts exactly "true", "1", "false" and "0".
func parseBool(s string) (bool, bool) {
	switch s {
	case "true", "1":
		return true, true
	case "false", "0":
		return false, true
	default:
		return false, false
	}
}
