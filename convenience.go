// File: lixenwraith/microconf/convenience.go
package microconf

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Quick binds the fields of a struct pointer and parses path into it.
// Field values present before the call act as defaults.
func Quick(target any, path string) error {
	bindings, err := BindStruct("", target)
	if err != nil {
		return fmt.Errorf("failed to bind struct: %w", err)
	}
	return Parse(bindings, path)
}

// MustParse is like Parse but panics on error
func MustParse(bindings []Binding, path string) {
	if err := Parse(bindings, path); err != nil {
		panic(fmt.Sprintf("config parse failed: %v", err))
	}
}

// MustParse is like Parse but panics on error
func (b *Builder) MustParse() *Table {
	table, err := b.Parse()
	if err != nil {
		// ErrConfigNotFound is not fatal: the application proceeds with defaults.
		if !errors.Is(err, ErrConfigNotFound) {
			panic(fmt.Sprintf("config parse failed: %v", err))
		}
	}
	return table
}

// Debug returns a formatted string showing every binding, its type and current value
func (t *Table) Debug() string {
	var b strings.Builder
	b.WriteString("Configuration Debug Info:\n")
	if t.path != "" {
		fmt.Fprintf(&b, "File: %s\n", t.path)
	}
	b.WriteString("Bindings:\n")

	for _, binding := range t.bindings {
		fmt.Fprintf(&b, "  %s (%s): ", binding.Key, binding.Type)
		if v, ok := binding.Value(); ok {
			b.WriteString(FormatValue(v))
		} else {
			b.WriteString("<invalid>")
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// FormatValue renders a destination value in the syntax the parser accepts,
// so that the output can be pasted back into a config file.
func FormatValue(v any) string {
	switch v := v.(type) {
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case rune:
		return string(v)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
