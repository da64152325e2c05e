// FILE: lixenwraith/microconf/binding.go
package microconf

import (
	"fmt"
	"reflect"
	"strings"
)

//go:generate go tool stringer -type=ValueType -trimprefix=Type -output=valuetype_string.go

// ValueType selects the conversion rule and destination type of a binding.
type ValueType int

const (
	_ ValueType = iota // zero value is invalid

	TypeBool   // *bool
	TypeInt    // *int
	TypeFloat  // *float32
	TypeDouble // *float64
	TypeChar   // *rune
	TypeString // *string
)

// Valid reports whether t is one of the declared value types.
func (t ValueType) Valid() bool {
	return t >= TypeBool && t <= TypeString
}

// ParseValueType maps a type name ("bool", "int", "float", "double", "char", "string")
// to its ValueType. Matching is case-insensitive; "str" is accepted for "string".
func ParseValueType(name string) (ValueType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bool":
		return TypeBool, nil
	case "int":
		return TypeInt, nil
	case "float":
		return TypeFloat, nil
	case "double":
		return TypeDouble, nil
	case "char":
		return TypeChar, nil
	case "string", "str":
		return TypeString, nil
	default:
		return 0, fmt.Errorf("unknown value type %q", name)
	}
}

// Binding associates a key in the config file with a typed destination.
// Bindings are created with Bool, Int, Float, Double, Char, String or Bind.
type Binding struct {
	Type ValueType
	Key  string
	dest any
}

// Bool binds key to a bool destination. Accepted values: true, 1, false, 0.
func Bool(key string, dst *bool) Binding {
	return Binding{Type: TypeBool, Key: key, dest: dst}
}

// Int binds key to a base-10 integer destination.
func Int(key string, dst *int) Binding {
	return Binding{Type: TypeInt, Key: key, dest: dst}
}

// Float binds key to a single-precision destination.
func Float(key string, dst *float32) Binding {
	return Binding{Type: TypeFloat, Key: key, dest: dst}
}

// Double binds key to a double-precision destination.
func Double(key string, dst *float64) Binding {
	return Binding{Type: TypeDouble, Key: key, dest: dst}
}

// Char binds key to a destination holding exactly one character.
func Char(key string, dst *rune) Binding {
	return Binding{Type: TypeChar, Key: key, dest: dst}
}

// String binds key to a string destination. The parser stores a freshly
// allocated copy of the value; the caller owns it from then on.
func String(key string, dst *string) Binding {
	return Binding{Type: TypeString, Key: key, dest: dst}
}

// Bind creates a binding from a type tag and an untyped destination pointer.
// The destination is checked against t when parsing starts; a mismatch is
// reported as UnknownType.
func Bind(t ValueType, key string, dst any) Binding {
	return Binding{Type: t, Key: key, dest: dst}
}

// Dest returns the destination pointer of the binding.
func (b Binding) Dest() any {
	return b.dest
}

// Value returns the current value held by the destination.
func (b Binding) Value() (any, bool) {
	if b.check() != nil {
		return nil, false
	}
	return reflect.ValueOf(b.dest).Elem().Interface(), true
}

// check validates the destination against the declared type.
func (b Binding) check() error {
	if b.dest == nil {
		return &ParseError{Kind: NullConfiguration, Key: b.Key, Err: fmt.Errorf("binding has no destination")}
	}
	if v := reflect.ValueOf(b.dest); v.Kind() == reflect.Ptr && v.IsNil() {
		return &ParseError{Kind: NullConfiguration, Key: b.Key, Err: fmt.Errorf("binding destination %T is nil", b.dest)}
	}

	var ok bool
	switch b.Type {
	case TypeBool:
		_, ok = b.dest.(*bool)
	case TypeInt:
		_, ok = b.dest.(*int)
	case TypeFloat:
		_, ok = b.dest.(*float32)
	case TypeDouble:
		_, ok = b.dest.(*float64)
	case TypeChar:
		_, ok = b.dest.(*rune)
	case TypeString:
		_, ok = b.dest.(*string)
	default:
		return &ParseError{Kind: UnknownType, Key: b.Key, Err: fmt.Errorf("value type %s", b.Type)}
	}
	if !ok {
		return &ParseError{Kind: UnknownType, Key: b.Key, Err: fmt.Errorf("destination %T cannot hold %s", b.dest, b.Type)}
	}
	return nil
}

// checkBindings validates a binding table before any input is read.
func checkBindings(bindings []Binding) error {
	if bindings == nil {
		return &ParseError{Kind: NullConfiguration, Err: fmt.Errorf("binding table is nil")}
	}
	for _, b := range bindings {
		if err := b.check(); err != nil {
			return err
		}
	}
	return nil
}
