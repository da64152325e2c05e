// FILE: lixenwraith/microconf/decode.go
package microconf

import (
	"fmt"
	"reflect"
	"unicode/utf8"

	"github.com/mitchellh/mapstructure"
)

// decodeSchema is the single function decoding a generic schema map into a Schema.
func decodeSchema(data map[string]any) (*Schema, error) {
	var schema Schema
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &schema,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       stringToValueTypeHookFunc(),
	})
	if err != nil {
		return nil, fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(data); err != nil {
		return nil, fmt.Errorf("decode failed for schema: %w", err)
	}
	return &schema, nil
}

// stringToValueTypeHookFunc handles ValueType conversion from type names
func stringToValueTypeHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		if t != reflect.TypeOf(ValueType(0)) {
			return data, nil
		}
		return ParseValueType(data.(string))
	}
}

// decodeDefault stores a schema default into a freshly allocated slot.
// Char defaults are decoded from one-character strings; everything else goes
// through mapstructure's weak typing (e.g. TOML int64 into a float slot).
func decodeDefault(t ValueType, raw any, slot any) error {
	if raw == nil {
		return nil
	}

	if t == TypeChar {
		s, ok := raw.(string)
		if !ok {
			return fmt.Errorf("char default must be a string, got %T", raw)
		}
		r, size := utf8.DecodeRuneInString(s)
		if s == "" || size != len(s) || (r == utf8.RuneError && size == 1) {
			return fmt.Errorf("char default %q is not exactly one character", s)
		}
		*slot.(*rune) = r
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           slot,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("invalid %s default %v: %w", t, raw, err)
	}
	return nil
}
