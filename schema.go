// FILE: lixenwraith/microconf/schema.go
package microconf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Field describes one binding of a schema.
type Field struct {
	Key     string    `mapstructure:"key"`
	Type    ValueType `mapstructure:"type"`
	Default any       `mapstructure:"default"`
}

// Schema is a binding table described in a data file instead of Go code.
// In TOML:
//
//	name = "server"
//
//	[[field]]
//	key = "port"
//	type = "int"
//	default = 8080
type Schema struct {
	Name   string  `mapstructure:"name"`
	Fields []Field `mapstructure:"field"`
}

// LoadSchema reads a schema file. The format is taken from the extension
// (.toml, .json, .yaml, .yml) or detected from the content.
func LoadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file '%s': %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
	}

	schema, err := ParseSchema(data, format)
	if err != nil {
		return nil, fmt.Errorf("schema file '%s': %w", path, err)
	}
	return schema, nil
}

// ParseSchema decodes schema data in the given format ("toml", "json" or "yaml").
func ParseSchema(data []byte, format string) (*Schema, error) {
	raw := make(map[string]any)
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse TOML schema: %w", err)
		}
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON schema: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML schema: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to determine schema format %q", format)
	}
	return decodeSchema(raw)
}

// Instantiate allocates one destination per field, initialized to the field
// default, and returns a Table bound to them. The table owns its storage.
func (s *Schema) Instantiate() (*Table, error) {
	seen := make(map[string]bool, len(s.Fields))
	bindings := make([]Binding, 0, len(s.Fields))

	for i, field := range s.Fields {
		if err := validateKey(field.Key); err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
		if seen[field.Key] {
			return nil, fmt.Errorf("field %d: duplicate key %q", i, field.Key)
		}
		seen[field.Key] = true

		slot, err := newSlot(field.Type)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field.Key, err)
		}
		if err := decodeDefault(field.Type, field.Default, slot); err != nil {
			return nil, fmt.Errorf("field %q: %w", field.Key, err)
		}
		bindings = append(bindings, Bind(field.Type, field.Key, slot))
	}

	return NewTable(bindings...), nil
}

// newSlot allocates zeroed storage for a value type.
func newSlot(t ValueType) (any, error) {
	switch t {
	case TypeBool:
		return new(bool), nil
	case TypeInt:
		return new(int), nil
	case TypeFloat:
		return new(float32), nil
	case TypeDouble:
		return new(float64), nil
	case TypeChar:
		return new(rune), nil
	case TypeString:
		return new(string), nil
	default:
		return nil, &ParseError{Kind: UnknownType, Err: fmt.Errorf("value type %s", t)}
	}
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing
func detectFormatFromContent(data []byte) string {
	// Try JSON first (strict format)
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	// TOML before YAML: a TOML table header is a valid YAML flow sequence
	var tomlTest map[string]any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	var yamlTest any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	return ""
}
