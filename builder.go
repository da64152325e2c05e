// FILE: lixenwraith/microconf/builder.go
package microconf

import (
	"errors"
	"fmt"
	"os"
	"reflect"
)

// ValidatorFunc validates a Table after its file has been parsed.
type ValidatorFunc func(t *Table) error

// Table is an ordered binding table together with the file it was last parsed from.
type Table struct {
	bindings []Binding
	path     string
}

// NewTable creates a Table over the given bindings.
func NewTable(bindings ...Binding) *Table {
	return &Table{bindings: append([]Binding{}, bindings...)}
}

// Bindings returns a copy of the table's bindings in order.
func (t *Table) Bindings() []Binding {
	return append([]Binding(nil), t.bindings...)
}

// Path returns the file last parsed into the table, or "" if none.
func (t *Table) Path() string {
	return t.path
}

// Keys returns the binding keys in table order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.bindings))
	for _, b := range t.bindings {
		keys = append(keys, b.Key)
	}
	return keys
}

// Get returns the current value of the first binding with key.
func (t *Table) Get(key string) (any, bool) {
	for _, b := range t.bindings {
		if b.Key == key {
			return b.Value()
		}
	}
	return nil, false
}

// Values returns the current value of every binding keyed by binding key.
// Duplicate keys report the first binding.
func (t *Table) Values() map[string]any {
	values := make(map[string]any, len(t.bindings))
	for _, b := range t.bindings {
		if _, seen := values[b.Key]; seen {
			continue
		}
		if v, ok := b.Value(); ok {
			values[b.Key] = v
		}
	}
	return values
}

// Parse parses path into the table's destinations.
func (t *Table) Parse(path string) error {
	return t.ParseWithOptions(path, DefaultParseOptions())
}

// ParseWithOptions parses path into the table's destinations with custom options.
func (t *Table) ParseWithOptions(path string, opts ParseOptions) error {
	if t.bindings == nil {
		t.bindings = []Binding{}
	}
	if err := ParseWithOptions(t.bindings, path, opts); err != nil {
		return err
	}
	t.path = path
	return nil
}

// Builder provides a fluent interface for building binding tables
type Builder struct {
	bindings   []Binding
	opts       ParseOptions
	file       string
	args       []string
	err        error
	validators []ValidatorFunc
}

// NewBuilder creates a new table builder
func NewBuilder() *Builder {
	return &Builder{
		bindings:   make([]Binding, 0),
		opts:       DefaultParseOptions(),
		args:       os.Args[1:],
		validators: make([]ValidatorFunc, 0),
	}
}

// WithBinding appends bindings to the table. Keys are checked here so that a
// key that could never match a line is reported at Build time.
func (b *Builder) WithBinding(bindings ...Binding) *Builder {
	for _, binding := range bindings {
		if err := validateKey(binding.Key); err != nil && b.err == nil {
			b.err = err
		}
		b.bindings = append(b.bindings, binding)
	}
	return b
}

// Bool appends a Bool binding
func (b *Builder) Bool(key string, dst *bool) *Builder {
	return b.WithBinding(Bool(key, dst))
}

// Int appends an Int binding
func (b *Builder) Int(key string, dst *int) *Builder {
	return b.WithBinding(Int(key, dst))
}

// Float appends a Float binding
func (b *Builder) Float(key string, dst *float32) *Builder {
	return b.WithBinding(Float(key, dst))
}

// Double appends a Double binding
func (b *Builder) Double(key string, dst *float64) *Builder {
	return b.WithBinding(Double(key, dst))
}

// Char appends a Char binding
func (b *Builder) Char(key string, dst *rune) *Builder {
	return b.WithBinding(Char(key, dst))
}

// String appends a String binding
func (b *Builder) String(key string, dst *string) *Builder {
	return b.WithBinding(String(key, dst))
}

// WithStruct appends the bindings derived from a tagged struct pointer
func (b *Builder) WithStruct(prefix string, target any) *Builder {
	bindings, err := BindStruct(prefix, target)
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return b
	}
	return b.WithBinding(bindings...)
}

// WithFile sets the configuration file path
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithArgs sets the command-line arguments used by file discovery
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithOptions sets the parse options
func (b *Builder) WithOptions(opts ParseOptions) *Builder {
	b.opts = opts
	return b
}

// WithValidator adds a validation function that runs after a successful parse
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build creates the Table without parsing any file
func (b *Builder) Build() (*Table, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := checkBindings(b.bindings); err != nil {
		return nil, err
	}
	return NewTable(b.bindings...), nil
}

// Parse builds the table, parses the configured file into it and runs validators.
// With no file configured or discovered it returns the table and ErrConfigNotFound;
// destinations keep their defaults and validators still run.
func (b *Builder) Parse() (*Table, error) {
	table, err := b.Build()
	if err != nil {
		return nil, err
	}

	var loadErr error
	if b.file == "" {
		loadErr = ErrConfigNotFound
	} else if err := table.ParseWithOptions(b.file, b.opts); err != nil {
		return nil, err
	}

	var errs []error
	for _, validator := range b.validators {
		if err := validator(table); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration validation failed: %w", errors.Join(errs...))
	}

	// ErrConfigNotFound or nil
	return table, loadErr
}

// Required returns a validator failing when any key still holds the zero value of its type
func Required(keys ...string) ValidatorFunc {
	return func(t *Table) error {
		var missing []error
		for _, key := range keys {
			v, ok := t.Get(key)
			if !ok {
				missing = append(missing, fmt.Errorf("key %q is not bound", key))
				continue
			}
			if reflect.ValueOf(v).IsZero() {
				missing = append(missing, fmt.Errorf("key %q is not set", key))
			}
		}
		return errors.Join(missing...)
	}
}
