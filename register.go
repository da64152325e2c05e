package microconf

import (
	"fmt"
	"reflect"
	"strings"
)

// TagName is the struct tag read by BindStruct.
const TagName = "conf"

var (
	boolPtrType    = reflect.TypeOf((*bool)(nil))
	intPtrType     = reflect.TypeOf((*int)(nil))
	float32PtrType = reflect.TypeOf((*float32)(nil))
	float64PtrType = reflect.TypeOf((*float64)(nil))
	runePtrType    = reflect.TypeOf((*rune)(nil))
	stringPtrType  = reflect.TypeOf((*string)(nil))
)

// BindStruct derives bindings from the exported fields of a struct pointer.
// It uses struct tags (`conf:"..."`) to determine the keys; untagged fields use
// the field name and `conf:"-"` skips a field. Nested structs are bound with
// dotted keys ("vec.x"). The prefix is prepended to all keys.
//
// Supported field kinds are bool, int, float32 (Float), float64 (Double) and
// string. An int32 field tagged with the "char" option (`conf:"sep,char"`)
// is bound as a Char.
func BindStruct(prefix string, target any) ([]Binding, error) {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return nil, fmt.Errorf("BindStruct requires a non-nil struct pointer, got %T", target)
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("BindStruct requires a struct pointer, got %T", target)
	}

	var bindings []Binding
	var errors []string
	bindFields(v, prefix, "", &bindings, &errors)

	if len(errors) > 0 {
		return nil, fmt.Errorf("failed to bind %d field(s): %s", len(errors), strings.Join(errors, "; "))
	}
	return bindings, nil
}

// bindFields walks the fields of v recursively, appending one binding per leaf field.
func bindFields(v reflect.Value, keyPrefix, fieldPath string, bindings *[]Binding, errors *[]string) {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get(TagName)
		if tag == "-" {
			continue
		}

		key := field.Name
		var asChar bool
		if tag != "" {
			parts := strings.Split(tag, ",")
			if parts[0] != "" {
				key = parts[0]
			}
			for _, opt := range parts[1:] {
				if opt == "char" {
					asChar = true
				}
			}
		}
		currentKey := joinKey(keyPrefix, key)

		// Nested structs, including non-nil pointers to structs
		if fieldValue.Kind() == reflect.Ptr && field.Type.Elem().Kind() == reflect.Struct {
			if fieldValue.IsNil() {
				continue
			}
			fieldValue = fieldValue.Elem()
		}
		if fieldValue.Kind() == reflect.Struct {
			bindFields(fieldValue, currentKey+".", fieldPath+field.Name+".", bindings, errors)
			continue
		}

		if err := validateKey(currentKey); err != nil {
			*errors = append(*errors, fmt.Sprintf("field %s%s: %v", fieldPath, field.Name, err))
			continue
		}

		addr := fieldValue.Addr()
		var binding Binding
		switch kind := fieldValue.Kind(); {
		case kind == reflect.Bool:
			binding = Bool(currentKey, addr.Convert(boolPtrType).Interface().(*bool))
		case kind == reflect.Int:
			binding = Int(currentKey, addr.Convert(intPtrType).Interface().(*int))
		case kind == reflect.Float32:
			binding = Float(currentKey, addr.Convert(float32PtrType).Interface().(*float32))
		case kind == reflect.Float64:
			binding = Double(currentKey, addr.Convert(float64PtrType).Interface().(*float64))
		case kind == reflect.String:
			binding = String(currentKey, addr.Convert(stringPtrType).Interface().(*string))
		case kind == reflect.Int32 && asChar:
			binding = Char(currentKey, addr.Convert(runePtrType).Interface().(*rune))
		default:
			*errors = append(*errors, fmt.Sprintf("field %s%s (key %s): unsupported type %s", fieldPath, field.Name, currentKey, field.Type))
			continue
		}
		*bindings = append(*bindings, binding)
	}
}
