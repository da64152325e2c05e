// File: lixenwraith/microconf/helper.go
package microconf

import (
	"fmt"
	"strings"
)

// validateKey checks that a binding key can ever match a candidate line.
// Keys cannot be empty, contain whitespace, or contain the comment character.
func validateKey(key string) error {
	if key == "" {
		return fmt.Errorf("binding key cannot be empty")
	}
	if strings.ContainsAny(key, whitespace) {
		return fmt.Errorf("binding key %q contains whitespace", key)
	}
	if strings.ContainsRune(key, '#') {
		return fmt.Errorf("binding key %q contains the comment character", key)
	}
	return nil
}

// joinKey joins a dotted prefix and a key, tolerating a trailing dot on the prefix.
func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	if !strings.HasSuffix(prefix, ".") {
		prefix += "."
	}
	return prefix + key
}
