// FILE: lixenwraith/microconf/errors.go
package microconf

import (
	"errors"
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=ErrorKind -output=errorkind_string.go

// ErrorKind classifies the outcome of a parse call.
type ErrorKind int

const (
	OK ErrorKind = iota
	NullConfiguration
	FileOpenFailure
	FileCloseFailure
	UnknownType
	InvalidBool
	InvalidInt
	InvalidDouble
	InvalidFloat
	InvalidChar
	ReadFailure
)

// Sentinel errors, one per failing ErrorKind. A *ParseError matches its kind's
// sentinel with errors.Is.
var (
	ErrNullConfiguration = errors.New("null configuration")
	ErrFileOpen          = errors.New("failed to open config file")
	ErrFileClose         = errors.New("failed to close config file")
	ErrUnknownType       = errors.New("unknown binding type")
	ErrInvalidBool       = errors.New("invalid bool value")
	ErrInvalidInt        = errors.New("invalid int value")
	ErrInvalidDouble     = errors.New("invalid double value")
	ErrInvalidFloat      = errors.New("invalid float value")
	ErrInvalidChar       = errors.New("invalid char value")
	ErrRead              = errors.New("failed to read config stream")

	// ErrConfigNotFound is returned by Builder.Parse when no file was given or discovered.
	// It is not fatal: the table is still returned with its destinations untouched.
	ErrConfigNotFound = errors.New("configuration file not found")
)

var kindErrors = [...]error{
	OK:                nil,
	NullConfiguration: ErrNullConfiguration,
	FileOpenFailure:   ErrFileOpen,
	FileCloseFailure:  ErrFileClose,
	UnknownType:       ErrUnknownType,
	InvalidBool:       ErrInvalidBool,
	InvalidInt:        ErrInvalidInt,
	InvalidDouble:     ErrInvalidDouble,
	InvalidFloat:      ErrInvalidFloat,
	InvalidChar:       ErrInvalidChar,
	ReadFailure:       ErrRead,
}

// Code returns the numeric result code of the kind: 0 for OK, negative otherwise.
func (k ErrorKind) Code() int {
	return -int(k)
}

// Err returns the sentinel error for the kind, or nil for OK and unknown kinds.
func (k ErrorKind) Err() error {
	if k < 0 || int(k) >= len(kindErrors) {
		return nil
	}
	return kindErrors[k]
}

// conversion reports whether the kind is a value conversion failure.
func (k ErrorKind) conversion() bool {
	switch k {
	case InvalidBool, InvalidInt, InvalidDouble, InvalidFloat, InvalidChar:
		return true
	default:
		return false
	}
}

// ParseError is the error returned by every parse entry point.
type ParseError struct {
	Kind  ErrorKind
	Key   string // Binding key involved, empty when not key specific
	Line  int    // 1-based physical line, 0 when not line specific
	Value string // Raw value that failed conversion
	Err   error  // Underlying cause, may be nil
}

func (e *ParseError) Error() string {
	var b strings.Builder
	if sentinel := e.Kind.Err(); sentinel != nil {
		b.WriteString(sentinel.Error())
	} else {
		b.WriteString(e.Kind.String())
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d", e.Line)
	}
	if e.Key != "" {
		fmt.Fprintf(&b, " for key %q", e.Key)
	}
	if e.Kind.conversion() {
		fmt.Fprintf(&b, ": %q", e.Value)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error of the kind.
func (e *ParseError) Is(target error) bool {
	sentinel := e.Kind.Err()
	return sentinel != nil && target == sentinel
}

// KindOf extracts the ErrorKind carried by err.
// A nil error yields OK. The second return value is false when err is not a parse error.
func KindOf(err error) (ErrorKind, bool) {
	if err == nil {
		return OK, true
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return OK, false
}
