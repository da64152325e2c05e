// FILE: lixenwraith/microconf/parse.go
package microconf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ParseOptions configures how a config file is opened and read.
type ParseOptions struct {
	// MaxFileSize rejects files larger than this many bytes (0 = unlimited)
	MaxFileSize int64

	// PreventPathTraversal rejects relative paths that climb out of the working directory
	PreventPathTraversal bool
}

// DefaultParseOptions returns the standard parse options
func DefaultParseOptions() ParseOptions {
	return ParseOptions{}
}

// fileHandle is the part of *os.File the parser needs.
type fileHandle interface {
	io.ReadCloser
	Stat() (os.FileInfo, error)
}

var openFile = func(path string) (fileHandle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Parse reads the file at path and writes every matched value into its binding's destination.
//
// Bindings are tried in order for each line and the first key that matches wins.
// Keys absent from the file leave their destinations untouched, and lines whose
// key matches no binding are ignored. When a key appears on several lines the
// last one wins.
//
// The first conversion failure aborts the call with a *ParseError. Destinations
// written by earlier lines keep their new values.
func Parse(bindings []Binding, path string) error {
	return ParseWithOptions(bindings, path, DefaultParseOptions())
}

// ParseWithOptions is Parse with custom options.
func ParseWithOptions(bindings []Binding, path string, opts ParseOptions) (err error) {
	if err := checkBindings(bindings); err != nil {
		return err
	}
	if err := opts.checkPath(path); err != nil {
		return err
	}

	file, err := openFile(path)
	if err != nil {
		return &ParseError{Kind: FileOpenFailure, Err: err}
	}
	defer func() {
		// Parse errors take precedence over the close error
		if cerr := file.Close(); cerr != nil && err == nil {
			err = &ParseError{Kind: FileCloseFailure, Err: fmt.Errorf("config file '%s': %w", path, cerr)}
		}
	}()

	info, err := file.Stat()
	if err != nil {
		return &ParseError{Kind: FileOpenFailure, Err: err}
	}
	if info.IsDir() {
		return &ParseError{Kind: FileOpenFailure, Err: fmt.Errorf("config path '%s' is a directory", path)}
	}

	var reader io.Reader = file
	if opts.MaxFileSize > 0 {
		if info.Size() > opts.MaxFileSize {
			return &ParseError{Kind: FileOpenFailure, Err: fmt.Errorf("config file '%s' exceeds maximum size %d bytes", path, opts.MaxFileSize)}
		}
		// The file may grow between Stat and read
		reader = io.LimitReader(file, opts.MaxFileSize)
	}

	return parse(bindings, reader)
}

// ParseReader is Parse over an already open stream. The caller keeps ownership of r.
func ParseReader(bindings []Binding, r io.Reader) error {
	if err := checkBindings(bindings); err != nil {
		return err
	}
	if r == nil {
		return &ParseError{Kind: FileOpenFailure, Err: fmt.Errorf("nil reader")}
	}
	return parse(bindings, r)
}

// parse runs the scanner and resolver over r, one line at a time.
func parse(bindings []Binding, r io.Reader) error {
	s := NewScanner(r)
	for {
		c, ok := s.Next()
		if !ok {
			break
		}
		if err := resolve(c, bindings); err != nil {
			return err
		}
	}
	if err := s.Err(); err != nil {
		return &ParseError{Kind: ReadFailure, Line: s.Line() + 1, Err: err}
	}
	return nil
}

// checkPath applies the path restrictions of the options.
func (o ParseOptions) checkPath(path string) error {
	if !o.PreventPathTraversal {
		return nil
	}
	cleanPath := filepath.Clean(path)
	if cleanPath == ".." || strings.HasPrefix(cleanPath, ".."+string(filepath.Separator)) {
		return &ParseError{Kind: FileOpenFailure, Err: fmt.Errorf("potential path traversal detected in config path: %s", path)}
	}
	return nil
}
