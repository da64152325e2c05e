// File: lixenwraith/microconf/doc.go

// Package microconf parses line-oriented `key = value` configuration files into
// caller-owned, typed variables.
//
// Features:
//   - Ordered binding tables: Bool, Int, Float, Double, Char and String destinations
//   - `=`, `:` or plain whitespace between key and value
//   - `#` comments, blank lines and CRLF line endings
//   - Strict per-type conversion with typed error kinds and numeric result codes
//   - Struct binding with `conf` tags, fluent Builder, validators
//   - Schema-described tables in TOML, YAML or JSON
//   - Config file discovery (CLI flag, env var, current dir, XDG directories)
//
// File Format:
//
//	an_integer = 69
//	a_str: here is a string   # trailing comment
//	vec.x    500
//	# full-line comment
//
// Quick Start:
//
//	var (
//	    port = 8080
//	    host = "localhost"
//	)
//
//	err := microconf.Parse([]microconf.Binding{
//	    microconf.Int("port", &port),
//	    microconf.String("host", &host),
//	}, "server.conf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Matching Rules:
// For each line the bindings are tried in order and the first key that is a
// prefix of the line, followed by whitespace, a separator or the end of the
// line, wins. Unknown keys are ignored and bindings absent from the file keep
// their values, so destinations act as defaults. A key repeated on several
// lines takes the value of the last one.
//
// Errors:
// Parsing stops at the first failure and returns a *ParseError. Use errors.Is
// with the Err* sentinels or KindOf to classify it; ErrorKind.Code gives the
// numeric result code. Destinations written before the failing line are not
// rolled back.
//
// Thread Safety:
// A parse call writes destinations without locking. Do not share a binding
// table between concurrent parse calls.
package microconf
