// FILE: lixenwraith/microconf/convenience_test.go
package microconf

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestQuick tests the one-call struct parse helper
func TestQuick(t *testing.T) {
	t.Run("SampleFile", func(t *testing.T) {
		cfg := &myConf{
			AnInteger: 10,
			AFloat:    11,
			ADouble:   123.123,
			ABool:     true,
			AChar:     'F',
			AStr:      "test",
			Vec:       vec2{X: 1, Y: 1},
		}

		require.NoError(t, Quick(cfg, filepath.Join("testdata", "micro.conf")))

		assert.Equal(t, 69, cfg.AnInteger)
		assert.Equal(t, float32(420.1), cfg.AFloat)
		assert.Equal(t, 78.78, cfg.ADouble)
		assert.False(t, cfg.ABool)
		assert.Equal(t, 'f', cfg.AChar)
		assert.Equal(t, "here is a string", cfg.AStr)
		assert.Equal(t, vec2{X: 500, Y: 200}, cfg.Vec)
	})

	t.Run("BindFailure", func(t *testing.T) {
		err := Quick(myConf{}, filepath.Join("testdata", "micro.conf"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to bind struct")
	})

	t.Run("ParseFailure", func(t *testing.T) {
		path := writeConfig(t, "an_integer = lots\n")
		err := Quick(&myConf{}, path)
		assert.ErrorIs(t, err, ErrInvalidInt)
	})
}

// TestMustParse tests the panicking variants
func TestMustParse(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var n int
		path := writeConfig(t, "n = 5\n")
		assert.NotPanics(t, func() { MustParse([]Binding{Int("n", &n)}, path) })
		assert.Equal(t, 5, n)
	})

	t.Run("Panics", func(t *testing.T) {
		var n int
		path := writeConfig(t, "n = five\n")
		assert.Panics(t, func() { MustParse([]Binding{Int("n", &n)}, path) })
	})

	t.Run("BuilderMissingFileIsNotFatal", func(t *testing.T) {
		n := 3
		var table *Table
		assert.NotPanics(t, func() {
			table = NewBuilder().WithArgs(nil).Int("n", &n).MustParse()
		})
		require.NotNil(t, table)
		assert.Equal(t, 3, n)
	})

	t.Run("BuilderPanics", func(t *testing.T) {
		var n int
		path := writeConfig(t, "n = five\n")
		assert.Panics(t, func() { NewBuilder().Int("n", &n).WithFile(path).MustParse() })
	})
}

// TestDebug tests the table dump
func TestDebug(t *testing.T) {
	n, s, c := 42, "svc", 'x'
	table := NewTable(Int("n", &n), String("name", &s), Char("sep", &c), Bind(TypeInt, "broken", nil))

	out := table.Debug()
	assert.Contains(t, out, "Configuration Debug Info:")
	assert.NotContains(t, out, "File:")
	assert.Contains(t, out, "  n (Int): 42\n")
	assert.Contains(t, out, "  name (String): svc\n")
	assert.Contains(t, out, "  sep (Char): x\n")
	assert.Contains(t, out, "  broken (Int): <invalid>\n")

	path := writeConfig(t, "n = 7\n")
	parsed := NewTable(Int("n", &n))
	require.NoError(t, parsed.Parse(path))
	assert.Contains(t, parsed.Debug(), "File: "+path)
}

// TestFormatValue tests that formatted values parse back to the same value
func TestFormatValue(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{true, "true"},
		{-17, "-17"},
		{float32(420.1), "420.1"},
		{78.78, "78.78"},
		{'f', "f"},
		{"here is a string", "here is a string"},
		{uint8(3), "3"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatValue(tt.value))
	}

	t.Run("RoundTrip", func(t *testing.T) {
		f := float32(0.1)
		content := "f = " + FormatValue(f) + "\n"

		var got float32
		require.NoError(t, Parse([]Binding{Float("f", &got)}, writeConfig(t, content)))
		assert.Equal(t, f, got)
	})
}
