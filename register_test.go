// FILE: lixenwraith/microconf/register_test.go
package microconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vec2 struct {
	X int `conf:"x"`
	Y int `conf:"y"`
}

type myConf struct {
	AnInteger int     `conf:"an_integer"`
	AFloat    float32 `conf:"a_float"`
	ADouble   float64 `conf:"a_double"`
	ABool     bool    `conf:"a_bool"`
	AChar     rune    `conf:"a_char,char"`
	AStr      string  `conf:"a_str"`
	Vec       vec2    `conf:"vec"`
	Ignored   string  `conf:"-"`
	hidden    int
}

// TestBindStruct tests binding derivation from tagged structs
func TestBindStruct(t *testing.T) {
	t.Run("AllKinds", func(t *testing.T) {
		cfg := &myConf{}
		bindings, err := BindStruct("", cfg)
		require.NoError(t, err)

		keys := make([]string, 0, len(bindings))
		types := make([]ValueType, 0, len(bindings))
		for _, b := range bindings {
			keys = append(keys, b.Key)
			types = append(types, b.Type)
		}
		assert.Equal(t, []string{"an_integer", "a_float", "a_double", "a_bool", "a_char", "a_str", "vec.x", "vec.y"}, keys)
		assert.Equal(t, []ValueType{TypeInt, TypeFloat, TypeDouble, TypeBool, TypeChar, TypeString, TypeInt, TypeInt}, types)
		assert.Same(t, &cfg.Vec.X, bindings[6].Dest())
	})

	t.Run("ParseIntoStruct", func(t *testing.T) {
		path := writeConfig(t, "an_integer = 69\na_char = f\nvec.x = 500\nvec.y: 200\nIgnored = nope\n")

		cfg := &myConf{AnInteger: 10, AStr: "test", Ignored: "keep"}
		bindings, err := BindStruct("", cfg)
		require.NoError(t, err)
		require.NoError(t, Parse(bindings, path))

		assert.Equal(t, 69, cfg.AnInteger)
		assert.Equal(t, 'f', cfg.AChar)
		assert.Equal(t, vec2{X: 500, Y: 200}, cfg.Vec)
		assert.Equal(t, "test", cfg.AStr)
		assert.Equal(t, "keep", cfg.Ignored)
	})

	t.Run("PrefixAndUntaggedFields", func(t *testing.T) {
		type Server struct {
			Host string
			Port int `conf:"port"`
		}
		bindings, err := BindStruct("server", &Server{})
		require.NoError(t, err)
		require.Len(t, bindings, 2)
		assert.Equal(t, "server.Host", bindings[0].Key)
		assert.Equal(t, "server.port", bindings[1].Key)

		bindings, err = BindStruct("server.", &Server{})
		require.NoError(t, err)
		assert.Equal(t, "server.port", bindings[1].Key)
	})

	t.Run("NamedTypes", func(t *testing.T) {
		type Port int
		type Name string
		type Conf struct {
			Port Port `conf:"port"`
			Name Name `conf:"name"`
		}
		path := writeConfig(t, "port = 443\nname = edge\n")

		cfg := &Conf{}
		bindings, err := BindStruct("", cfg)
		require.NoError(t, err)
		require.NoError(t, Parse(bindings, path))
		assert.Equal(t, Port(443), cfg.Port)
		assert.Equal(t, Name("edge"), cfg.Name)
	})

	t.Run("PointerToStruct", func(t *testing.T) {
		type Conf struct {
			Vec  *vec2 `conf:"vec"`
			Skip *vec2 `conf:"skip"`
		}
		cfg := &Conf{Vec: &vec2{}}
		bindings, err := BindStruct("", cfg)
		require.NoError(t, err)
		require.Len(t, bindings, 2)
		assert.Equal(t, "vec.x", bindings[0].Key)
	})

	t.Run("UnsupportedFields", func(t *testing.T) {
		type Conf struct {
			Count  int64   `conf:"count"`
			Sep    int32   `conf:"sep"`
			Tags   []string
			Weight float64 `conf:"weight"`
		}
		_, err := BindStruct("", &Conf{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to bind 3 field(s)")
		assert.Contains(t, err.Error(), "count")
		assert.Contains(t, err.Error(), "Tags")
	})

	t.Run("InvalidTargets", func(t *testing.T) {
		_, err := BindStruct("", myConf{})
		assert.Error(t, err)

		var nilConf *myConf
		_, err = BindStruct("", nilConf)
		assert.Error(t, err)

		n := 1
		_, err = BindStruct("", &n)
		assert.Error(t, err)
	})

	t.Run("InvalidKey", func(t *testing.T) {
		type Conf struct {
			Bad int `conf:"bad key"`
		}
		_, err := BindStruct("", &Conf{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "whitespace")
	})

	t.Run("BuilderWithStruct", func(t *testing.T) {
		path := writeConfig(t, "app.vec.x = 3\n")
		cfg := &myConf{}

		_, err := NewBuilder().WithStruct("app", cfg).WithFile(path).Parse()
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Vec.X)

		_, err = NewBuilder().WithStruct("", 42).Build()
		assert.Error(t, err)
	})
}
