// FILE: lixenwraith/microconf/discovery_test.go
package microconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDiscover tests config file discovery precedence
func TestDiscover(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())

	t.Run("Defaults", func(t *testing.T) {
		opts := DefaultDiscoveryOptions("my-app")
		assert.Equal(t, "MY_APP_CONFIG", opts.EnvVar)
		assert.Equal(t, "--config", opts.CLIFlag)
		assert.Equal(t, []string{".conf", ".cfg", ""}, opts.Extensions)
	})

	t.Run("CLIFlag", func(t *testing.T) {
		opts := DefaultDiscoveryOptions("app")

		path, ok := Discover(opts, []string{"--verbose", "--config", "/tmp/a.conf"})
		assert.True(t, ok)
		assert.Equal(t, "/tmp/a.conf", path)

		path, ok = Discover(opts, []string{"--config=/tmp/b.conf"})
		assert.True(t, ok)
		assert.Equal(t, "/tmp/b.conf", path)
	})

	t.Run("EnvVar", func(t *testing.T) {
		t.Setenv("APP_CONFIG", "/etc/from-env.conf")
		opts := DefaultDiscoveryOptions("app")

		path, ok := Discover(opts, nil)
		assert.True(t, ok)
		assert.Equal(t, "/etc/from-env.conf", path)

		// CLI still wins
		path, _ = Discover(opts, []string{"--config", "cli.conf"})
		assert.Equal(t, "cli.conf", path)
	})

	t.Run("SearchPaths", func(t *testing.T) {
		first := t.TempDir()
		second := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(second, "svc.cfg"), []byte("a = 1\n"), 0644))

		opts := FileDiscoveryOptions{
			Name:       "svc",
			Extensions: []string{".conf", ".cfg"},
			Paths:      []string{first, second},
		}
		path, ok := Discover(opts, nil)
		assert.True(t, ok)
		assert.Equal(t, filepath.Join(second, "svc.cfg"), path)

		// Extension order applies within a directory
		require.NoError(t, os.WriteFile(filepath.Join(second, "svc.conf"), []byte("a = 2\n"), 0644))
		path, _ = Discover(opts, nil)
		assert.Equal(t, filepath.Join(second, "svc.conf"), path)
	})

	t.Run("XDG", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", home)
		require.NoError(t, os.MkdirAll(filepath.Join(home, "xdgapp"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(home, "xdgapp", "xdgapp.conf"), []byte(""), 0644))

		opts := FileDiscoveryOptions{Name: "xdgapp", Extensions: []string{".conf"}, UseXDG: true}
		path, ok := Discover(opts, nil)
		assert.True(t, ok)
		assert.Equal(t, filepath.Join(home, "xdgapp", "xdgapp.conf"), path)
	})

	t.Run("SkipsDirectories", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "svc.conf"), 0755))

		opts := FileDiscoveryOptions{Name: "svc", Extensions: []string{".conf"}, Paths: []string{dir}}
		_, ok := Discover(opts, nil)
		assert.False(t, ok)
	})

	t.Run("NotFound", func(t *testing.T) {
		opts := FileDiscoveryOptions{Name: "nothing-here", Extensions: []string{".conf"}, Paths: []string{t.TempDir()}}
		path, ok := Discover(opts, nil)
		assert.False(t, ok)
		assert.Empty(t, path)
	})

	t.Run("BuilderDiscovery", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "found.conf"), []byte("n = 8\n"), 0644))

		var n int
		table, err := NewBuilder().
			WithArgs(nil).
			Int("n", &n).
			WithFileDiscovery(FileDiscoveryOptions{Name: "found", Extensions: []string{".conf"}, Paths: []string{dir}}).
			Parse()

		require.NoError(t, err)
		assert.Equal(t, 8, n)
		assert.Equal(t, filepath.Join(dir, "found.conf"), table.Path())
	})
}
