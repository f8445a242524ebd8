package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	content := "span_zones_across_monitors = true\nuse_cursor_pos_for_startup_screen = false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.True(t, s.SpanZonesAcrossMonitors)
	assert.False(t, s.UseCursorPosForStartupScreen)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("span_zones_across_monitors = true\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.True(t, s.SpanZonesAcrossMonitors)
	assert.True(t, s.UseCursorPosForStartupScreen, "unset field should keep its default")
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("span_zones_across_monitors = {"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
