// Package settings loads the editor preferences the exporter honors.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Settings carries the two capture preferences. Callers pass the loaded
// value into the snapshot builder explicitly; nothing here is read from
// ambient process state.
type Settings struct {
	// SpanZonesAcrossMonitors treats every display as one zoning surface.
	SpanZonesAcrossMonitors bool `toml:"span_zones_across_monitors"`
	// UseCursorPosForStartupScreen opens the editor on the display under
	// the pointer instead of the one hosting the foreground window.
	UseCursorPosForStartupScreen bool `toml:"use_cursor_pos_for_startup_screen"`
}

// Default returns the settings used when no file exists.
func Default() Settings {
	return Settings{
		SpanZonesAcrossMonitors:      false,
		UseCursorPosForStartupScreen: true,
	}
}

// Load reads settings from the TOML file at path. A missing file is not an
// error; defaults apply.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}

	s := Default()
	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s, nil
}
