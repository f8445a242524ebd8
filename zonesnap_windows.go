//go:build windows

package zonesnap

import (
	"log/slog"

	"golang.org/x/sys/windows"

	"zonesnap/display"
	"zonesnap/dpictx"
	"zonesnap/settings"
	"zonesnap/snapshot"
	"zonesnap/vdesktop"
)

// Export captures the current monitor topology under the preferences in s
// and writes the editor-parameters document to its default save location,
// returning the written path. A nil logger falls back to slog.Default().
func Export(s settings.Settings, log *slog.Logger) (string, error) {
	if log == nil {
		log = slog.Default()
	}

	exec := dpictx.NewUnaware()
	defer exec.Close()

	b := &snapshot.Builder{
		Desktop:   vdesktop.Registry{},
		Run:       exec.Run,
		List:      display.List,
		Target:    display.TargetMonitor,
		DPI:       display.DPIForMonitor,
		ProcessID: int(windows.GetCurrentProcessId()),
		Log:       log,
	}

	doc, err := b.Build(snapshot.Config{
		SpanZonesAcrossMonitors:      s.SpanZonesAcrossMonitors,
		UseCursorPosForStartupScreen: s.UseCursorPosForStartupScreen,
	})
	if err != nil {
		log.Error("capture monitor topology", "error", err)
		return "", err
	}

	path, err := snapshot.DefaultPath()
	if err != nil {
		return "", err
	}
	if err := snapshot.Write(path, doc); err != nil {
		log.Error("write editor parameters", "error", err)
		return "", err
	}
	return path, nil
}
