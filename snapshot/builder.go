package snapshot

import (
	"log/slog"

	"zonesnap/display"
)

// Config carries the capture preferences for one build. It is passed in
// explicitly rather than read from ambient settings so builds stay
// reproducible under test.
type Config struct {
	SpanZonesAcrossMonitors      bool
	UseCursorPosForStartupScreen bool
}

// DesktopResolver reports the identifier of the active virtual desktop.
// The second result is false when none is available.
type DesktopResolver interface {
	CurrentDesktopID() (string, bool)
}

// Builder assembles a Document from raw display state. Desktop, List,
// Target and DPI must be set; Run and Log are optional. On Windows the
// exporter wires the display package arms and a dpictx unaware worker;
// tests inject fakes.
type Builder struct {
	Desktop DesktopResolver

	// Run executes a geometry query under the alternate DPI context,
	// blocking until it completes. When nil the query runs inline.
	Run func(func())

	List   func() []display.Info
	Target func(useCursorPos bool) uintptr
	DPI    func(handle uintptr) (uint32, error)

	ProcessID int
	Log       *slog.Logger
}

// Build captures the current monitor topology. It fails with
// ErrNoVirtualDesktopID or ErrNoTargetMonitor; a display whose DPI cannot
// be queried is omitted and the build continues.
func (b *Builder) Build(cfg Config) (*Document, error) {
	desktop, ok := b.Desktop.CurrentDesktopID()
	if !ok {
		return nil, ErrNoVirtualDesktopID
	}

	doc := &Document{
		ProcessID:               b.ProcessID,
		SpanZonesAcrossMonitors: cfg.SpanZonesAcrossMonitors,
	}

	var infos []display.Info
	b.run(func() {
		infos = b.List()
	})

	if cfg.SpanZonesAcrossMonitors {
		work := display.CombinedRect(infos, display.WorkRect)
		full := display.CombinedRect(infos, display.MonitorRect)
		doc.Monitors = append(doc.Monitors, Monitor{
			MonitorName:    MultiMonitorDeviceID,
			VirtualDesktop: desktop,
			DPI:            0, // unused for the merged record
			Top:            int(work.Top),
			Left:           int(work.Left),
			WorkAreaWidth:  int(work.Width()),
			WorkAreaHeight: int(work.Height()),
			MonitorWidth:   int(full.Width()),
			MonitorHeight:  int(full.Height()),
			IsSelected:     true,
		})
		return doc, nil
	}

	target := b.Target(cfg.UseCursorPosForStartupScreen)
	if target == 0 || len(infos) == 0 {
		return nil, ErrNoTargetMonitor
	}

	seen := make(map[string]int)
	for _, in := range infos {
		dpi, err := b.DPI(in.Handle)
		if err != nil {
			b.log().Warn("display reports no DPI, omitting from snapshot",
				"device", in.Device, "error", err)
			continue
		}

		// Work-area coordinates are consistent with the unaware capture
		// and pass through as-is; only the monitor extent is rescaled.
		width, height := display.ToLogical(dpi, in.Monitor.Width(), in.Monitor.Height())

		doc.Monitors = append(doc.Monitors, Monitor{
			MonitorName:    display.ResolveDeviceID(in.Device, seen),
			VirtualDesktop: desktop,
			DPI:            int(dpi),
			Top:            int(in.WorkArea.Top),
			Left:           int(in.WorkArea.Left),
			WorkAreaWidth:  int(in.WorkArea.Width()),
			WorkAreaHeight: int(in.WorkArea.Height()),
			MonitorWidth:   int(width),
			MonitorHeight:  int(height),
			IsSelected:     in.Handle == target,
		})
	}
	return doc, nil
}

func (b *Builder) run(task func()) {
	if b.Run != nil {
		b.Run(task)
		return
	}
	task()
}

func (b *Builder) log() *slog.Logger {
	if b.Log != nil {
		return b.Log
	}
	return slog.Default()
}
