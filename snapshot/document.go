// Package snapshot assembles the monitor-topology document handed to the
// out-of-process zone editor and persists it at the reserved save location.
package snapshot

// MultiMonitorDeviceID is the reserved device name of the synthetic record
// emitted when zones span every display.
const MultiMonitorDeviceID = "MultiMonitorDevice"

// Monitor is one physical display, or the single synthetic merged display
// in spanned mode. Field names are stable identifiers shared with the
// editor; selection travels in is-selected, never in array position.
type Monitor struct {
	MonitorName    string `json:"monitor-name"`
	VirtualDesktop string `json:"virtual-desktop"`
	DPI            int    `json:"dpi"`
	Top            int    `json:"top"`
	Left           int    `json:"left"`
	WorkAreaWidth  int    `json:"work-area-width"`
	WorkAreaHeight int    `json:"work-area-height"`
	MonitorWidth   int    `json:"monitor-width"`
	MonitorHeight  int    `json:"monitor-height"`
	IsSelected     bool   `json:"is-selected"`
}

// Document is the exported editor-parameters state. It is built fresh on
// every capture and never mutated after being written.
type Document struct {
	ProcessID               int       `json:"process-id"`
	SpanZonesAcrossMonitors bool      `json:"span-zones-across-monitors"`
	Monitors                []Monitor `json:"monitors"`
}
