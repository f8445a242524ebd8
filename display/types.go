// Package display enumerates physical displays and carries the geometry
// helpers the snapshot exporter needs: combined-rectangle math, device
// identifier de-duplication, and DPI normalization.
package display

// Rect represents a rectangle in the Virtual Desktop coordinate system.
// Coordinates can be negative (e.g., secondary monitor to the left of primary).
type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

func (r Rect) Width() int32 {
	return r.Right - r.Left
}

func (r Rect) Height() int32 {
	return r.Bottom - r.Top
}

// Info describes one physical display as reported by the OS.
type Info struct {
	Handle   uintptr
	Device   string // raw adapter string, e.g. `\\.\DISPLAY1`
	Monitor  Rect   // full display extent
	WorkArea Rect   // extent minus taskbars and docked UI
}
