package display

import "math"

// Baseline DPI at 100% scaling.
const baseDPI = 96

// RectOf selects one of a display's two rectangles.
type RectOf func(Info) Rect

func WorkRect(in Info) Rect    { return in.WorkArea }
func MonitorRect(in Info) Rect { return in.Monitor }

// CombinedRect returns the bounding rectangle of the selected rectangle
// across all displays: component-wise min of left/top, max of right/bottom.
// An empty slice yields the zero Rect.
func CombinedRect(infos []Info, sel RectOf) Rect {
	if len(infos) == 0 {
		return Rect{}
	}
	c := sel(infos[0])
	for _, in := range infos[1:] {
		r := sel(in)
		c.Left = min(c.Left, r.Left)
		c.Top = min(c.Top, r.Top)
		c.Right = max(c.Right, r.Right)
		c.Bottom = max(c.Bottom, r.Bottom)
	}
	return c
}

// ToLogical rescales a pixel extent measured on a display with the given
// DPI into logical units, rounding to nearest. A zero dpi passes the extent
// through unchanged.
func ToLogical(dpi uint32, width, height int32) (int32, int32) {
	if dpi == 0 {
		return width, height
	}
	w := math.Round(float64(width) * baseDPI / float64(dpi))
	h := math.Round(float64(height) * baseDPI / float64(dpi))
	return int32(w), int32(h)
}
