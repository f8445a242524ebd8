//go:build windows

package display

import (
	"github.com/lxn/win"
)

// TargetMonitor picks the display the editor should open on: the one under
// the cursor when useCursorPos is set, otherwise the one hosting the
// foreground window. Either query falls back to the primary display when
// the point or window is off every display. A zero handle means no display
// could be resolved at all.
func TargetMonitor(useCursorPos bool) uintptr {
	if useCursorPos {
		var pt win.POINT
		win.GetCursorPos(&pt)
		return monitorFromPoint(pt.X, pt.Y)
	}
	return uintptr(win.MonitorFromWindow(win.GetForegroundWindow(), win.MONITOR_DEFAULTTOPRIMARY))
}

// MonitorFromPoint takes POINT by value; on 64-bit it packs into a single
// register argument.
func monitorFromPoint(x, y int32) uintptr {
	pt := uintptr(uint64(uint32(x)) | uint64(uint32(y))<<32)
	h, _, _ := procMonitorFromPoint.Call(pt, win.MONITOR_DEFAULTTOPRIMARY)
	return h
}
