//go:build windows

package display

import (
	"syscall"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

// MONITORINFOEX; lxn/win only ships the short MONITORINFO without the
// device name, so the EX layout is declared here.
type monitorInfoExW struct {
	Size    uint32
	Monitor win.RECT
	Work    win.RECT
	Flags   uint32
	Device  [32]uint16
}

// Callbacks registered with syscall.NewCallback are never released, so one
// is created for the process and the result slice travels through lparam.
var enumCallback = syscall.NewCallback(func(hMonitor win.HMONITOR, hdc win.HDC, rect *win.RECT, lparam uintptr) uintptr {
	infos := (*[]Info)(unsafe.Pointer(lparam))

	var mi monitorInfoExW
	mi.Size = uint32(unsafe.Sizeof(mi))
	ret, _, _ := procGetMonitorInfoW.Call(uintptr(hMonitor), uintptr(unsafe.Pointer(&mi)))
	if ret != 0 {
		*infos = append(*infos, Info{
			Handle:   uintptr(hMonitor),
			Device:   windows.UTF16ToString(mi.Device[:]),
			Monitor:  rectFromWin(mi.Monitor),
			WorkArea: rectFromWin(mi.Work),
		})
	}
	return 1 // continue enumeration
})

// List returns every active display with its raw geometry, in whatever
// order the OS enumerates them. The order is preserved as-is. Rectangles
// are observed under the calling thread's DPI context, so the exporter
// invokes List from the dpictx unaware worker.
func List() []Info {
	var infos []Info
	procEnumDisplayMonitors.Call(0, 0, enumCallback, uintptr(unsafe.Pointer(&infos)))
	return infos
}

func rectFromWin(r win.RECT) Rect {
	return Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}
