//go:build windows

package display

import (
	"fmt"
	"unsafe"
)

// MDT_EFFECTIVE_DPI = 0
const mdtEffectiveDPI = 0

// DPIForMonitor returns the effective DPI of the display. Some virtual or
// remoted displays cannot report one; callers treat the error as "skip
// this display" rather than failing the capture.
func DPIForMonitor(handle uintptr) (uint32, error) {
	var dx, dy uint32
	hr, _, _ := procGetDpiForMonitor.Call(
		handle,
		mdtEffectiveDPI,
		uintptr(unsafe.Pointer(&dx)),
		uintptr(unsafe.Pointer(&dy)),
	)
	if hr != 0 { // S_OK
		return 0, fmt.Errorf("GetDpiForMonitor: HRESULT 0x%08X", uint32(hr))
	}
	return dx, nil
}
