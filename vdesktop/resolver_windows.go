//go:build windows

package vdesktop

import (
	"golang.org/x/sys/windows/registry"
)

const desktopsKey = `Software\Microsoft\Windows\CurrentVersion\Explorer\VirtualDesktops`

// Registry reads the active desktop GUID from Explorer's registry state.
type Registry struct{}

// CurrentDesktopID returns the brace-wrapped GUID of the active virtual
// desktop. The second result is false when Explorer has not published one
// (Explorer not running, or builds predating virtual desktops).
func (Registry) CurrentDesktopID() (string, bool) {
	k, err := registry.OpenKey(registry.CURRENT_USER, desktopsKey, registry.QUERY_VALUE)
	if err != nil {
		return "", false
	}
	defer k.Close()

	raw, _, err := k.GetBinaryValue("CurrentVirtualDesktop")
	if err != nil {
		return "", false
	}
	id, err := FormatDesktopID(raw)
	if err != nil {
		return "", false
	}
	return id, true
}
