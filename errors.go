package zonesnap

import (
	"zonesnap/snapshot"
)

var (
	// ErrNoVirtualDesktopID implies the active virtual desktop identifier
	// could not be resolved; the capture is aborted and nothing is written.
	ErrNoVirtualDesktopID = snapshot.ErrNoVirtualDesktopID

	// ErrNoTargetMonitor implies no display could be selected for the editor
	// to open on; the capture is aborted and nothing is written.
	ErrNoTargetMonitor = snapshot.ErrNoTargetMonitor
)
