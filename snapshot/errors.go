package snapshot

import "errors"

var (
	// ErrNoVirtualDesktopID implies no active virtual desktop identifier
	// could be resolved. The capture is aborted; nothing is written.
	ErrNoVirtualDesktopID = errors.New("no virtual desktop id")

	// ErrNoTargetMonitor implies no display could be selected for the
	// editor to open on. The capture is aborted; nothing is written.
	ErrNoTargetMonitor = errors.New("no target monitor")
)
