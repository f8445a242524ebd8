//go:build windows

package dpictx

import (
	"syscall"
)

var (
	user32 = syscall.NewLazyDLL("user32.dll")

	procSetThreadDpiAwarenessContext = user32.NewProc("SetThreadDpiAwarenessContext")
	procSetThreadDpiHostingBehavior  = user32.NewProc("SetThreadDpiHostingBehavior")
)

// DPI_AWARENESS_CONTEXT_UNAWARE is (HANDLE)(-1)
var dpiAwarenessUnaware = ^uintptr(0)

// DPI_HOSTING_BEHAVIOR_MIXED
const dpiHostingBehaviorMixed = 2

// NewUnaware starts a worker whose thread observes raw, unscaled monitor
// geometry. The hosting behavior is set to mixed so handles created under
// other awareness contexts remain usable from the worker. Monitor rectangles
// read under an aware context arrive pre-scaled per monitor; opting the
// thread out lets normalization happen once, deliberately, in caller code.
func NewUnaware() *Executor {
	return New(func() {
		procSetThreadDpiAwarenessContext.Call(dpiAwarenessUnaware)
		procSetThreadDpiHostingBehavior.Call(dpiHostingBehaviorMixed)
	})
}
