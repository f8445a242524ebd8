// Package dpictx provides a single-thread executor for work that must run
// under a specific DPI-awareness context. The context is thread-scoped on
// Windows, so the executor pins one OS thread for its whole lifetime and
// funnels every submission through it.
package dpictx

import (
	"runtime"
	"sync"
)

// Executor owns one OS-locked worker thread. Submissions are serialized:
// no two tasks ever run concurrently, and Run blocks the caller until the
// task has finished on the worker.
type Executor struct {
	tasks     chan func()
	done      chan struct{}
	closeOnce sync.Once
}

// New starts the worker thread. Each init function runs once on the worker,
// before any submitted task; this is where thread-scoped state (such as the
// DPI-awareness context) gets installed. New returns after all init
// functions have completed.
func New(inits ...func()) *Executor {
	e := &Executor{
		tasks: make(chan func()),
		done:  make(chan struct{}),
	}
	ready := make(chan struct{})
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		defer close(e.done)
		for _, init := range inits {
			init()
		}
		close(ready)
		for task := range e.tasks {
			task()
		}
	}()
	<-ready
	return e
}

// Run executes task on the worker thread and blocks until it returns.
// Failures inside the task surface through whatever state the closure
// captures; Run itself cannot fail. Run must not be called after Close.
func (e *Executor) Run(task func()) {
	finished := make(chan struct{})
	e.tasks <- func() {
		defer close(finished)
		task()
	}
	<-finished
}

// Close stops the worker thread and waits for it to exit. Safe to call
// more than once.
func (e *Executor) Close() {
	e.closeOnce.Do(func() {
		close(e.tasks)
	})
	<-e.done
}
