package apphook

import "time"

// -----------------------------------------------------------------------------
// Hook Interface
// -----------------------------------------------------------------------------
//
// Hooks let plugins react to lifecycle events of the host application. To use hooks:
//
//  1. Implement Hook (embed NopHook for defaults)
//  2. Write a Factory that binds the hook to a Context
//  3. Register the factory with hooks.Registry
//
// # Call Order
//
// The host is responsible for calling lifecycle methods in order:
//
//	Startup                          // once, when the hook is instantiated
//	BeforeOpenFile -> AfterOpenFile  // around every open
//	BeforeFileSave -> AfterFileSave  // around every save
//	Shutdown                         // once, when the host exits
//
// # Error Handling
//
// Lifecycle methods do not return errors. If a hook panics the panic propagates to the
// host; hooks that can fail should handle it themselves.
// -----------------------------------------------------------------------------

// Hook is implemented by plugins that want to be notified of host lifecycle events.
type Hook interface {
	// Startup is called once, when the hook is instantiated by the registry.
	Startup()

	// Shutdown is called when the host application is shutting down.
	Shutdown()

	// BeforeOpenFile is called before the host opens a file.
	BeforeOpenFile()

	// AfterOpenFile is called after the file has been opened.
	AfterOpenFile()

	// BeforeFileSave is called before the current file gets saved.
	BeforeFileSave()

	// AfterFileSave is called after the current file has been saved.
	AfterFileSave()
}

// Factory builds a Hook bound to ctx. The registry calls it at most once per
// registration, on first access.
type Factory func(ctx Context) Hook

// NopHook implements every Hook method as a no-op. Embed it to override only the events
// you care about.
type NopHook struct{}

func (NopHook) Startup()        {}
func (NopHook) Shutdown()       {}
func (NopHook) BeforeOpenFile() {}
func (NopHook) AfterOpenFile()  {}
func (NopHook) BeforeFileSave() {}
func (NopHook) AfterFileSave()  {}

// Recorder receives the duration of every lifecycle call. The metrics package provides a
// Prometheus implementation.
type Recorder interface {
	ObserveLifecycle(hook string, event Lifecycle, d time.Duration)
}

// Compile-time check that NopHook implements Hook.
var _ Hook = NopHook{}
