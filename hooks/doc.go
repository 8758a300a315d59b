// Package hooks provides the registry that owns hook singletons.
//
// Hooks are registered under a name together with the Context they should be bound to.
// Nothing is constructed at registration time; the first [Registry.To] call for a name
// runs the factory, wraps the result in an [Instance] and calls Startup.
//
// # State Machine
//
// Every name is in one of three states:
//
//	Unregistered --Register--> Registered --To--> Instantiated
//	      any    --Register--> Registered   (existing instance discarded)
//
// To on an unregistered name fails with [apphook.ErrHookNotRegistered]. To on an
// instantiated name returns the same *Instance until the name is registered again.
//
// # Registering Hooks
//
//	registry := hooks.NewRegistry().
//	    WithLogger(logger).
//	    WithRecorder(collector)
//
//	registry.
//	    Register("stats", NewStatsHook, doc).
//	    Register("autosave", NewAutosaveHook, doc)
//
//	h, err := registry.To("stats")
//	if errors.Is(err, apphook.ErrHookNotRegistered) {
//	    // ...
//	}
//
// # Calling Hooks
//
// The host calls lifecycle methods on the *Instance, never on the user hook. Instance
// times each call, records it in the instance stats and the optional
// [apphook.Recorder], then delegates:
//
//	for _, h := range registry.Instances() {
//	    h.BeforeFileSave()
//	}
//
// # Thread Safety
//
// Registry is NOT thread-safe. Register hooks during host startup and serialize access
// if hooks are looked up from several goroutines.
package hooks
