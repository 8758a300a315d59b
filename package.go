// Package apphook defines the contracts a host application exposes to its plugins.
//
// A host application (a DCC tool, an editor, anything with "the currently open document")
// implements [Context] to describe that document, and plugins implement [Hook] to react to
// lifecycle events of the host.
//
// # Context
//
// Context answers four questions about the current document:
//
//	name, err := ctx.FileName()    // ErrNoCurrentFile if never saved
//	ctx.IsEmpty()                  // true if never saved
//	ctx.HasModification()          // true if there are unsaved changes
//	ctx.HasGUI()                   // true when running interactively
//
// The document package provides an in-memory implementation.
//
// # Hook
//
// Hooks receive lifecycle callbacks. Embed [NopHook] and override only what you need:
//
//	type AutosaveHook struct {
//	    apphook.NopHook
//	    ctx apphook.Context
//	}
//
//	func (h *AutosaveHook) BeforeOpenFile() {
//	    if h.ctx.HasModification() {
//	        // ...
//	    }
//	}
//
//	func NewAutosaveHook(ctx apphook.Context) apphook.Hook {
//	    return &AutosaveHook{ctx: ctx}
//	}
//
// # Registering Hooks
//
// Hooks are registered by name with a [Factory] and the Context they should be bound to.
// The registry in the hooks package lazily builds one instance per name:
//
//	registry := hooks.NewRegistry()
//	registry.Register("autosave", NewAutosaveHook, doc)
//
//	instance, err := registry.To("autosave") // factory runs here, Startup is called
//	instance.BeforeOpenFile()
//
// Hosts never call the user hook directly. The hooks.Instance wrapper records timing
// statistics for every lifecycle call (see [Stats]) before delegating, so a hook does not
// have to call any "base" method to keep statistics collection working.
//
// # Statistics
//
// Every lifecycle call increments a counter and accumulates its duration. Keys are
// derived from the [Lifecycle] name:
//
//	stats.GetCounter(apphook.CallsKey(apphook.LifecycleBeforeFileSave))
//	stats.GetDuration(apphook.LifecycleBeforeFileSave)
//
// Instance stats propagate to the registry stats, so the registry holds totals across
// all hooks.
package apphook
