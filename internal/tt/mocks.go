package tt

import (
	"github.com/rickchristie/apphook"
)

// -----------------------------------------------------------------------------
// RecordingHook - implements apphook.Hook and records every call
// -----------------------------------------------------------------------------

// RecordingHook records lifecycle calls in order. Several hooks can share one CallLog to
// check the relative order of calls across hooks.
type RecordingHook struct {
	Label string
	Ctx   apphook.Context
	Log   *CallLog

	// OnCall, if set, runs on every lifecycle call after recording it.
	OnCall func(event apphook.Lifecycle)
}

// CallLog is an ordered list of "label:event" entries.
type CallLog struct {
	Entries []string
}

// Count returns how many entries equal label + ":" + event.Short().
func (l *CallLog) Count(label string, event apphook.Lifecycle) int {
	want := label + ":" + event.Short()
	n := 0
	for _, e := range l.Entries {
		if e == want {
			n++
		}
	}
	return n
}

// NewRecordingFactory returns a factory building RecordingHooks that write to log.
// Built is incremented every time the factory runs.
func NewRecordingFactory(label string, log *CallLog, built *int) apphook.Factory {
	return func(ctx apphook.Context) apphook.Hook {
		if built != nil {
			*built++
		}
		return &RecordingHook{Label: label, Ctx: ctx, Log: log}
	}
}

func (h *RecordingHook) record(event apphook.Lifecycle) {
	if h.Log != nil {
		h.Log.Entries = append(h.Log.Entries, h.Label+":"+event.Short())
	}
	if h.OnCall != nil {
		h.OnCall(event)
	}
}

func (h *RecordingHook) Startup()        { h.record(apphook.LifecycleStartup) }
func (h *RecordingHook) Shutdown()       { h.record(apphook.LifecycleShutdown) }
func (h *RecordingHook) BeforeOpenFile() { h.record(apphook.LifecycleBeforeOpenFile) }
func (h *RecordingHook) AfterOpenFile()  { h.record(apphook.LifecycleAfterOpenFile) }
func (h *RecordingHook) BeforeFileSave() { h.record(apphook.LifecycleBeforeFileSave) }
func (h *RecordingHook) AfterFileSave()  { h.record(apphook.LifecycleAfterFileSave) }

// OtherHook is a distinct hook type, used to check that re-registration swaps the
// implementation.
type OtherHook struct {
	apphook.NopHook
	Ctx apphook.Context
}

// NewOtherHook is an apphook.Factory for OtherHook.
func NewOtherHook(ctx apphook.Context) apphook.Hook {
	return &OtherHook{Ctx: ctx}
}

// -----------------------------------------------------------------------------
// StaticContext - implements apphook.Context with fixed answers
// -----------------------------------------------------------------------------

// StaticContext answers every query with its fields. An empty Path makes FileName fail
// with apphook.ErrNoCurrentFile.
type StaticContext struct {
	Path     string
	Empty    bool
	Modified bool
	GUI      bool
}

func (c *StaticContext) FileName() (string, error) {
	if c.Path == "" {
		return "", apphook.ErrNoCurrentFile
	}
	return c.Path, nil
}

func (c *StaticContext) IsEmpty() bool         { return c.Empty }
func (c *StaticContext) HasModification() bool { return c.Modified }
func (c *StaticContext) HasGUI() bool          { return c.GUI }

var (
	_ apphook.Hook    = (*RecordingHook)(nil)
	_ apphook.Context = (*StaticContext)(nil)
)
