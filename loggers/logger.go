// Package loggers provides a hook that logs every lifecycle event of the host.
package loggers

import (
	"fmt"
	"io"
	"os"

	"github.com/rickchristie/apphook"
	"gopkg.in/yaml.v3"
)

// LoggerHook implements apphook.Hook and writes a header plus a YAML snapshot of the
// bound context for every lifecycle event. Nothing is truncated.
type LoggerHook struct {
	ctx   apphook.Context
	out   io.Writer
	clock apphook.TimeProvider
}

// NewLoggerHook creates a LoggerHook bound to ctx that writes to stdout.
func NewLoggerHook(ctx apphook.Context) *LoggerHook {
	return NewLoggerHookWithWriter(ctx, os.Stdout)
}

// NewLoggerHookWithWriter creates a LoggerHook bound to ctx that writes to w.
func NewLoggerHookWithWriter(ctx apphook.Context, w io.Writer) *LoggerHook {
	return &LoggerHook{
		ctx:   ctx,
		out:   w,
		clock: apphook.NewDefaultTimeProvider(),
	}
}

// WithTimeProvider sets the clock used for event timestamps.
func (h *LoggerHook) WithTimeProvider(tp apphook.TimeProvider) *LoggerHook {
	h.clock = tp
	return h
}

// Factory returns an apphook.Factory building LoggerHooks that write to w.
func Factory(w io.Writer) apphook.Factory {
	return func(ctx apphook.Context) apphook.Hook {
		return NewLoggerHookWithWriter(ctx, w)
	}
}

// contextState is the YAML view of an apphook.Context.
type contextState struct {
	File            string `yaml:"file,omitempty"`
	FileError       string `yaml:"file_error,omitempty"`
	Empty           bool   `yaml:"empty"`
	HasModification bool   `yaml:"has_modification"`
	HasGUI          bool   `yaml:"has_gui"`
}

// logEvent logs an event header with timestamp.
func (h *LoggerHook) logEvent(event apphook.Lifecycle) {
	timestamp := h.clock.Now().Format("2006-01-02 15:04:05.000")
	fmt.Fprintf(h.out, "\n>>> [%s]: %s\n", event.Short(), timestamp)
}

func (h *LoggerHook) logYAML(v any) {
	data, err := yaml.Marshal(v)
	if err != nil {
		fmt.Fprintf(h.out, "(failed to marshal: %v)\n", err)
		return
	}
	fmt.Fprint(h.out, string(data))
}

func (h *LoggerHook) logContext(event apphook.Lifecycle) {
	h.logEvent(event)

	state := contextState{
		Empty:           h.ctx.IsEmpty(),
		HasModification: h.ctx.HasModification(),
		HasGUI:          h.ctx.HasGUI(),
	}
	if name, err := h.ctx.FileName(); err != nil {
		state.FileError = err.Error()
	} else {
		state.File = name
	}
	h.logYAML(state)
}

// Startup logs the context the hook was bound to.
func (h *LoggerHook) Startup() { h.logContext(apphook.LifecycleStartup) }

// Shutdown logs the final context state.
func (h *LoggerHook) Shutdown() { h.logContext(apphook.LifecycleShutdown) }

// BeforeOpenFile logs the context before the open replaces it.
func (h *LoggerHook) BeforeOpenFile() { h.logContext(apphook.LifecycleBeforeOpenFile) }

// AfterOpenFile logs the newly opened context.
func (h *LoggerHook) AfterOpenFile() { h.logContext(apphook.LifecycleAfterOpenFile) }

// BeforeFileSave logs the context with its pending modifications.
func (h *LoggerHook) BeforeFileSave() { h.logContext(apphook.LifecycleBeforeFileSave) }

// AfterFileSave logs the saved context.
func (h *LoggerHook) AfterFileSave() { h.logContext(apphook.LifecycleAfterFileSave) }

// Compile-time check that LoggerHook implements apphook.Hook.
var _ apphook.Hook = (*LoggerHook)(nil)
