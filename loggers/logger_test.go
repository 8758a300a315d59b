package loggers

import (
	"bytes"
	"testing"
	"time"

	"github.com/rickchristie/apphook"
	"github.com/rickchristie/apphook/internal/tt"
	"github.com/stretchr/testify/assert"
)

func TestLoggerHook_LogsContextState(t *testing.T) {
	var buf bytes.Buffer
	ctx := &tt.StaticContext{Path: "/shots/010.ma", Modified: true, GUI: true}
	clock := apphook.NewMockTimeProvider(time.Date(2025, 2, 15, 14, 30, 0, 0, time.UTC))
	hook := NewLoggerHookWithWriter(ctx, &buf).WithTimeProvider(clock)

	hook.BeforeFileSave()

	assert.Equal(t,
		"\n>>> [file_save:before]: 2025-02-15 14:30:00.000\n"+
			"file: /shots/010.ma\n"+
			"empty: false\n"+
			"has_modification: true\n"+
			"has_gui: true\n",
		buf.String(),
	)
}

func TestLoggerHook_LogsMissingFile(t *testing.T) {
	var buf bytes.Buffer
	hook := NewLoggerHookWithWriter(&tt.StaticContext{Empty: true}, &buf)

	hook.Startup()

	assert.Contains(t, buf.String(), ">>> [startup]")
	assert.Contains(t, buf.String(), "file_error: no current file\n")
	assert.Contains(t, buf.String(), "empty: true\n")
	assert.NotContains(t, buf.String(), "file: ")
}

func TestLoggerHook_AllEvents(t *testing.T) {
	var buf bytes.Buffer
	hook := Factory(&buf)(&tt.StaticContext{Path: "a"})

	hook.Startup()
	hook.BeforeOpenFile()
	hook.AfterOpenFile()
	hook.BeforeFileSave()
	hook.AfterFileSave()
	hook.Shutdown()

	for _, event := range apphook.Lifecycles {
		assert.Contains(t, buf.String(), ">>> ["+event.Short()+"]")
	}
}
