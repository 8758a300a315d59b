package builtin

import (
	"github.com/rickchristie/apphook"
	"go.uber.org/zap"
)

// UnsavedChangesHook warns when the host is about to open a file over a document with
// unsaved modifications. In headless mode there is nobody to ask, so the warning is the
// only trace the changes existed.
type UnsavedChangesHook struct {
	apphook.NopHook

	ctx    apphook.Context
	logger *zap.Logger

	warnings int
}

// NewUnsavedChangesHook creates an UnsavedChangesHook bound to ctx.
func NewUnsavedChangesHook(ctx apphook.Context, logger *zap.Logger) *UnsavedChangesHook {
	return &UnsavedChangesHook{ctx: ctx, logger: logger}
}

// BeforeOpenFile warns if the current document has unsaved changes.
func (h *UnsavedChangesHook) BeforeOpenFile() {
	if !h.ctx.HasModification() {
		return
	}
	h.warnings++

	name, err := h.ctx.FileName()
	if err != nil {
		name = "untitled"
	}
	h.logger.Warn("opening a file discards unsaved changes",
		zap.String("file", name),
		zap.Bool("gui", h.ctx.HasGUI()),
	)
}

// Shutdown warns if the host exits with unsaved changes.
func (h *UnsavedChangesHook) Shutdown() {
	if h.ctx.HasModification() {
		h.warnings++
		h.logger.Warn("shutting down with unsaved changes")
	}
}

// Warnings returns how many warnings the hook emitted.
func (h *UnsavedChangesHook) Warnings() int {
	return h.warnings
}

// Compile-time check that UnsavedChangesHook implements apphook.Hook.
var _ apphook.Hook = (*UnsavedChangesHook)(nil)
