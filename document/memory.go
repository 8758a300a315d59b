// Package document provides an in-memory apphook.Context.
//
// Memory models a single document slot in a host application: a file can be opened into
// it, edited, and saved. Nothing touches the filesystem; "saving" records the buffer as
// the saved content and remembers the path.
package document

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/rickchristie/apphook"
)

// Memory is an in-memory document implementing apphook.Context.
//
// Memory is NOT thread-safe.
type Memory struct {
	path    string
	saved   string
	buffer  string
	hasFile bool
	gui     bool
}

// NewMemory creates an empty, never-saved document. gui is reported by HasGUI.
func NewMemory(gui bool) *Memory {
	return &Memory{gui: gui}
}

// FileName returns the path of the document, or an error wrapping
// apphook.ErrNoCurrentFile if it was never saved or opened from a file.
func (m *Memory) FileName() (string, error) {
	if !m.hasFile {
		return "", fmt.Errorf("file name: %w", apphook.ErrNoCurrentFile)
	}
	return m.path, nil
}

// IsEmpty reports whether the document has no backing file.
func (m *Memory) IsEmpty() bool {
	return !m.hasFile
}

// HasModification reports whether the buffer differs from the saved content.
func (m *Memory) HasModification() bool {
	return m.buffer != m.saved
}

// HasGUI reports the GUI flag given at construction.
func (m *Memory) HasGUI() bool {
	return m.gui
}

// SetGUI changes the GUI flag.
func (m *Memory) SetGUI(gui bool) {
	m.gui = gui
}

// Open replaces the document with content loaded from path. The document is unmodified
// afterwards.
func (m *Memory) Open(path, content string) error {
	if path == "" {
		return fmt.Errorf("open: empty path")
	}
	m.path = path
	m.saved = content
	m.buffer = content
	m.hasFile = true
	return nil
}

// Edit replaces the buffer content.
func (m *Memory) Edit(content string) {
	m.buffer = content
}

// Content returns the current buffer content.
func (m *Memory) Content() string {
	return m.buffer
}

// Save marks the buffer as saved under the current path. Fails with
// apphook.ErrNoCurrentFile if the document has no path yet; use SaveAs.
func (m *Memory) Save() error {
	if !m.hasFile {
		return fmt.Errorf("save: %w", apphook.ErrNoCurrentFile)
	}
	m.saved = m.buffer
	return nil
}

// SaveAs marks the buffer as saved under path.
func (m *Memory) SaveAs(path string) error {
	if path == "" {
		return fmt.Errorf("save as: empty path")
	}
	m.path = path
	m.hasFile = true
	m.saved = m.buffer
	return nil
}

// Close resets the document to an empty, never-saved state.
func (m *Memory) Close() {
	m.path = ""
	m.saved = ""
	m.buffer = ""
	m.hasFile = false
}

// Diff returns a unified diff from the saved content to the buffer, or "" if there are
// no modifications.
func (m *Memory) Diff() (string, error) {
	if !m.HasModification() {
		return "", nil
	}
	name := m.path
	if name == "" {
		name = "untitled"
	}
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(m.saved),
		B:        difflib.SplitLines(m.buffer),
		FromFile: name + " (saved)",
		ToFile:   name,
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(diff)
}

// Compile-time check that Memory implements apphook.Context.
var _ apphook.Context = (*Memory)(nil)
