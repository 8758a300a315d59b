package apphook

import "fmt"

// Context describes the document currently open in the host application.
//
// Implementations are expected to be side-effect free: hooks may query them at any point
// of the lifecycle, any number of times.
type Context interface {
	// FileName returns the path of the currently opened file.
	//
	// Returns an error wrapping ErrNoCurrentFile when the document has never been saved
	// and therefore has no backing file.
	FileName() (string, error)

	// IsEmpty reports whether the document has never been saved.
	IsEmpty() bool

	// HasModification reports whether the document has unsaved changes. Hosts use this to
	// decide if the document needs to be saved.
	HasModification() bool

	// HasGUI reports whether the host application is running with a GUI.
	HasGUI() bool
}

// UnimplementedContext can be embedded to get a Context whose queries all signal that
// they are not implemented. Concrete contexts override every method; anything left
// un-overridden fails loudly instead of answering with a zero value.
//
// FileName returns an error wrapping ErrNotImplemented. The boolean queries panic,
// since they have no way to report an error.
type UnimplementedContext struct{}

// FileName returns an error wrapping ErrNotImplemented.
func (UnimplementedContext) FileName() (string, error) {
	return "", fmt.Errorf("%w: Context.FileName", ErrNotImplemented)
}

// IsEmpty panics.
func (UnimplementedContext) IsEmpty() bool {
	panic(notImplemented("IsEmpty"))
}

// HasModification panics.
func (UnimplementedContext) HasModification() bool {
	panic(notImplemented("HasModification"))
}

// HasGUI panics.
func (UnimplementedContext) HasGUI() bool {
	panic(notImplemented("HasGUI"))
}

func notImplemented(method string) error {
	return fmt.Errorf("apphook: %w: Context.%s", ErrNotImplemented, method)
}

// Compile-time check that UnimplementedContext implements Context.
var _ Context = UnimplementedContext{}
