package apphook

import "errors"

// Errors returned by contexts and the hook registry. Use errors.Is to match them; they are
// usually wrapped with the file or hook name.
var (
	ErrNoCurrentFile     = errors.New("no current file")
	ErrHookNotRegistered = errors.New("hook is not registered")
	ErrNotImplemented    = errors.New("not implemented")
)
