package apphook

// Lifecycle identifies a hook lifecycle event.
//
// # Naming Convention
//
// Names follow the pattern "namespace:category:timing":
//   - namespace: "apphook" for lifecycle events
//   - category: what the event is about (open_file, file_save)
//   - timing: before or after, omitted for single events
//
// # Examples
//
//	apphook:startup            // hook instantiated
//	apphook:open_file:before   // host is about to open a file
type Lifecycle string

const (
	LifecycleStartup  Lifecycle = "apphook:startup"
	LifecycleShutdown Lifecycle = "apphook:shutdown"

	LifecycleBeforeOpenFile Lifecycle = "apphook:open_file:before"
	LifecycleAfterOpenFile  Lifecycle = "apphook:open_file:after"

	LifecycleBeforeFileSave Lifecycle = "apphook:file_save:before"
	LifecycleAfterFileSave  Lifecycle = "apphook:file_save:after"
)

// Lifecycles lists every lifecycle event in call order.
var Lifecycles = []Lifecycle{
	LifecycleStartup,
	LifecycleBeforeOpenFile,
	LifecycleAfterOpenFile,
	LifecycleBeforeFileSave,
	LifecycleAfterFileSave,
	LifecycleShutdown,
}

// Short returns the name without the "apphook:" namespace, e.g. "open_file:before".
func (l Lifecycle) Short() string {
	s := string(l)
	if len(s) > len(KeyPrefix) && s[:len(KeyPrefix)] == KeyPrefix {
		return s[len(KeyPrefix):]
	}
	return s
}

func (l Lifecycle) String() string {
	return string(l)
}
