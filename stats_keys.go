package apphook

// StatKey identifies a counter or gauge in Stats.
type StatKey string

// Standard key prefix for all apphook keys. Hooks recording their own metrics should use
// their own prefix (e.g., "myplugin:") to avoid collisions.
const KeyPrefix = "apphook:"

// Lifecycle call tracking keys. Append the short lifecycle name (see CallsKey).
const (
	KeyCallsFor         = "apphook:calls:"        // + lifecycle short name
	KeyDurationNanosFor = "apphook:duration_ns:"  // + lifecycle short name
	KeyLastDurationFor  = "apphook:last_seconds:" // + lifecycle short name (gauge)
)

// Registry tracking keys.
const (
	KeyRegistrations  StatKey = "apphook:registrations"
	KeyReplacements   StatKey = "apphook:replacements"
	KeyInstantiations StatKey = "apphook:instantiations"

	// Gauges.
	KeyRegistered   StatKey = "apphook:registered"
	KeyInstantiated StatKey = "apphook:instantiated"
)

// CallsKey returns the counter key tracking how many times event was called.
func CallsKey(event Lifecycle) StatKey {
	return StatKey(KeyCallsFor + event.Short())
}

// DurationKey returns the counter key accumulating the nanoseconds spent in event.
func DurationKey(event Lifecycle) StatKey {
	return StatKey(KeyDurationNanosFor + event.Short())
}

// LastDurationKey returns the gauge key holding the duration of the last event call, in
// seconds.
func LastDurationKey(event Lifecycle) StatKey {
	return StatKey(KeyLastDurationFor + event.Short())
}
