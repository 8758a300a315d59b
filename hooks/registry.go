package hooks

import (
	"fmt"
	"sort"

	"github.com/rickchristie/apphook"
	"go.uber.org/zap"
)

// State is the registration state of a hook name.
type State int

const (
	// StateUnregistered means the name was never registered.
	StateUnregistered State = iota

	// StateRegistered means a factory is registered but not instantiated yet.
	StateRegistered

	// StateInstantiated means the singleton exists.
	StateInstantiated
)

func (s State) String() string {
	switch s {
	case StateUnregistered:
		return "unregistered"
	case StateRegistered:
		return "registered"
	case StateInstantiated:
		return "instantiated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type entry struct {
	factory apphook.Factory
	ctx     apphook.Context
}

// Registry maps hook names to (factory, context) pairs and owns at most one live
// Instance per name.
//
// # Overview
//
// Registry is the single place hooks are looked up. It:
//   - Stores registrations by name, later registrations replacing earlier ones
//   - Builds instances lazily, on the first To call for a name
//   - Keeps aggregated statistics across every instance it ever built
//
// Create one Registry at host startup and pass it to everything that needs to register
// or look up hooks.
//
// # Thread Safety
//
// Registry is NOT thread-safe. Callers must serialize Register and To.
type Registry struct {
	entries    map[string]entry
	singletons map[string]*Instance
	stats      *apphook.Stats
	clock      apphook.TimeProvider
	recorder   apphook.Recorder
	logger     *zap.Logger
}

// NewRegistry creates a new empty Registry using the system clock and a no-op logger.
func NewRegistry() *Registry {
	return &Registry{
		entries:    make(map[string]entry),
		singletons: make(map[string]*Instance),
		stats:      apphook.NewStats(),
		clock:      apphook.NewDefaultTimeProvider(),
		logger:     zap.NewNop(),
	}
}

// WithLogger sets the logger used for registry and lifecycle debug logs.
// A nil logger disables logging.
func (r *Registry) WithLogger(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	r.logger = logger.Named("hooks")
	return r
}

// WithTimeProvider sets the clock used to time lifecycle calls. Only instances built
// after this call use it.
func (r *Registry) WithTimeProvider(tp apphook.TimeProvider) *Registry {
	if tp == nil {
		tp = apphook.NewDefaultTimeProvider()
	}
	r.clock = tp
	return r
}

// WithRecorder sets a Recorder notified of every lifecycle call. Only instances built
// after this call use it.
func (r *Registry) WithRecorder(recorder apphook.Recorder) *Registry {
	r.recorder = recorder
	return r
}

// Register stores factory and ctx under name, replacing any previous registration. If
// the name was already instantiated, the instance is discarded: the next To call builds
// a new one with the new factory and context. The discarded instance is not shut down.
//
// Panics if factory or ctx is nil; the registry is left unchanged.
func (r *Registry) Register(name string, factory apphook.Factory, ctx apphook.Context) *Registry {
	if factory == nil {
		panic(fmt.Sprintf("apphook: Register called with nil factory for hook %q", name))
	}
	if ctx == nil {
		panic(fmt.Sprintf("apphook: Register called with nil context for hook %q", name))
	}

	_, replaced := r.entries[name]
	r.entries[name] = entry{factory: factory, ctx: ctx}
	r.stats.IncrCounter(apphook.KeyRegistrations, 1)

	if replaced {
		r.stats.IncrCounter(apphook.KeyReplacements, 1)
	}
	r.discard(name)

	r.updateGauges()
	r.logger.Debug("registered hook", zap.String("hook", name), zap.Bool("replaced", replaced))
	return r
}

// To returns the singleton for name, building it on first access. Building calls the
// factory with the registered context and then Startup, before To returns.
//
// Returns an error wrapping apphook.ErrHookNotRegistered if name was never registered.
// Panics if the factory returns a nil hook.
func (r *Registry) To(name string) (*Instance, error) {
	if inst, ok := r.singletons[name]; ok {
		return inst, nil
	}

	e, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apphook.ErrHookNotRegistered, name)
	}

	inst := newInstance(r, name, e)
	r.singletons[name] = inst
	r.stats.IncrCounter(apphook.KeyInstantiations, 1)
	r.updateGauges()
	r.logger.Debug("instantiated hook",
		zap.String("hook", name),
		zap.String("instance", inst.ID().String()),
	)
	return inst, nil
}

// Discard drops the singleton for name while keeping its registration, so the next To
// builds a new instance and calls Startup again. The dropped instance is not shut down.
// Reports whether an instance was dropped.
func (r *Registry) Discard(name string) bool {
	if !r.discard(name) {
		return false
	}
	r.updateGauges()
	return true
}

func (r *Registry) discard(name string) bool {
	old, ok := r.singletons[name]
	if !ok {
		return false
	}
	delete(r.singletons, name)
	r.logger.Debug("discarded hook instance",
		zap.String("hook", name),
		zap.String("instance", old.ID().String()),
	)
	return true
}

// MustTo is like To but panics if name is not registered.
func (r *Registry) MustTo(name string) *Instance {
	inst, err := r.To(name)
	if err != nil {
		panic(err)
	}
	return inst
}

// RegisteredNames returns every registered name, sorted.
func (r *Registry) RegisteredNames() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// State returns the registration state of name.
func (r *Registry) State(name string) State {
	if _, ok := r.singletons[name]; ok {
		return StateInstantiated
	}
	if _, ok := r.entries[name]; ok {
		return StateRegistered
	}
	return StateUnregistered
}

// Instances returns the instantiated singletons, sorted by name. Names that are
// registered but were never looked up are not included.
func (r *Registry) Instances() []*Instance {
	result := make([]*Instance, 0, len(r.singletons))
	for _, inst := range r.singletons {
		result = append(result, inst)
	}
	sort.Slice(result, func(a, b int) bool {
		return result[a].name < result[b].name
	})
	return result
}

// Stats returns the registry statistics. Lifecycle counters include every instance the
// registry built, replaced ones included.
func (r *Registry) Stats() *apphook.Stats {
	return r.stats
}

// Len returns the number of registered names.
func (r *Registry) Len() int {
	return len(r.entries)
}

func (r *Registry) updateGauges() {
	r.stats.SetGauge(apphook.KeyRegistered, float64(len(r.entries)))
	r.stats.SetGauge(apphook.KeyInstantiated, float64(len(r.singletons)))
}
