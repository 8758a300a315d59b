package hooks

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rickchristie/apphook"
	"go.uber.org/zap"
)

// Instance is the singleton built by the Registry for a registered name. It wraps the
// user hook and controls every lifecycle call: the call is timed and recorded in the
// instance stats and the registry recorder, then delegated to the user hook.
//
// Instance implements apphook.Hook, so it can be passed anywhere a Hook is expected.
type Instance struct {
	name      string
	id        uuid.UUID
	hook      apphook.Hook
	ctx       apphook.Context
	stats     *apphook.Stats
	clock     apphook.TimeProvider
	recorder  apphook.Recorder
	logger    *zap.Logger
	createdAt time.Time
}

// newInstance runs the factory, binds the hook to ctx and calls Startup before
// returning.
func newInstance(r *Registry, name string, e entry) *Instance {
	hook := e.factory(e.ctx)
	if hook == nil {
		panic(fmt.Sprintf("apphook: factory for hook %q returned nil", name))
	}

	id := uuid.New()
	i := &Instance{
		name:      name,
		id:        id,
		hook:      hook,
		ctx:       e.ctx,
		stats:     r.stats.Child(),
		clock:     r.clock,
		recorder:  r.recorder,
		logger:    r.logger.With(zap.String("hook", name), zap.String("instance", id.String())),
		createdAt: r.clock.Now(),
	}
	i.Startup()
	return i
}

// Name returns the name the hook was registered under.
func (i *Instance) Name() string { return i.name }

// ID returns a unique identifier for this instantiation. Re-registering a name produces
// a new instance with a new ID.
func (i *Instance) ID() uuid.UUID { return i.id }

// Hook returns the wrapped user hook.
func (i *Instance) Hook() apphook.Hook { return i.hook }

// Context returns the context the hook is bound to.
func (i *Instance) Context() apphook.Context { return i.ctx }

// Stats returns the statistics recorded for this instance only.
func (i *Instance) Stats() *apphook.Stats { return i.stats }

// CreatedAt returns when the instance was built.
func (i *Instance) CreatedAt() time.Time { return i.createdAt }

// Startup calls the hook's Startup. The registry already calls it once on construction.
func (i *Instance) Startup() { i.call(apphook.LifecycleStartup, i.hook.Startup) }

// Shutdown calls the hook's Shutdown.
func (i *Instance) Shutdown() { i.call(apphook.LifecycleShutdown, i.hook.Shutdown) }

// BeforeOpenFile calls the hook's BeforeOpenFile.
func (i *Instance) BeforeOpenFile() {
	i.call(apphook.LifecycleBeforeOpenFile, i.hook.BeforeOpenFile)
}

// AfterOpenFile calls the hook's AfterOpenFile.
func (i *Instance) AfterOpenFile() {
	i.call(apphook.LifecycleAfterOpenFile, i.hook.AfterOpenFile)
}

// BeforeFileSave calls the hook's BeforeFileSave.
func (i *Instance) BeforeFileSave() {
	i.call(apphook.LifecycleBeforeFileSave, i.hook.BeforeFileSave)
}

// AfterFileSave calls the hook's AfterFileSave.
func (i *Instance) AfterFileSave() {
	i.call(apphook.LifecycleAfterFileSave, i.hook.AfterFileSave)
}

// call times fn and records it. The call is recorded even if fn panics; the panic
// still propagates to the host.
func (i *Instance) call(event apphook.Lifecycle, fn func()) {
	start := i.clock.Now()
	defer func() {
		d := i.clock.Now().Sub(start)
		if d < 0 {
			d = 0
		}
		i.stats.ObserveLifecycle(event, d)
		if i.recorder != nil {
			i.recorder.ObserveLifecycle(i.name, event, d)
		}
		i.logger.Debug("hook called",
			zap.String("event", event.Short()),
			zap.Duration("duration", d),
		)
	}()
	fn()
}

// Compile-time check that Instance implements apphook.Hook.
var _ apphook.Hook = (*Instance)(nil)
