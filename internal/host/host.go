// Package host simulates a host application: it owns a document and calls the registered
// hooks around every open and save, in order.
package host

import (
	"fmt"

	"github.com/rickchristie/apphook/document"
	"github.com/rickchristie/apphook/hooks"
	"go.uber.org/zap"
)

// Host drives the hook lifecycle for a single in-memory document.
//
// Host is NOT thread-safe.
type Host struct {
	doc      *document.Memory
	registry *hooks.Registry
	logger   *zap.Logger
	started  bool
}

// New creates a Host. The registry hooks must be bound to doc (or to a context that
// reads from it) to observe the host's changes.
func New(doc *document.Memory, registry *hooks.Registry, logger *zap.Logger) *Host {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Host{
		doc:      doc,
		registry: registry,
		logger:   logger.Named("host"),
	}
}

// Document returns the host document.
func (h *Host) Document() *document.Memory { return h.doc }

// Registry returns the hook registry.
func (h *Host) Registry() *hooks.Registry { return h.registry }

// Start instantiates every registered hook, which calls their Startup. Fails if the host
// is already started.
func (h *Host) Start() error {
	if h.started {
		return fmt.Errorf("host already started")
	}
	instances, err := h.instances()
	if err != nil {
		return err
	}
	h.started = true
	h.logger.Info("host started", zap.Int("hooks", len(instances)))
	return nil
}

// Open loads content from path into the document, calling BeforeOpenFile and
// AfterOpenFile on every hook. AfterOpenFile is skipped if the open fails.
func (h *Host) Open(path, content string) error {
	instances, err := h.instances()
	if err != nil {
		return err
	}

	for _, inst := range instances {
		inst.BeforeOpenFile()
	}
	if err := h.doc.Open(path, content); err != nil {
		return err
	}
	for _, inst := range instances {
		inst.AfterOpenFile()
	}

	h.logger.Info("opened file", zap.String("file", path))
	return nil
}

// Edit replaces the document content. Hooks are not called.
func (h *Host) Edit(content string) {
	h.doc.Edit(content)
}

// Save saves the document under its current path, calling BeforeFileSave and
// AfterFileSave on every hook. AfterFileSave is skipped if the save fails.
func (h *Host) Save() error {
	return h.save(h.doc.Save)
}

// SaveAs saves the document under path.
func (h *Host) SaveAs(path string) error {
	return h.save(func() error { return h.doc.SaveAs(path) })
}

func (h *Host) save(fn func() error) error {
	instances, err := h.instances()
	if err != nil {
		return err
	}

	for _, inst := range instances {
		inst.BeforeFileSave()
	}
	if err := fn(); err != nil {
		return err
	}
	for _, inst := range instances {
		inst.AfterFileSave()
	}

	name, _ := h.doc.FileName()
	h.logger.Info("saved file", zap.String("file", name))
	return nil
}

// Stop calls Shutdown on every instantiated hook and discards the instances, so a later
// Start builds fresh ones. Stop does nothing if the host is not started.
func (h *Host) Stop() {
	if !h.started {
		return
	}
	instances := h.registry.Instances()
	for _, inst := range instances {
		inst.Shutdown()
		h.registry.Discard(inst.Name())
	}
	h.started = false
	h.logger.Info("host stopped", zap.Int("hooks", len(instances)))
}

// instances resolves every registered name. Names re-registered since the last call are
// instantiated again here.
func (h *Host) instances() ([]*hooks.Instance, error) {
	names := h.registry.RegisteredNames()
	result := make([]*hooks.Instance, 0, len(names))
	for _, name := range names {
		inst, err := h.registry.To(name)
		if err != nil {
			return nil, err
		}
		result = append(result, inst)
	}
	return result, nil
}
