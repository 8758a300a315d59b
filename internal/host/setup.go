package host

import (
	"fmt"
	"io"

	"github.com/rickchristie/apphook/builtin"
	"github.com/rickchristie/apphook/config"
	"github.com/rickchristie/apphook/document"
	"github.com/rickchristie/apphook/hooks"
	"github.com/rickchristie/apphook/metrics"
	"go.uber.org/zap"
)

// Setup is everything built from a config.
type Setup struct {
	Host    *Host
	Metrics *metrics.Collector // nil unless metrics are enabled
}

// FromConfig builds a Host from cfg: the document, the registry and every configured
// builtin hook bound to the document. Logger hook output goes to out.
func FromConfig(cfg *config.Config, logger *zap.Logger, out io.Writer) (*Setup, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	doc := document.NewMemory(cfg.GUI)
	registry := hooks.NewRegistry().WithLogger(logger)

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector("")
		registry.WithRecorder(collector)
	}

	deps := builtin.Deps{Out: out, Logger: logger}
	for _, hc := range cfg.Hooks {
		factory, err := builtin.Factory(hc.Kind, deps)
		if err != nil {
			return nil, fmt.Errorf("hook %q: %w", hc.Name, err)
		}
		registry.Register(hc.Name, factory, doc)
	}

	return &Setup{
		Host:    New(doc, registry, logger),
		Metrics: collector,
	}, nil
}
