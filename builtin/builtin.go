// Package builtin provides the hooks a host can enable from configuration by kind.
package builtin

import (
	"fmt"
	"io"
	"sort"

	"github.com/rickchristie/apphook"
	"github.com/rickchristie/apphook/loggers"
	"go.uber.org/zap"
)

// Hook kinds accepted in configuration.
const (
	KindLogger  = "logger"
	KindUnsaved = "unsaved"
	KindNop     = "nop"
)

// Deps are the dependencies builtin hooks may need.
type Deps struct {
	// Out receives LoggerHook output.
	Out io.Writer

	// Logger is used by hooks that warn through structured logs.
	Logger *zap.Logger
}

// Factory returns the factory for kind.
func Factory(kind string, deps Deps) (apphook.Factory, error) {
	switch kind {
	case KindLogger:
		if deps.Out == nil {
			return nil, fmt.Errorf("hook kind %q requires an output writer", kind)
		}
		return loggers.Factory(deps.Out), nil
	case KindUnsaved:
		logger := deps.Logger
		if logger == nil {
			logger = zap.NewNop()
		}
		return func(ctx apphook.Context) apphook.Hook {
			return NewUnsavedChangesHook(ctx, logger)
		}, nil
	case KindNop:
		return func(apphook.Context) apphook.Hook { return apphook.NopHook{} }, nil
	default:
		return nil, fmt.Errorf("unknown hook kind %q (known: %v)", kind, Kinds())
	}
}

// Kinds returns every supported kind, sorted.
func Kinds() []string {
	kinds := []string{KindLogger, KindUnsaved, KindNop}
	sort.Strings(kinds)
	return kinds
}
