package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/chzyer/readline"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rickchristie/apphook"
	"github.com/rickchristie/apphook/internal/host"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const shellHelp = `Commands:
  open <path> [content...]   open a file with the given content
  edit <content...>          replace the document content
  save                       save the document
  saveas <path>              save the document under a new path
  diff                       show unsaved changes
  status                     show the document state
  hooks                      list registered hooks and their state
  stats [hook]               show lifecycle statistics
  help                       show this help
  quit                       shut down hooks and exit`

var errQuit = errors.New("quit")

func runShell(cmd *cobra.Command, _ []string) error {
	setup, logger, err := load()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if setup.Metrics != nil && metricsAddr != "" {
		srv := &http.Server{
			Addr:    metricsAddr,
			Handler: promhttp.HandlerFor(setup.Metrics.Registry(), promhttp.HandlerOpts{}),
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", zap.Error(err))
			}
		}()
		defer srv.Close()
		logger.Info("serving metrics", zap.String("addr", metricsAddr))
	}

	h := setup.Host
	if err := h.Start(); err != nil {
		return err
	}
	defer h.Stop()

	rl, err := readline.New(colorCyan + "apphost> " + colorReset)
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	w := rl.Stdout()
	fmt.Fprintln(w, shellHelp)
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		err = execLine(h, line, w)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(w, "%sError: %v%s\n", colorRed, err, colorReset)
		}
	}
}

// execLine runs one shell command against h. Returns errQuit to end the session.
func execLine(h *host.Host, line string, w io.Writer) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	command, args := fields[0], fields[1:]

	switch command {
	case "open":
		if len(args) < 1 {
			return fmt.Errorf("usage: open <path> [content...]")
		}
		return h.Open(args[0], strings.Join(args[1:], " "))
	case "edit":
		h.Edit(strings.Join(args, " "))
		return nil
	case "save":
		return h.Save()
	case "saveas":
		if len(args) != 1 {
			return fmt.Errorf("usage: saveas <path>")
		}
		return h.SaveAs(args[0])
	case "diff":
		diff, err := h.Document().Diff()
		if err != nil {
			return err
		}
		if diff == "" {
			diff = "no unsaved changes\n"
		}
		fmt.Fprint(w, diff)
		return nil
	case "status":
		return printStatus(h.Document(), w)
	case "hooks":
		for _, name := range h.Registry().RegisteredNames() {
			fmt.Fprintf(w, "  %s%s%s %s\n", colorGreen, name, colorReset, h.Registry().State(name))
		}
		return nil
	case "stats":
		return printStats(h, args, w)
	case "help":
		fmt.Fprintln(w, shellHelp)
		return nil
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q (type 'help')", command)
	}
}

func printStatus(ctx apphook.Context, w io.Writer) error {
	name, err := ctx.FileName()
	if err != nil {
		name = "(" + err.Error() + ")"
	}
	fmt.Fprintf(w, "file:     %s\n", name)
	fmt.Fprintf(w, "empty:    %t\n", ctx.IsEmpty())
	fmt.Fprintf(w, "modified: %t\n", ctx.HasModification())
	fmt.Fprintf(w, "gui:      %t\n", ctx.HasGUI())
	return nil
}

func printStats(h *host.Host, args []string, w io.Writer) error {
	stats := h.Registry().Stats()
	if len(args) > 0 {
		inst, err := h.Registry().To(args[0])
		if err != nil {
			return err
		}
		stats = inst.Stats()
	}

	data, err := yaml.Marshal(stats.Snapshot())
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	fmt.Fprint(w, string(data))
	return nil
}
