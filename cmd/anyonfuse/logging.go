package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/anyonfuse/config"
	"github.com/katalvlaran/anyonfuse/state"
)

// logger is the CLI's structured logger; every record carries the run id.
type logger struct {
	*slog.Logger
}

// newLogger builds a slog logger on w. Format "auto" picks text on a
// terminal and JSON otherwise.
func newLogger(w io.Writer, cfg config.Config) (*logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	switch strings.ToLower(cfg.LogFormat) {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	case "text":
		h = slog.NewTextHandler(w, opts)
	default:
		if isTerminal(w) {
			h = slog.NewTextHandler(w, opts)
		} else {
			h = slog.NewJSONHandler(w, opts)
		}
	}

	return &logger{slog.New(h).With("run", uuid.NewString())}, nil
}

// rejected is installed as the ledger's reject hook.
func (l *logger) rejected(op state.Operation, reason error) {
	l.Warn("fusion rejected", "time", op.Time, "pair", op.Pair.String(), "reason", reason.Error())
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
