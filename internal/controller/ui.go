// Package controller provides the front ends that drive a search coordinator:
// an interactive Bubble Tea TUI and a one-shot line printer.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tgrep.dev/pkg/tgrep/internal/domain"
	m "tgrep.dev/pkg/tgrep/internal/model"
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	pattern string
	summary bool
}

// WithPattern sets the pattern the UI starts with.
func WithPattern(pattern string) StartOption {
	return func(c *StartConfig) {
		c.pattern = pattern
	}
}

// WithSummary makes the one-shot UI print a per-file table after the matches.
func WithSummary() StartOption {
	return func(c *StartConfig) {
		c.summary = true
	}
}

func newStartConfig(options []StartOption) StartConfig {
	var cfg StartConfig
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI drives a coordinator over roots until the user, or the search, is done.
type UI interface {
	Start(ctx context.Context, roots []m.Path, options ...StartOption) error
}

// NewUI returns the interactive TUI when interactive is set and the simple
// printer otherwise. Both write through cmd's output streams.
func NewUI(cmd *cobra.Command, coordinator domain.Coordinator, interactive bool) UI {
	if interactive {
		return NewTUI(cmd, coordinator)
	}

	return NewSimpleUI(cmd, coordinator)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// terminalSize returns the size of w when it is a terminal.
func terminalSize(w io.Writer) (int, int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, 0, false
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, false
	}

	return width, height, true
}
