package controller

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"tgrep.dev/pkg/tgrep/internal/domain"
	m "tgrep.dev/pkg/tgrep/internal/model"
)

// ErrSearchFailed is returned when a one-shot search ends in the Failed state.
var ErrSearchFailed = errors.New("search failed")

const simplePollInterval = 50 * time.Millisecond

// SimpleUI runs a single search and prints matches grep-style as they arrive.
type SimpleUI struct {
	cmd         *cobra.Command
	coordinator domain.Coordinator
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, coordinator domain.Coordinator) *SimpleUI {
	return &SimpleUI{cmd: cmd, coordinator: coordinator}
}

// Start searches roots for the configured pattern and blocks until the search
// is over. Matches are printed in order while the search is still running.
func (s *SimpleUI) Start(ctx context.Context, roots []m.Path, options ...StartOption) error {
	cfg := newStartConfig(options)

	if err := s.coordinator.Update(cfg.pattern, roots); err != nil {
		return err
	}

	outcome, err := s.follow(ctx)
	if err != nil {
		return err
	}

	if cfg.summary {
		s.printf("\n%s", renderSummaryTable(outcome))
	}

	switch outcome.Status {
	case m.Failed:
		return fmt.Errorf("%w: %s", ErrSearchFailed, outcome.Reason)
	case m.Cancelled:
		return context.Canceled
	default:
		return nil
	}
}

// follow prints new matches until the current generation stops running.
func (s *SimpleUI) follow(ctx context.Context) (m.Outcome, error) {
	printed := 0

	for {
		pollCtx, cancel := context.WithTimeout(ctx, simplePollInterval)
		outcome := s.coordinator.Wait(pollCtx)
		cancel()

		for _, match := range outcome.Matches[min(printed, len(outcome.Matches)):] {
			s.printf("%s\n", match)
		}

		printed = max(printed, len(outcome.Matches))

		if outcome.Status != m.Running {
			return outcome, nil
		}

		if err := ctx.Err(); err != nil {
			return outcome, err
		}
	}
}

type fileStat struct {
	path  string
	count int
}

func buildFileStats(matches []m.Match) []fileStat {
	var stats []fileStat

	// Matches arrive grouped by file in enumeration order.
	for _, match := range matches {
		if n := len(stats); n > 0 && stats[n-1].path == string(match.Path) {
			stats[n-1].count++
			continue
		}

		stats = append(stats, fileStat{path: string(match.Path), count: 1})
	}

	return stats
}

func renderSummaryTable(outcome m.Outcome) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Matches"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	stats := buildFileStats(outcome.Matches)
	for _, stat := range stats {
		table.Append([]string{stat.path, fmt.Sprintf("%d", stat.count)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("%d of %d files matched", len(stats), outcome.FilesScanned),
		fmt.Sprintf("%d", len(outcome.Matches)),
	})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
