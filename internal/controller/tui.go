package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"tgrep.dev/pkg/tgrep/internal/domain"
	m "tgrep.dev/pkg/tgrep/internal/model"
)

const (
	refreshInterval = 100 * time.Millisecond

	defaultWidth  = 80
	defaultHeight = 24

	// Lines outside the results box: results title, results border (2),
	// pattern title, pattern box (3) and the help line.
	reservedLines = 8

	ellipsis = "…"
	helpText = "esc: quit | ctrl+c: clear | ↑/↓ pgup/pgdown: scroll"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	cmd            *cobra.Command
	coordinator    domain.Coordinator
	programOptions []tea.ProgramOption
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command, coordinator domain.Coordinator, programOptions ...tea.ProgramOption) *TUI {
	return &TUI{
		cmd:            cmd,
		coordinator:    coordinator,
		programOptions: programOptions,
	}
}

// Start runs the interactive search until the user quits.
func (t *TUI) Start(ctx context.Context, roots []m.Path, options ...StartOption) error {
	cfg := newStartConfig(options)
	model := newSearchModel(t.coordinator, roots, cfg.pattern)

	output := t.cmd.OutOrStdout()
	if width, height, ok := terminalSize(output); ok {
		model = model.resize(width, height)
	}

	programOptions := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(t.cmd.InOrStdin()),
		tea.WithOutput(output),
		tea.WithAltScreen(),
	}, t.programOptions...)

	program := tea.NewProgram(model, programOptions...)
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}

		return fmt.Errorf("run interface: %w", err)
	}

	return nil
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type styles struct {
	Title     lipgloss.Style
	Box       lipgloss.Style
	Location  lipgloss.Style
	Highlight lipgloss.Style
	Dim       lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Help      lipgloss.Style
}

func newStyles() styles {
	return styles{
		Title: lipgloss.NewStyle().Bold(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")),
		Location:  lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Dim:       lipgloss.NewStyle().Faint(true),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Help:      lipgloss.NewStyle().Faint(true),
	}
}

// searchModel is the Bubble Tea model of the interactive search.
type searchModel struct {
	coordinator domain.Coordinator
	roots       []m.Path
	input       textinput.Model
	spinner     spinner.Model
	styles      styles
	outcome     m.Outcome
	patternErr  string
	width       int
	height      int
	offset      int // first visible result
	quitting    bool
}

func newSearchModel(coordinator domain.Coordinator, roots []m.Path, pattern string) searchModel {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "regular expression"
	input.SetValue(pattern)
	input.CursorEnd()
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	sm := searchModel{
		coordinator: coordinator,
		roots:       roots,
		input:       input,
		spinner:     spin,
		styles:      newStyles(),
	}

	sm = sm.resize(defaultWidth, defaultHeight)
	if pattern != "" {
		sm = sm.applyPattern()
	}

	return sm
}

func (sm searchModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, sm.spinner.Tick, tick())
}

func (sm searchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return sm.resize(msg.Width, msg.Height), nil

	case tickMsg:
		sm.outcome = sm.coordinator.Current()
		sm.offset = min(sm.offset, sm.maxOffset())

		return sm, tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		sm.spinner, cmd = sm.spinner.Update(msg)

		return sm, cmd

	case tea.KeyMsg:
		return sm.handleKeyPress(msg)
	}

	var cmd tea.Cmd
	sm.input, cmd = sm.input.Update(msg)

	return sm, cmd
}

//nolint:exhaustive // Only navigation and control keys are intercepted
func (sm searchModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		sm.quitting = true
		return sm, tea.Quit
	case tea.KeyCtrlC:
		sm.input.Reset()
		return sm.applyPattern(), nil
	case tea.KeyUp:
		return sm.scroll(-1), nil
	case tea.KeyDown:
		return sm.scroll(1), nil
	case tea.KeyPgUp:
		return sm.scroll(-sm.resultRows()), nil
	case tea.KeyPgDown:
		return sm.scroll(sm.resultRows()), nil
	default:
	}

	before := sm.input.Value()

	var cmd tea.Cmd
	sm.input, cmd = sm.input.Update(msg)

	if sm.input.Value() != before {
		sm = sm.applyPattern()
	}

	return sm, cmd
}

// applyPattern hands the current input to the coordinator. An invalid
// pattern keeps the previous results on screen and is reported inline.
func (sm searchModel) applyPattern() searchModel {
	err := sm.coordinator.Update(sm.input.Value(), sm.roots)

	var compileErr *domain.PatternCompileError

	switch {
	case errors.As(err, &compileErr):
		sm.patternErr = compileErr.Message()
	case err != nil:
		sm.patternErr = err.Error()
	default:
		sm.patternErr = ""
		sm.offset = 0
	}

	sm.outcome = sm.coordinator.Current()

	return sm
}

func (sm searchModel) resize(width, height int) searchModel {
	sm.width = width
	sm.height = height
	// Border (2), prompt and cursor.
	sm.input.Width = max(width-2-runewidth.StringWidth(sm.input.Prompt)-1, 1)
	sm.offset = min(sm.offset, sm.maxOffset())

	return sm
}

func (sm searchModel) resultRows() int {
	return max(sm.height-reservedLines, 1)
}

func (sm searchModel) maxOffset() int {
	return max(len(sm.outcome.Matches)-sm.resultRows(), 0)
}

func (sm searchModel) scroll(delta int) searchModel {
	sm.offset = min(max(sm.offset+delta, 0), sm.maxOffset())
	return sm
}

func (sm searchModel) View() string {
	if sm.quitting {
		return ""
	}

	inner := max(sm.width-2, 1)
	rows := sm.resultRows()

	var b strings.Builder

	b.WriteString(sm.renderResultsTitle(sm.width))
	b.WriteString("\n")
	b.WriteString(sm.styles.Box.Width(inner).Height(rows).Render(sm.renderResults(inner, rows)))
	b.WriteString("\n")
	b.WriteString(sm.renderPatternTitle(sm.width))
	b.WriteString("\n")
	b.WriteString(sm.styles.Box.Width(inner).Render(sm.input.View()))
	b.WriteString("\n")
	b.WriteString(sm.styles.Help.Render(runewidth.Truncate(helpText, sm.width, ellipsis)))

	return b.String()
}

func (sm searchModel) renderResultsTitle(width int) string {
	title := fmt.Sprintf("Results (%d)", len(sm.outcome.Matches))

	var status string

	switch sm.outcome.Status {
	case m.Running:
		status = sm.spinner.View() + sm.styles.Dim.Render(fmt.Sprintf("searching, %d files scanned", sm.outcome.FilesScanned))
	case m.Completed:
		status = sm.styles.Success.Render(fmt.Sprintf("done, %d files scanned", sm.outcome.FilesScanned))
	case m.Failed:
		status = sm.styles.Error.Render(runewidth.Truncate("error: "+sm.outcome.Reason, max(width-len(title)-1, 0), ellipsis))
	case m.Cancelled:
		status = sm.styles.Dim.Render("cancelled")
	case m.Idle:
		status = sm.styles.Dim.Render("type a pattern to search")
	}

	return sm.styles.Title.Render(title) + " " + status
}

func (sm searchModel) renderPatternTitle(width int) string {
	title := sm.styles.Title.Render("Pattern")
	if sm.patternErr == "" {
		return title
	}

	message := runewidth.Truncate(sm.patternErr, max(width-len("Pattern")-1, 0), ellipsis)

	return title + " " + sm.styles.Error.Render(message)
}

func (sm searchModel) renderResults(width, rows int) string {
	matches := sm.outcome.Matches
	if len(matches) == 0 {
		return ""
	}

	start := min(sm.offset, len(matches))
	end := min(start+rows, len(matches))

	lines := make([]string, 0, end-start)
	for _, match := range matches[start:end] {
		lines = append(lines, sm.renderMatch(match, width))
	}

	return strings.Join(lines, "\n")
}

// renderMatch draws path:line:text within width cells, highlighting the
// matched span.
func (sm searchModel) renderMatch(match m.Match, width int) string {
	location := fmt.Sprintf("%s:%d:", match.Path, match.Line)
	// Same byte length, so the match offsets stay valid.
	text := strings.ReplaceAll(match.Text, "\t", " ")

	start := min(max(match.Start, 0), len(text))
	end := min(max(match.End, start), len(text))

	parts := []struct {
		text  string
		style lipgloss.Style
	}{
		{location, sm.styles.Location},
		{text[:start], lipgloss.NewStyle()},
		{text[start:end], sm.styles.Highlight},
		{text[end:], lipgloss.NewStyle()},
	}

	var b strings.Builder

	remaining := width

	for _, part := range parts {
		if remaining <= 0 {
			break
		}

		if part.text == "" {
			continue
		}

		segment := part.text
		if runewidth.StringWidth(segment) > remaining {
			segment = runewidth.Truncate(segment, remaining, ellipsis)
		}

		remaining -= runewidth.StringWidth(segment)
		b.WriteString(part.style.Render(segment))
	}

	return b.String()
}
