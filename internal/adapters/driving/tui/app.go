package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/neurobreath/nbassist/internal/core/domain"
)

// maxHistoryTurns caps the conversation history carried into each turn.
const maxHistoryTurns = 20

// answerMsg carries a completed assistant turn back into the update loop.
type answerMsg struct {
	query string
	resp  *domain.AssistantResponse
}

// askErrMsg carries a failed assistant turn.
type askErrMsg struct {
	query string
	err   error
}

// App is the chat application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *Styles

	input      textinput.Model
	viewport   viewport.Model
	spinner    spinner.Model
	transcript []string
	history    []domain.ChatTurn

	asking bool
	err    error
	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new chat application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := DefaultStyles()

	ti := textinput.New()
	ti.Placeholder = "Ask a question..."
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &App{
		ports:    ports,
		ctx:      context.Background(),
		styles:   s,
		input:    ti,
		viewport: viewport.New(80, 20),
		spinner:  sp,
		width:    80,
		height:   24,
	}, nil
}

// WithContext sets the context used for assistant calls.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init initialises the application.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.viewport.Width = msg.Width
		a.viewport.Height = msg.Height - 6
		if a.viewport.Height < 3 {
			a.viewport.Height = 3
		}
		a.input.Width = msg.Width - 6
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return a, tea.Quit
		case tea.KeyEnter:
			return a, a.submit()
		}

	case answerMsg:
		a.asking = false
		a.err = nil
		a.appendResponse(msg.query, msg.resp)
		return a, nil

	case askErrMsg:
		a.asking = false
		a.err = msg.err
		return a, nil

	case spinner.TickMsg:
		if !a.asking {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	cmds = append(cmds, cmd)
	a.viewport, cmd = a.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return a, tea.Batch(cmds...)
}

// submit sends the current input to the assistant asynchronously.
func (a *App) submit() tea.Cmd {
	query := strings.TrimSpace(a.input.Value())
	if query == "" || a.asking {
		return nil
	}

	a.asking = true
	a.input.Reset()

	ask := func() tea.Msg {
		resp, err := a.ports.Assistant.Ask(a.ctx, query, domain.QueryContext{}, a.history)
		if err != nil {
			return askErrMsg{query: query, err: err}
		}
		return answerMsg{query: query, resp: resp}
	}

	return tea.Batch(a.spinner.Tick, ask)
}

// appendResponse adds a completed turn to the transcript and history.
func (a *App) appendResponse(query string, resp *domain.AssistantResponse) {
	a.transcript = append(a.transcript,
		a.styles.UserLabel.Render("You: ")+a.styles.Normal.Render(query))

	answer := resp.Answer
	if resp.Routing.SafetyCheck.Level.Signposts() {
		answer = a.styles.Crisis.Render(answer)
	} else {
		answer = a.styles.Normal.Render(answer)
	}
	a.transcript = append(a.transcript, a.styles.AssistantLabel.Render("nbassist: ")+answer)

	if a.ports.Citations != nil && resp.Citations.Total() > 0 && a.showCitations() {
		a.transcript = append(a.transcript,
			a.styles.Muted.Render(a.ports.Citations.FormatGroup(resp.Citations)))
	}
	if resp.Degraded {
		a.transcript = append(a.transcript,
			a.styles.Muted.Render("(no generation backend configured)"))
	}
	a.transcript = append(a.transcript, "")

	// Escalated turns are not carried as history; the next question
	// starts clean rather than anchoring on crisis content.
	if resp.Routing.SafetyCheck.Action != domain.ActionEscalateOnly {
		a.history = append(a.history,
			domain.ChatTurn{Role: "user", Content: query},
			domain.ChatTurn{Role: "assistant", Content: resp.Answer},
		)
		if len(a.history) > maxHistoryTurns {
			a.history = a.history[len(a.history)-maxHistoryTurns:]
		}
	}

	a.viewport.SetContent(strings.Join(a.transcript, "\n"))
	a.viewport.GotoBottom()
}

// showCitations honours the stored showCitations preference. Without a
// preference service the citation block always renders.
func (a *App) showCitations() bool {
	if a.ports.Preference == nil {
		return true
	}
	return a.ports.Preference.Load().AI.ShowCitations
}

// View renders the application.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("nbassist chat"))
	b.WriteString("\n\n")
	b.WriteString(a.viewport.View())
	b.WriteString("\n")
	b.WriteString(a.styles.InputField.Render(a.input.View()))
	b.WriteString("\n")

	switch {
	case a.asking:
		b.WriteString(a.styles.StatusBar.Render(a.spinner.View() + " thinking..."))
	case a.err != nil:
		b.WriteString(a.styles.StatusBar.Render("error: " + a.err.Error()))
	default:
		b.WriteString(a.styles.StatusBar.Render("enter to send • esc to quit"))
	}

	return b.String()
}

// Transcript returns the rendered transcript lines. Used by tests.
func (a *App) Transcript() []string {
	return a.transcript
}

// History returns the conversation history carried into the next turn.
func (a *App) History() []domain.ChatTurn {
	return a.history
}

// Run starts the TUI program and blocks until it exits.
func Run(ctx context.Context, ports *Ports) error {
	app, err := NewApp(ports)
	if err != nil {
		return err
	}

	program := tea.NewProgram(app.WithContext(ctx), tea.WithAltScreen())
	_, err = program.Run()
	return err
}
