package tui

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/smscli/internal/app"
	"github.com/MKhiriev/smscli/internal/command"
	"github.com/MKhiriev/smscli/internal/conversation"
	"github.com/MKhiriev/smscli/internal/logger"
	"github.com/MKhiriev/smscli/internal/session"
)

const statusTTL = 2 * time.Second

// chromeHeight is the title bar, the divider and the input line.
const chromeHeight = 3

type model struct {
	ctx      context.Context
	session  Session
	router   *conversation.Router
	views    *viewSet
	commands *commandSet
	history  *history
	outbox   *outbox
	theme    Theme
	logger   *logger.Logger

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	clipboard    func(string) error
	widthPercent int
	autoConnect  string

	width  int
	height int
	ready  bool
	state  session.State
	status string
}

func newModel(ctx context.Context, sess Session, deps Deps, theme Theme) model {
	views := newViewSet(deps.UI.MaxViews)
	router := conversation.NewRouter(deps.Registry, views, deps.Notifier, deps.Logger)

	input := textinput.New()
	input.Prompt = "> "
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Line

	m := model{
		ctx:          ctx,
		session:      sess,
		router:       router,
		views:        views,
		commands:     newCommandSet(ctx, sess, router, views, deps.Aliases, deps.BuildInfo),
		history:      &history{},
		outbox:       &outbox{},
		theme:        theme,
		logger:       deps.Logger,
		input:        input,
		spinner:      sp,
		clipboard:    clipboard.WriteAll,
		widthPercent: deps.UI.MessageWidthPercent,
		autoConnect:  deps.AutoConnect,
		state:        session.StateDisconnected,
	}

	for _, line := range welcomeLines() {
		router.Log(line)
	}

	return m
}

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}

	if m.autoConnect != "" {
		host, port, err := net.SplitHostPort(m.autoConnect)
		if err != nil {
			m.router.Logf(app.MsgInvalidAutoConnect, m.autoConnect)
		} else {
			cmds = append(cmds, connectCmd(m.ctx, m.session, host, port))
		}
	}

	return tea.Batch(cmds...)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.handleKey(msg)
		cmds = append(cmds, cmd)

	case session.StateChanged:
		cmds = append(cmds, m.onStateChanged(msg))

	case session.SnapshotReceived:
		m.router.LoadSnapshot(msg.Contacts)

	case session.MessageReceived:
		m.router.Route(msg.Message)

	case session.MessageSent:
		m.router.Route(msg.Message)

	case session.FrameRejected:
		m.router.Reject(msg.Err)

	case session.Disconnected:
		if msg.Err != nil {
			m.router.Log(app.MsgLostConnection)
		} else {
			m.router.Logf(app.MsgDisconnected, msg.Host)
		}

	case connectDoneMsg:
		if msg.err != nil {
			m.router.Log(humanizeConnectError(msg.err))
		}

	case sendDoneMsg:
		cmds = append(cmds, m.onSendDone(msg))

	case copiedMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("clipboard copy failed")
			m.status = "copy failed"
		} else {
			m.status = "copied"
		}
		cmds = append(cmds, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} }))

	case clearStatusMsg:
		m.status = ""

	case spinner.TickMsg:
		if m.state == session.StateConnecting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.refresh()
	return m, tea.Batch(cmds...)
}

func (m *model) onStateChanged(ev session.StateChanged) tea.Cmd {
	m.state = ev.State
	m.views.RequestRedraw()

	switch ev.State {
	case session.StateConnecting:
		m.router.Logf(app.MsgConnecting, ev.Host)
		return m.spinner.Tick
	case session.StateConnected:
		m.router.Logf(app.MsgConnected, ev.Host, ev.Port)
		m.views.closeAllButLog()
	}

	return nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Sequence(disconnectCmd(m.session), tea.Quit)

	case key.Matches(msg, keys.enter):
		cmd := m.submit()
		return m, cmd

	case key.Matches(msg, keys.historyUp):
		if line, ok := m.history.prev(m.input.Value()); ok {
			m.input.SetValue(line)
			m.input.CursorEnd()
		}
		return m, nil

	case key.Matches(msg, keys.historyDn):
		if line, ok := m.history.next(); ok {
			m.input.SetValue(line)
			m.input.CursorEnd()
		}
		return m, nil

	case key.Matches(msg, keys.switchView):
		if i, ok := viewIndex(msg.String()); ok {
			m.views.focusIndex(i)
		}
		return m, nil

	case key.Matches(msg, keys.closeView):
		m.commands.close(nil)
		return m, nil

	case key.Matches(msg, keys.copy):
		cmd := m.copyLast()
		return m, cmd

	case key.Matches(msg, keys.scroll):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit handles the input line on enter.
func (m *model) submit() tea.Cmd {
	line := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if line == "" {
		return nil
	}

	if command.IsCommand(line) {
		if _, _, err := command.Parse(line); err == nil {
			m.history.add(line)
		}

		cmd, err := m.commands.dispatcher.Dispatch(line)
		switch {
		case errors.Is(err, command.ErrUnknownCommand):
			m.router.Logf(app.MsgUnknownCommand, strings.Fields(line)[0])
		case err != nil:
			m.router.Log("Type /list for commands")
		}
		return cmd
	}

	switch {
	case m.session.State() != session.StateConnected:
		m.router.Log(app.MsgNotConnected)
		return nil
	case m.views.onLogView():
		m.router.Log(app.MsgNoConversation)
		return nil
	}

	if !m.outbox.push(m.views.focusedID(), line) {
		return nil
	}
	return sendCmd(m.ctx, m.session, m.views.focusedID(), line)
}

// onSendDone starts the next queued send. A failure drops the queue.
func (m *model) onSendDone(msg sendDoneMsg) tea.Cmd {
	if msg.err != nil {
		if errors.Is(msg.err, session.ErrNotConnected) {
			m.router.Log(app.MsgNotConnected)
		} else {
			m.router.Logf(app.MsgSendFailed, msg.err)
		}
		if n := m.outbox.drop(); n > 0 {
			m.router.Logf(app.MsgSendsDropped, n)
		}
		return nil
	}

	next, ok := m.outbox.done()
	if !ok {
		return nil
	}
	return sendCmd(m.ctx, m.session, next.conversationID, next.text)
}

func (m *model) copyLast() tea.Cmd {
	conv, ok := m.router.Registry().Get(m.views.focusedID())
	if !ok {
		return nil
	}
	last, ok := conv.Last()
	if !ok {
		return nil
	}

	write := m.clipboard
	return func() tea.Msg {
		return copiedMsg{err: write(last.Body)}
	}
}

func (m *model) resize(width, height int) {
	m.width, m.height = width, height
	m.input.Width = max(width-len(m.input.Prompt)-1, 1)

	vh := max(height-chromeHeight, 1)
	if !m.ready {
		m.viewport = viewport.New(width, vh)
		m.viewport.KeyMap = viewport.KeyMap{
			PageDown: key.NewBinding(key.WithKeys("pgdown")),
			PageUp:   key.NewBinding(key.WithKeys("pgup")),
		}
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = vh
	}
	m.views.RequestRedraw()
}

// refresh re-renders the transcript after the views changed.
func (m *model) refresh() {
	if !m.ready || !m.views.dirty {
		return
	}
	m.views.dirty = false

	atBottom := m.viewport.AtBottom()
	conv, _ := m.router.Registry().Get(m.views.focusedID())
	m.viewport.SetContent(renderTranscript(conv, messageWidth(m.width, m.widthPercent), m.theme))
	if atBottom || m.viewport.PastBottom() {
		m.viewport.GotoBottom()
	}
}

func (m model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	conv, _ := m.router.Registry().Get(m.views.focusedID())
	title := renderTitle(conv)
	if m.status != "" {
		title += " | " + m.status
	}

	state := m.state.String()
	if m.state == session.StateConnecting {
		state = m.spinner.View() + " " + state
	}
	divider := renderDivider(state, m.views, m.router.Registry())

	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.TitleBar.Render(padRight(fitText(title, m.width), m.width)),
		m.viewport.View(),
		m.theme.Divider.Render(padRight(fitText(divider, m.width), m.width)),
		m.input.View(),
	)
}
