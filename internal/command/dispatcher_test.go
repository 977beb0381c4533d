package command

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ranMsg struct{ args []string }

func recordingCommand(name string, got *[]string) Command {
	return Command{
		Name:  name,
		Usage: "/" + name + " <args>",
		Run: func(args []string) tea.Cmd {
			*got = args
			return func() tea.Msg { return ranMsg{args: args} }
		},
	}
}

// ── Parse ─────────────────────────────────────────────────────────────────────

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantName string
		wantArgs []string
		wantErr  error
	}{
		{name: "no args", line: "/list", wantName: "list", wantArgs: []string{}},
		{name: "args", line: "/connect 10.0.0.2 5000", wantName: "connect", wantArgs: []string{"10.0.0.2", "5000"}},
		{name: "upper case", line: "/MSG Alice", wantName: "msg", wantArgs: []string{"Alice"}},
		{name: "extra spaces", line: "  /msg   Alice   Smith ", wantName: "msg", wantArgs: []string{"Alice", "Smith"}},
		{name: "plain text", line: "hello", wantErr: ErrNotCommand},
		{name: "slash only", line: "/", wantErr: ErrEmptyCommand},
		{name: "slash and spaces", line: "/   ", wantErr: ErrEmptyCommand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, args, err := Parse(tt.line)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestIsCommand(t *testing.T) {
	assert.True(t, IsCommand("/quit"))
	assert.True(t, IsCommand("  /quit"))
	assert.False(t, IsCommand("quit"))
}

// ── Dispatcher ────────────────────────────────────────────────────────────────

func TestDispatcher_Dispatch(t *testing.T) {
	var got []string
	d := NewDispatcher()
	require.NoError(t, d.Register(recordingCommand("connect", &got)))

	cmd, err := d.Dispatch("/connect home")
	require.NoError(t, err)
	require.NotNil(t, cmd)
	assert.Equal(t, []string{"home"}, got)
	assert.Equal(t, ranMsg{args: []string{"home"}}, cmd())
}

func TestDispatcher_Dispatch_Errors(t *testing.T) {
	d := NewDispatcher()

	_, err := d.Dispatch("/nope")
	assert.ErrorIs(t, err, ErrUnknownCommand)

	_, err = d.Dispatch("hello")
	assert.ErrorIs(t, err, ErrNotCommand)

	_, err = d.Dispatch("/")
	assert.ErrorIs(t, err, ErrEmptyCommand)
}

func TestDispatcher_Register(t *testing.T) {
	var got []string
	d := NewDispatcher()

	require.NoError(t, d.Register(recordingCommand("Quit", &got)))
	assert.ErrorIs(t, d.Register(recordingCommand("quit", &got)), ErrDuplicateCommand)
	assert.ErrorIs(t, d.Register(Command{Name: "  "}), ErrEmptyCommand)
	assert.ErrorIs(t, d.Register(Command{Name: "x"}), ErrEmptyCommand)

	_, err := d.Dispatch("/QUIT")
	assert.NoError(t, err)
}

func TestDispatcher_MustRegister_Panics(t *testing.T) {
	var got []string
	d := NewDispatcher()
	d.MustRegister(recordingCommand("a", &got))

	assert.Panics(t, func() { d.MustRegister(recordingCommand("a", &got)) })
}

func TestDispatcher_NamesAndUsage(t *testing.T) {
	var got []string
	d := NewDispatcher()
	d.MustRegister(
		recordingCommand("quit", &got),
		recordingCommand("connect", &got),
		recordingCommand("list", &got),
	)

	assert.Equal(t, []string{"connect", "list", "quit"}, d.Names())

	usage, ok := d.Usage("/connect")
	assert.True(t, ok)
	assert.Equal(t, "/connect <args>", usage)

	_, ok = d.Usage("nope")
	assert.False(t, ok)
}

func TestDispatcher_NilCmdFromHandler(t *testing.T) {
	d := NewDispatcher()
	d.MustRegister(Command{Name: "noop", Run: func([]string) tea.Cmd { return nil }})

	cmd, err := d.Dispatch("/noop")
	assert.NoError(t, err)
	assert.Nil(t, cmd)
}
