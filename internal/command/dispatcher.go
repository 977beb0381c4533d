package command

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Prefix starts every command line.
const Prefix = "/"

// Command is one registered command.
type Command struct {
	// Name is matched case-insensitively, without the prefix.
	Name string
	// Usage is a one-line description shown by /help.
	Usage string
	// Run handles the arguments. It may return nil when there is nothing to
	// run asynchronously.
	Run func(args []string) tea.Cmd
}

// Dispatcher maps command names to handlers.
type Dispatcher struct {
	commands map[string]Command
}

// NewDispatcher returns an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{commands: make(map[string]Command)}
}

// Register adds cmd. Names must be unique.
func (d *Dispatcher) Register(cmd Command) error {
	name := strings.ToLower(strings.TrimSpace(cmd.Name))
	if name == "" || cmd.Run == nil {
		return fmt.Errorf("%w: name and handler are required", ErrEmptyCommand)
	}
	if _, ok := d.commands[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, name)
	}

	cmd.Name = name
	d.commands[name] = cmd
	return nil
}

// MustRegister is Register that panics on error. It is meant for wiring
// fixed command sets at start-up.
func (d *Dispatcher) MustRegister(cmds ...Command) {
	for _, cmd := range cmds {
		if err := d.Register(cmd); err != nil {
			panic(err)
		}
	}
}

// Parse splits a command line into the lower-cased name and its
// arguments.
func Parse(line string) (name string, args []string, err error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, Prefix) {
		return "", nil, ErrNotCommand
	}

	fields := strings.Fields(strings.TrimPrefix(line, Prefix))
	if len(fields) == 0 {
		return "", nil, ErrEmptyCommand
	}

	return strings.ToLower(fields[0]), fields[1:], nil
}

// IsCommand reports whether line starts with the command prefix.
func IsCommand(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), Prefix)
}

// Dispatch parses line and runs the matching handler.
func (d *Dispatcher) Dispatch(line string) (tea.Cmd, error) {
	name, args, err := Parse(line)
	if err != nil {
		return nil, err
	}

	cmd, ok := d.commands[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	return cmd.Run(args), nil
}

// Names returns the registered names in alphabetical order.
func (d *Dispatcher) Names() []string {
	names := make([]string, 0, len(d.commands))
	for name := range d.commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Usage returns the usage line of the named command.
func (d *Dispatcher) Usage(name string) (string, bool) {
	cmd, ok := d.commands[strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), Prefix))]
	if !ok {
		return "", false
	}
	return cmd.Usage, true
}
