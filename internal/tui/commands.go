package tui

import (
	"context"
	"fmt"
	"net"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/smscli/internal/app"
	"github.com/MKhiriev/smscli/internal/command"
	"github.com/MKhiriev/smscli/internal/conversation"
	"github.com/MKhiriev/smscli/internal/session"
	"github.com/MKhiriev/smscli/internal/validators"
	"github.com/MKhiriev/smscli/models"
)

// commandSet holds what the slash commands act on. Handlers run on the UI
// loop; anything that blocks is returned as a tea.Cmd.
type commandSet struct {
	ctx        context.Context
	session    Session
	router     *conversation.Router
	views      *viewSet
	aliases    AliasResolver
	dispatcher *command.Dispatcher
	buildInfo  models.AppBuildInfo
}

func newCommandSet(ctx context.Context, sess Session, router *conversation.Router, views *viewSet, aliases AliasResolver, buildInfo models.AppBuildInfo) *commandSet {
	c := &commandSet{
		ctx:        ctx,
		session:    sess,
		router:     router,
		views:      views,
		aliases:    aliases,
		dispatcher: command.NewDispatcher(),
		buildInfo:  buildInfo,
	}

	c.dispatcher.MustRegister(
		command.Command{Name: "connect", Usage: "/connect <host> <port> | /connect <alias> - connect to the relay", Run: c.connect},
		command.Command{Name: "disconnect", Usage: "/disconnect - close the connection", Run: c.disconnect},
		command.Command{Name: "msg", Usage: "/msg <name|number> - open a conversation", Run: c.msg},
		command.Command{Name: "list", Usage: "/list - list commands", Run: c.list},
		command.Command{Name: "contacts", Usage: "/contacts - list known contacts", Run: c.contacts},
		command.Command{Name: "status", Usage: "/status - show the connection state", Run: c.status},
		command.Command{Name: "help", Usage: "/help [command] - show usage", Run: c.help},
		command.Command{Name: "close", Usage: "/close - close the current view", Run: c.close},
		command.Command{Name: "quit", Usage: "/quit - disconnect and exit", Run: c.quit},
		command.Command{Name: "version", Usage: "/version - show build information", Run: c.version},
	)

	return c
}

func (c *commandSet) usage(name string) {
	if usage, ok := c.dispatcher.Usage(name); ok {
		c.router.Log("Usage: " + usage)
	}
}

func (c *commandSet) connect(args []string) tea.Cmd {
	if c.session.State() != session.StateDisconnected {
		c.router.Log(app.MsgAlreadyConnected)
		return nil
	}

	var host, port string
	switch len(args) {
	case 1:
		var ok bool
		host, port, ok = c.resolveAlias(args[0])
		if !ok {
			c.router.Logf(app.MsgUnknownAlias, args[0])
			return nil
		}
	case 2:
		host, port = args[0], args[1]
	default:
		c.usage("connect")
		return nil
	}

	return connectCmd(c.ctx, c.session, host, port)
}

// resolveAlias also accepts a literal "host:port".
func (c *commandSet) resolveAlias(name string) (host, port string, ok bool) {
	if c.aliases != nil {
		if host, port, ok = c.aliases.Resolve(name); ok {
			return host, port, true
		}
	}

	if h, p, err := net.SplitHostPort(name); err == nil {
		return h, p, true
	}
	return "", "", false
}

func connectCmd(ctx context.Context, sess Session, host, port string) tea.Cmd {
	return func() tea.Msg {
		err := sess.Connect(ctx, host, port)
		return connectDoneMsg{host: host, port: port, err: err}
	}
}

func disconnectCmd(sess Session) tea.Cmd {
	return func() tea.Msg {
		sess.Disconnect()
		return nil
	}
}

func sendCmd(ctx context.Context, sess Session, conversationID, text string) tea.Cmd {
	return func() tea.Msg {
		err := sess.SendMessage(ctx, conversationID, text)
		return sendDoneMsg{conversationID: conversationID, err: err}
	}
}

func (c *commandSet) disconnect([]string) tea.Cmd {
	if c.session.State() == session.StateDisconnected {
		c.router.Log(app.MsgNotConnected)
		return nil
	}
	return disconnectCmd(c.session)
}

func (c *commandSet) msg(args []string) tea.Cmd {
	if c.session.State() != session.StateConnected {
		c.router.Log(app.MsgNotConnected)
		return nil
	}
	if len(args) == 0 {
		c.usage("msg")
		return nil
	}

	target := strings.Join(args, " ")
	registry := c.router.Registry()

	if matches := registry.FindByName(target); len(matches) > 0 {
		for i, conv := range matches {
			if err := c.views.AddView(conv.ID()); err != nil {
				c.router.Log(err.Error())
				break
			}
			if i == 0 {
				c.views.focusID(conv.ID())
			}
		}
		return nil
	}

	if err := validators.ValidatePhoneNumber(target); err != nil {
		c.router.Log(app.MsgInvalidContact)
		return nil
	}

	conv, _ := registry.GetOrCreate(target)
	if err := c.views.AddView(conv.ID()); err != nil {
		c.router.Log(err.Error())
		return nil
	}
	c.views.focusID(conv.ID())
	return nil
}

func (c *commandSet) list([]string) tea.Cmd {
	names := c.dispatcher.Names()
	for i, name := range names {
		names[i] = command.Prefix + name
	}
	c.router.Log("Commands: " + strings.Join(names, " "))
	return nil
}

func (c *commandSet) help(args []string) tea.Cmd {
	if len(args) == 0 {
		for _, name := range c.dispatcher.Names() {
			c.usage(name)
		}
		return nil
	}

	usage, ok := c.dispatcher.Usage(args[0])
	if !ok {
		c.router.Logf("Unknown command %s", args[0])
		return nil
	}
	c.router.Log("Usage: " + usage)

	if strings.EqualFold(strings.TrimPrefix(args[0], command.Prefix), "connect") && c.aliases != nil {
		if names := c.aliases.Names(); len(names) > 0 {
			c.router.Logf(app.MsgAliases, strings.Join(names, ", "))
		}
	}
	return nil
}

// contacts lists every conversation but the log one, in the order the
// registry learned about them.
func (c *commandSet) contacts([]string) tea.Cmd {
	registry := c.router.Registry()
	if registry.Len() <= 1 {
		c.router.Log(app.MsgNoContacts)
		return nil
	}

	c.router.Logf(app.MsgContactCount, registry.Len()-1)
	for _, conv := range registry.All() {
		if conv.ID() == conversation.LogConversationID {
			continue
		}

		line := conv.DisplayName()
		if addr := conv.Address(); addr != "" && addr != conv.DisplayName() {
			line += " (" + addr + ")"
		}
		if n := conv.Len(); n > 0 {
			line += fmt.Sprintf(" - %d messages", n)
		}
		c.router.Log(line)
	}
	return nil
}

func (c *commandSet) status([]string) tea.Cmd {
	host, port := c.session.Remote()

	switch c.session.State() {
	case session.StateConnected:
		c.router.Logf(app.MsgStatusConnected, host, port)
	case session.StateConnecting:
		c.router.Logf(app.MsgStatusConnecting, host, port)
	default:
		c.router.Log(app.MsgStatusDisconnected)
	}

	if err := c.session.LastErr(); err != nil {
		c.router.Logf(app.MsgStatusLastError, err)
	}
	return nil
}

func (c *commandSet) close([]string) tea.Cmd {
	if !c.views.closeFocused() {
		c.router.Log(app.MsgCantCloseLogView)
	}
	return nil
}

func (c *commandSet) quit([]string) tea.Cmd {
	return tea.Sequence(disconnectCmd(c.session), tea.Quit)
}

func (c *commandSet) version([]string) tea.Cmd {
	for _, line := range buildInfoLines(c.buildInfo) {
		c.router.Log(line)
	}
	return nil
}
