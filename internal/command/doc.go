// Package command parses "/name args" input lines and dispatches them to
// registered handlers.
//
// Commands are registered explicitly by name; there is no reflection or
// naming convention. A handler returns a bubbletea command, so long running
// work (connecting, sending) runs off the UI event loop.
package command
