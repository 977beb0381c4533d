package tui

// connectDoneMsg reports the end of a connection attempt.
type connectDoneMsg struct {
	host string
	port string
	err  error
}

type sendDoneMsg struct {
	conversationID string
	err            error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
