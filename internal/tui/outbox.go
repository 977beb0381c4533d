package tui

// outbox keeps typed texts in order: one send is in flight and the rest wait
// for it to finish.
type outbox struct {
	inFlight bool
	pending  []pendingSend
}

type pendingSend struct {
	conversationID string
	text           string
}

// push reports whether the send can start now. Otherwise it is queued.
func (o *outbox) push(conversationID, text string) bool {
	if o.inFlight {
		o.pending = append(o.pending, pendingSend{conversationID: conversationID, text: text})
		return false
	}
	o.inFlight = true
	return true
}

// done marks the in-flight send finished and returns the next one to start.
func (o *outbox) done() (pendingSend, bool) {
	if len(o.pending) == 0 {
		o.inFlight = false
		return pendingSend{}, false
	}

	next := o.pending[0]
	o.pending = o.pending[1:]
	return next, true
}

// drop discards queued sends and returns how many there were.
func (o *outbox) drop() int {
	n := len(o.pending)
	o.pending = nil
	o.inFlight = false
	return n
}
