package conversation

//go:generate mockgen -source=interfaces.go -destination=../mock/conversation_mock.go -package=mock

// Presenter is the part of the terminal UI the router talks to.
type Presenter interface {
	// IsViewShown reports whether the conversation has an open view.
	IsViewShown(id string) bool
	// AddView opens a view for the conversation. It fails when no more
	// views can be opened.
	AddView(id string) error
	// RequestRedraw schedules a repaint of the screen.
	RequestRedraw()
}

// Notifier delivers a desktop notification. Failures are logged and ignored.
type Notifier interface {
	Notify(title, body string) error
}
