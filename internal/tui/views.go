package tui

import (
	"slices"

	"github.com/MKhiriev/smscli/internal/conversation"
)

// viewSet is the ordered list of shown conversations. Index 0 is always the
// log view. It implements conversation.Presenter and is only touched from the
// UI event loop.
type viewSet struct {
	ids      []string
	focused  int
	maxViews int
	dirty    bool
}

func newViewSet(maxViews int) *viewSet {
	return &viewSet{
		ids:      []string{conversation.LogConversationID},
		maxViews: maxViews,
		dirty:    true,
	}
}

// IsViewShown implements conversation.Presenter.
func (v *viewSet) IsViewShown(id string) bool {
	return slices.Contains(v.ids, id)
}

// AddView implements conversation.Presenter. The new view does not take the
// focus.
func (v *viewSet) AddView(id string) error {
	if v.IsViewShown(id) {
		return nil
	}
	if len(v.ids)-1 >= v.maxViews {
		return ErrTooManyViews
	}

	v.ids = append(v.ids, id)
	v.dirty = true
	return nil
}

// RequestRedraw implements conversation.Presenter.
func (v *viewSet) RequestRedraw() {
	v.dirty = true
}

func (v *viewSet) focusedID() string {
	return v.ids[v.focused]
}

func (v *viewSet) focusIndex(i int) bool {
	if i < 0 || i >= len(v.ids) {
		return false
	}
	v.focused = i
	v.dirty = true
	return true
}

func (v *viewSet) focusID(id string) bool {
	return v.focusIndex(slices.Index(v.ids, id))
}

// closeFocused closes the focused view and moves the focus to its left
// neighbour. The log view cannot be closed.
func (v *viewSet) closeFocused() bool {
	if v.focused == 0 {
		return false
	}

	v.ids = slices.Delete(v.ids, v.focused, v.focused+1)
	v.focused--
	v.dirty = true
	return true
}

// closeAllButLog leaves only the log view, focused.
func (v *viewSet) closeAllButLog() {
	v.ids = v.ids[:1]
	v.focused = 0
	v.dirty = true
}

func (v *viewSet) onLogView() bool {
	return v.focused == 0
}
