package tui

// history is the list of entered command lines, browsed with up and down.
type history struct {
	entries []string
	pos     int
	draft   string
}

func (h *history) add(line string) {
	if line == "" {
		return
	}
	if n := len(h.entries); n == 0 || h.entries[n-1] != line {
		h.entries = append(h.entries, line)
	}
	h.pos = len(h.entries)
	h.draft = ""
}

// prev moves to the older entry. current is what the input holds and is
// restored when browsing past the newest entry.
func (h *history) prev(current string) (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.pos == len(h.entries) {
		h.draft = current
	}
	if h.pos > 0 {
		h.pos--
	}
	return h.entries[h.pos], true
}

func (h *history) next() (string, bool) {
	switch {
	case h.pos < len(h.entries)-1:
		h.pos++
		return h.entries[h.pos], true
	case h.pos == len(h.entries)-1:
		h.pos++
		return h.draft, true
	default:
		return "", false
	}
}
