package kaleido

// history keeps the newest replicated segments in a ring. Once full, each push
// overwrites the oldest entry in place.
type history struct {
	buf   []Segment
	start int // Index of the oldest entry once the ring is full
}

func (h *history) len() int {
	return len(h.buf)
}

// push records s, dropping the oldest entry when limit entries are already kept.
func (h *history) push(s Segment, limit int) {
	if len(h.buf) < limit {
		h.buf = append(h.buf, s)
		return
	}
	h.buf[h.start] = s
	h.start++
	if h.start == len(h.buf) {
		h.start = 0
	}
}

// each calls fn for every entry, oldest first.
func (h *history) each(fn func(Segment)) {
	for _, s := range h.buf[h.start:] {
		fn(s)
	}
	for _, s := range h.buf[:h.start] {
		fn(s)
	}
}

// ordered returns a copy of the entries, oldest first.
func (h *history) ordered() []Segment {
	out := make([]Segment, 0, len(h.buf))
	out = append(out, h.buf[h.start:]...)
	return append(out, h.buf[:h.start]...)
}

func (h *history) reset() {
	clear(h.buf)
	h.buf = h.buf[:0]
	h.start = 0
}
