package host

import "github.com/renato0307/maestro/internal/domain"

// Subscribe returns a channel of playback activity and a function to stop
// receiving it. Slow subscribers miss activity rather than block playback.
func (h *LocalHost) Subscribe(buffer int) (<-chan domain.Activity, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextSubID
	h.nextSubID++
	ch := make(chan domain.Activity, buffer)
	h.subscribers[id] = ch

	return ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, ok := h.subscribers[id]; ok {
			close(sub)
			delete(h.subscribers, id)
		}
	}
}

func (h *LocalHost) publish(a domain.Activity) {
	a.At = timestamp()

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subscribers {
		select {
		case ch <- a:
		default:
		}
	}
}
