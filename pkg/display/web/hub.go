package web

import "sync"

// hub tracks connected clients and fans messages out to them.
type hub struct {
	clients map[*Client]struct{}
	mu      sync.Mutex
}

func newHub() *hub {
	return &hub{clients: make(map[*Client]struct{})}
}

func (h *hub) register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
}

// unregister removes c and closes its Send channel. It is safe to
// call more than once.
func (h *hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.Send)
	}
}

// broadcast queues frame for every client that is still waiting
// for a full frame and repeat for the rest. A nil repeat sends
// frame to everyone. Clients that have fallen behind miss the
// message rather than stall presentation, and wait for the next
// full frame if it was one.
func (h *hub) broadcast(frame, repeat []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		full := repeat == nil || c.needsFrame
		message := repeat
		if full {
			message = frame
		}

		select {
		case c.Send <- message:
			if full {
				c.needsFrame = false
			}
		default:
			if full {
				// later repeats would refer to the frame it missed
				c.needsFrame = true
			}
		}
	}
}

func (h *hub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// closeAll notifies and disconnects every client.
func (h *hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.Send <- []byte{Closing}:
		default:
		}
		delete(h.clients, c)
		close(c.Send)
	}
}
