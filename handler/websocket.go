package handler

import (
	"context"

	"github.com/gofiber/contrib/websocket"
)

// FeedSocket relays the realtime feed (new orders, reservations and RSVPs) to an
// admin browser until either side closes.
func (h *Handler) FeedSocket(c *websocket.Conn) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer c.Close()

	// the client never sends anything; reading only detects the close
	go func() {
		defer cancel()
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	err := h.feed.Subscribe(ctx, func(payload []byte) error {
		return c.WriteMessage(websocket.TextMessage, payload)
	})
	if err != nil {
		h.log.Debug("feed socket closed", "error", err)
	}
}
