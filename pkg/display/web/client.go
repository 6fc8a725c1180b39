package web

import (
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = time.Second

// Client is a connected websocket client.
type Client struct {
	hub  *hub
	conn *websocket.Conn
	Send chan []byte

	// needsFrame is set until a full frame has been queued, a
	// FrameRepeat means nothing to a client without one.
	needsFrame bool
}

// ReadPump reads from the client until the connection fails, as
// clients only ever send close and control frames.
func (c *Client) ReadPump() {
	defer c.hub.unregister(c)

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return // connection closed
		}
	}
}

// WritePump writes queued messages to the client until Send is
// closed by the hub.
func (c *Client) WritePump() {
	defer func() {
		c.conn.WriteControl(websocket.CloseMessage, []byte{}, time.Now().Add(writeWait))
		c.conn.Close()
	}()

	for message := range c.Send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.BinaryMessage, message); err != nil {
			c.hub.unregister(c)
			return
		}
	}
}
