package infrastructure

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	pingInterval  = 30 * time.Second
	writeDeadline = 5 * time.Second
	readDeadline  = 60 * time.Second
)

// Client is one websocket subscriber of the dataset stream. The stream is
// one-way; inbound frames are only read to notice disconnects.
type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	subject   string
	closeOnce sync.Once
}

func NewClient(hub *Hub, conn *websocket.Conn, subject string, buf int) *Client {
	return &Client{
		hub:     hub,
		conn:    conn,
		send:    make(chan []byte, buf),
		subject: subject,
	}
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.send)
		_ = c.conn.Close()
	})
}

// WritePump drains the send buffer onto the connection and keeps it alive
// with pings.
func (c *Client) WritePump() {
	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				slog.Warn("ws write error", slog.String("subject", c.subject), slog.Any("error", err))
				return
			}
		case <-ping.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeDeadline)); err != nil {
				slog.Warn("ws ping error", slog.String("subject", c.subject), slog.Any("error", err))
				return
			}
		}
	}
}

// ReadPump discards inbound frames until the peer goes away, then detaches
// the client from the hub.
func (c *Client) ReadPump() {
	defer c.hub.Detach(c)
	c.conn.SetReadLimit(1 << 12)
	_ = c.conn.SetReadDeadline(time.Now().Add(readDeadline))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(readDeadline))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Warn("ws read error", slog.String("subject", c.subject), slog.Any("error", err))
			}
			return
		}
	}
}
