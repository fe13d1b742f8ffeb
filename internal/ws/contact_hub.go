package ws

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 256
)

// ContactEvent is pushed to admin dashboards whenever a submission is stored.
type ContactEvent struct {
	Type      string    `json:"type"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Notified  bool      `json:"notified"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactHub fans new submissions out to connected admin clients.
type ContactHub struct {
	register   chan *contactClient
	unregister chan *contactClient
	broadcast  chan []byte
	clients    map[*contactClient]struct{}
}

func NewContactHub() *ContactHub {
	return &ContactHub{
		register:   make(chan *contactClient),
		unregister: make(chan *contactClient),
		broadcast:  make(chan []byte, 256),
		clients:    make(map[*contactClient]struct{}),
	}
}

func (h *ContactHub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = struct{}{}
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
		case msg := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- msg:
				default:
					delete(h.clients, client)
					close(client.send)
				}
			}
		}
	}
}

// Publish queues an event for every connected client. It never blocks the caller:
// when the queue is full the event is dropped.
func (h *ContactHub) Publish(event ContactEvent) {
	if h == nil {
		return
	}
	if event.Type == "" {
		event.Type = "contact_created"
	}
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("ws: failed to marshal payload: %v", err)
		return
	}
	select {
	case h.broadcast <- data:
	default:
		log.Printf("ws: broadcast queue full, dropping event %s", event.ID)
	}
}

type contactClient struct {
	hub  *ContactHub
	conn *websocket.Conn
	send chan []byte
}

func newContactClient(hub *ContactHub, conn *websocket.Conn) *contactClient {
	return &contactClient{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
}

func (c *contactClient) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *contactClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			if _, err := w.Write(msg); err != nil {
				return
			}
			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
