// Package services provides business logic services
package services

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/nats-io/nats.go"
)

// SubjectEmployeeCreated carries one JSON-encoded employee record per
// successful insert.
const SubjectEmployeeCreated = "employees.created"

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	clientSendSize = 16
)

// Hub fans activity events out from NATS to connected WebSocket clients.
type Hub struct {
	natsConn *nats.Conn

	clients   map[*Client]bool
	clientsMu sync.RWMutex

	register   chan *Client
	unregister chan *Client

	sub             *nats.Subscription
	eventsDelivered uint64
}

// Client represents one WebSocket viewer of the activity feed.
type Client struct {
	hub        *Hub
	conn       *websocket.Conn
	send       chan []byte
	remoteAddr string
}

// NewHub creates a hub and subscribes it to the activity subject.
func NewHub(natsConn *nats.Conn) (*Hub, error) {
	h := &Hub{
		natsConn:   natsConn,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}

	sub, err := natsConn.Subscribe(SubjectEmployeeCreated, func(msg *nats.Msg) {
		h.broadcast(msg.Data)
	})
	if err != nil {
		return nil, err
	}
	h.sub = sub

	return h, nil
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	log.Println("📺 Activity hub started")

	for {
		select {
		case client := <-h.register:
			h.clientsMu.Lock()
			h.clients[client] = true
			h.clientsMu.Unlock()
			log.Printf("📺 Client connected: %s", client.remoteAddr)

		case client := <-h.unregister:
			h.clientsMu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.clientsMu.Unlock()
			log.Printf("📺 Client disconnected: %s", client.remoteAddr)
		}
	}
}

// broadcast sends an event to every connected client. Clients with a full
// send buffer are skipped rather than blocking the NATS callback.
func (h *Hub) broadcast(data []byte) {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()

	for client := range h.clients {
		select {
		case client.send <- data:
			atomic.AddUint64(&h.eventsDelivered, 1)
		default:
			log.Printf("⚠️ Dropping event for slow client %s", client.remoteAddr)
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

// EventsDelivered returns the number of events sent to clients.
func (h *Hub) EventsDelivered() uint64 {
	return atomic.LoadUint64(&h.eventsDelivered)
}

// ServeWS registers an upgraded WebSocket connection with the hub and starts
// its read/write pumps.
func (h *Hub) ServeWS(conn *websocket.Conn, remoteAddr string) {
	client := &Client{
		hub:        h,
		conn:       conn,
		send:       make(chan []byte, clientSendSize),
		remoteAddr: remoteAddr,
	}
	h.register <- client

	go client.writePump()
	go client.readPump()
}

// readPump discards inbound messages; the feed is one-way. Its job is to
// notice the peer going away.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
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
