// Package live holds the registry of websocket clients subscribed to the
// tournament feed and broadcasts updates to them.
package live

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

type Client struct {
	ID     string
	Conn   *websocket.Conn
	ConnMu sync.Mutex
}

var (
	clients   = make(map[string]*Client)
	clientsMu sync.RWMutex
)

func RegisterClient(id string, conn *websocket.Conn) {
	clientsMu.Lock()
	defer clientsMu.Unlock()

	clients[id] = &Client{
		ID:   id,
		Conn: conn,
	}
}

func UnregisterClient(id string) {
	clientsMu.Lock()
	defer clientsMu.Unlock()

	delete(clients, id)
}

func GetAllClients() []*Client {
	clientsMu.RLock()
	defer clientsMu.RUnlock()

	all := make([]*Client, 0, len(clients))
	for _, c := range clients {
		all = append(all, c)
	}
	return all
}

type OutgoingMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

func Broadcast(msg OutgoingMessage) {
	for _, client := range GetAllClients() {
		client.ConnMu.Lock()
		if err := client.Conn.WriteJSON(msg); err != nil {
			log.Println("Error sending msg to", client.ID, ":", err)
		}
		client.ConnMu.Unlock()
	}
}
