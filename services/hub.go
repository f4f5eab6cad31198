package services

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"snakescores/models"

	"github.com/gorilla/websocket"
)

// Hub fans the current top board out to websocket subscribers. Handlers
// call BroadcastBoard after any mutation that can change the ranking.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	scores     *ScoreService
}

type Client struct {
	hub    *Hub
	id     string
	socket *websocket.Conn
	send   chan []byte
}

type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// LeaderboardEntry pairs a ranked score with a summary of its owner.
type LeaderboardEntry struct {
	Gamer GamerSummary     `json:"gamer"`
	Score models.ScoreView `json:"score"`
}

type GamerSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	UID  string `json:"uid"`
}

// LeaderboardEntries shapes the joined rows of ScoreService.TopGlobal
// into wire entries.
func LeaderboardEntries(scores []models.Score) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(scores))
	for i := range scores {
		entries = append(entries, LeaderboardEntry{
			Gamer: GamerSummary{
				ID:   scores[i].Gamer.ID,
				Name: scores[i].Gamer.Name,
				UID:  scores[i].Gamer.UID,
			},
			Score: scores[i].View(),
		})
	}
	return entries
}

func NewHub(scores *ScoreService) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		scores:     scores,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.mutex.Unlock()
			log.Printf("Leaderboard client registered: %s - total clients: %d", client.id, h.ClientCount())

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mutex.Unlock()
			log.Printf("Leaderboard client unregistered: %s - total clients: %d", client.id, h.ClientCount())

		case message := <-h.broadcast:
			h.mutex.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mutex.Unlock()
		}
	}
}

func (h *Hub) boardMessage() ([]byte, error) {
	entries, err := h.scores.TopGlobal(DefaultTopLimit)
	if err != nil {
		return nil, fmt.Errorf("loading leaderboard: %w", err)
	}
	return json.Marshal(Message{
		Type:    "leaderboard",
		Payload: LeaderboardEntries(entries),
	})
}

// BroadcastBoard queries the current top board and pushes it to every
// subscriber.
func (h *Hub) BroadcastBoard() {
	data, err := h.boardMessage()
	if err != nil {
		log.Printf("Error building leaderboard broadcast: %v", err)
		return
	}
	h.broadcast <- data
}

func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// RegisterClient wires a fresh websocket connection into the hub and
// starts its pumps. The client receives the current board immediately.
func (h *Hub) RegisterClient(conn *websocket.Conn) *Client {
	client := &Client{
		hub:    h,
		id:     fmt.Sprintf("client_%d", time.Now().UnixNano()),
		socket: conn,
		send:   make(chan []byte, 256),
	}

	h.register <- client

	go client.writePump()
	go client.readPump()

	client.sendBoard()
	return client
}

func (c *Client) sendBoard() {
	data, err := c.hub.boardMessage()
	if err != nil {
		log.Printf("Error building leaderboard for client %s: %v", c.id, err)
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.socket.Close()
	}()

	for {
		_, message, err := c.socket.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			break
		}

		var msg Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		switch msg.Type {
		case "ping":
			data, _ := json.Marshal(Message{Type: "pong", Payload: "pong"})
			c.send <- data
		case "request_board":
			c.sendBoard()
		default:
			log.Printf("Unknown message type %q from client %s", msg.Type, c.id)
		}
	}
}

func (c *Client) writePump() {
	defer c.socket.Close()

	for message := range c.send {
		w, err := c.socket.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		w.Write(message)
		if err := w.Close(); err != nil {
			return
		}
	}
	c.socket.WriteMessage(websocket.CloseMessage, []byte{})
}
