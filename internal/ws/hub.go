// Package ws pushes order events to connected admin dashboards so they
// do not have to poll /api/dashboard/stats.
package ws

import (
	"encoding/json"
	"log"

	"github.com/Devjv2007/ecommerce-apple/models"
)

const (
	EventOrderCreated = "order_created"
	EventOrderUpdated = "order_updated"
)

// Event is the JSON frame sent to dashboard clients.
type Event struct {
	Type  string        `json:"type"`
	Order *models.Order `json:"pedido"`
}

// Hub tracks connected dashboard clients and fans events out to them.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
	}
}

// Run owns the client set; all membership changes go through the
// channels so no lock is needed. Call it once from main.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			log.Printf("Dashboard client connected (%d online)", len(h.clients))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				log.Printf("Dashboard client disconnected (%d online)", len(h.clients))
			}

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow client, drop it rather than block the hub
					delete(h.clients, client)
					close(client.send)
				}
			}
		}
	}
}

func (h *Hub) publish(eventType string, order *models.Order) {
	payload, err := json.Marshal(Event{Type: eventType, Order: order})
	if err != nil {
		log.Printf("Failed to encode %s event: %v", eventType, err)
		return
	}

	select {
	case h.broadcast <- payload:
	default:
		// Feed is advisory; never let it stall an order request
	}
}

func (h *Hub) OrderCreated(order *models.Order) {
	h.publish(EventOrderCreated, order)
}

func (h *Hub) OrderUpdated(order *models.Order) {
	h.publish(EventOrderUpdated, order)
}
