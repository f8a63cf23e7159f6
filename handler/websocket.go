package handler

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"restaurant_manager/constants"
	"restaurant_manager/database"

	"github.com/gofiber/contrib/websocket"
)

var (
	kitchenClients = make(map[*websocket.Conn]bool)
	kitchenMu      sync.Mutex
)

// KitchenWebSocket keeps the kitchen display live: each connected screen gets
// the current queue on connect and a fresh copy whenever it changes, relayed
// over a redis pub/sub channel.
func KitchenWebSocket(c *websocket.Conn) {
	defer func() {
		kitchenMu.Lock()
		delete(kitchenClients, c)
		kitchenMu.Unlock()
		c.Close()
	}()

	kitchenMu.Lock()
	kitchenClients[c] = true
	kitchenMu.Unlock()

	// Initial snapshot for the new screen.
	if items, err := kitchen.Queue(context.Background()); err == nil {
		c.WriteJSON(items)
	}

	pubsub := database.Redis.Subscribe(context.Background(), constants.KITCHEN_UPDATES_TOPIC)
	defer pubsub.Close()

	channel := pubsub.Channel()

	for msg := range channel {
		payload := []byte(msg.Payload)

		kitchenMu.Lock()
		for conn := range kitchenClients {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(kitchenClients, conn)
			}
		}
		kitchenMu.Unlock()
	}
}

// BroadcastKitchenQueue publishes the current queue to every kitchen display.
// Called after anything that changes the queue (confirm, mark-ready).
func BroadcastKitchenQueue() {
	ctx := context.Background()
	items, err := kitchen.Queue(ctx)
	if err != nil {
		log.Printf("failed to load kitchen queue for broadcast: %v", err)
		return
	}

	payload, err := json.Marshal(items)
	if err != nil {
		log.Printf("failed to marshal kitchen queue: %v", err)
		return
	}

	if err := database.Redis.Publish(ctx, constants.KITCHEN_UPDATES_TOPIC, payload).Err(); err != nil {
		log.Printf("failed to publish kitchen queue update: %v", err)
	}
}
