package socket_io

import (
	chat_constants "Chatline/constants/chat"
	redis_models "Chatline/models/redis"
	"Chatline/services/redis"
	"context"
	"encoding/json"
	"fmt"
	"log"
)

// RoomEmitter is the slice of the socket server the fan-out worker needs:
// push an event to every live connection on a topic.
type RoomEmitter interface {
	EmitToRoom(topic string, event string, data interface{})
}

// StartFanout subscribes to the relay channel and forwards every event to
// the sockets subscribed to its room topic. Several workers may run against
// the same channel; each receives a copy of every event.
//
// A malformed payload is logged and dropped, it never ends the loop. The
// worker stops when the context is cancelled.
func StartFanout(ctx context.Context, redisClient *redis.RedisClient, emitter RoomEmitter) {
	pubsub := redisClient.SubscribeRoomEvents(ctx)

	go func() {
		defer pubsub.Close()

		ch := pubsub.Channel()
		log.Printf("Fan-out worker subscribed to %s", chat_constants.RoomEventsChannel)

		for {
			select {
			case <-ctx.Done():
				log.Println("Fan-out worker stopping")
				return
			case msg, ok := <-ch:
				if !ok {
					log.Println("Fan-out subscription closed")
					return
				}
				if err := handleRoomEvent(emitter, []byte(msg.Payload)); err != nil {
					log.Printf("Warning: dropping room event: %v", err)
				}
			}
		}
	}()
}

// handleRoomEvent deserializes one relay payload and pushes it to the room
// topic. The emitted event keeps the relay event type (new_message,
// member_joined) so clients can route it.
func handleRoomEvent(emitter RoomEmitter, payload []byte) error {
	var event redis_models.RoomEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("malformed payload: %v", err)
	}

	emitter.EmitToRoom(chat_constants.RoomTopic(event.ChatRoomID), event.Type, event)
	return nil
}
