package redis

import (
	chat_constants "Chatline/constants/chat"
	redis_models "Chatline/models/redis"
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

// RedisClient wraps the go-redis client used as the publish relay between
// the message write path and the live delivery fan-out.
type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisClient creates a new Redis client instance
func NewRedisClient(Addr string, DB int) *RedisClient {
	var client *redis.Client
	if Addr != "localhost:6379" {
		log.Println("Connecting to remote Redis...")
		opt, err := redis.ParseURL(Addr)
		if err != nil {
			panic("Error parsing Redis URL")
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: Addr,
			DB:   DB,
		})
	}
	return &RedisClient{
		client: client,
		ctx:    context.Background(),
	}
}

// PublishRoomEvent serializes the event and publishes it on the shared
// "room-events" channel. Publish errors are returned to the caller, but the
// write path treats them as warnings: the message is already durable and a
// client that missed the frame recovers via the REST replay endpoint.
func (rc *RedisClient) PublishRoomEvent(event *redis_models.RoomEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("error marshaling room event: %v", err)
	}

	if err := rc.client.Publish(rc.ctx, chat_constants.RoomEventsChannel, data).Err(); err != nil {
		return fmt.Errorf("error publishing room event: %v", err)
	}
	return nil
}

// SubscribeRoomEvents opens a subscription on the "room-events" channel. Any
// number of fan-out workers may subscribe concurrently; each receives a copy
// of every event.
func (rc *RedisClient) SubscribeRoomEvents(ctx context.Context) *redis.PubSub {
	return rc.client.Subscribe(ctx, chat_constants.RoomEventsChannel)
}
