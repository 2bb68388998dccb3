package chat

import (
	redis_models "Chatline/models/redis"
)

// Publisher is the relay the chat services publish room events on. It is
// injected rather than reached through a package global so its connection
// lifecycle stays with main (services/redis.RedisClient implements it).
type Publisher interface {
	PublishRoomEvent(event *redis_models.RoomEvent) error
}
