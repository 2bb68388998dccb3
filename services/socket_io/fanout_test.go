package socket_io

import (
	chat_constants "Chatline/constants/chat"
	redis_models "Chatline/models/redis"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recordedEmit struct {
	topic string
	event string
	data  interface{}
}

type fakeEmitter struct {
	emits []recordedEmit
}

func (e *fakeEmitter) EmitToRoom(topic string, event string, data interface{}) {
	e.emits = append(e.emits, recordedEmit{topic: topic, event: event, data: data})
}

func TestHandleRoomEventNewMessage(t *testing.T) {
	emitter := &fakeEmitter{}

	payload, err := json.Marshal(redis_models.RoomEvent{
		EventID:    61,
		Type:       chat_constants.EventNewMessage,
		ChatRoomID: 7,
		MessageID:  51,
		SenderID:   2,
		Content:    "hello",
		SentAt:     time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)

	assert.NoError(t, handleRoomEvent(emitter, payload))
	assert.Len(t, emitter.emits, 1)

	assert.Equal(t, "room/7", emitter.emits[0].topic)
	assert.Equal(t, chat_constants.EventNewMessage, emitter.emits[0].event)

	event, ok := emitter.emits[0].data.(redis_models.RoomEvent)
	assert.True(t, ok)
	assert.Equal(t, uint(61), event.EventID)
	assert.Equal(t, uint(51), event.MessageID)
	assert.Equal(t, "hello", event.Content)
}

func TestHandleRoomEventMemberJoined(t *testing.T) {
	emitter := &fakeEmitter{}

	payload, err := json.Marshal(redis_models.RoomEvent{
		EventID:    31,
		Type:       chat_constants.EventMemberJoined,
		ChatRoomID: 4,
		MemberID:   9,
	})
	assert.NoError(t, err)

	assert.NoError(t, handleRoomEvent(emitter, payload))
	assert.Len(t, emitter.emits, 1)
	assert.Equal(t, "room/4", emitter.emits[0].topic)
	assert.Equal(t, chat_constants.EventMemberJoined, emitter.emits[0].event)
}

func TestHandleRoomEventMalformedPayload(t *testing.T) {
	emitter := &fakeEmitter{}

	// A bad frame is reported but must not reach any topic
	assert.Error(t, handleRoomEvent(emitter, []byte("{not json")))
	assert.Empty(t, emitter.emits)
}
