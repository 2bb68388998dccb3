package redis

import "time"

// RoomEvent is the payload published on the relay channel and pushed to live
// subscribers of the room topic. It carries the full message so fan-out
// workers never go back to the database.
type RoomEvent struct {
	EventID    uint      `json:"event_id"`
	Type       string    `json:"type"`
	ChatRoomID uint      `json:"chat_room_id"`
	MessageID  uint      `json:"message_id,omitempty"`
	SenderID   uint      `json:"sender_id,omitempty"`
	MemberID   uint      `json:"member_id,omitempty"`
	Content    string    `json:"content,omitempty"`
	SentAt     time.Time `json:"sent_at"`
}
