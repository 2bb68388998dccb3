package postgres

import (
	"time"
)

/*
 * 'ChatMessage' is an immutable text message inside a room. Only the IsRead
 * flag ever changes, and only false -> true. Replay ordering is
 * (sent_at, id); wall clock alone is not a total order under skew.
 */
type ChatMessage struct {
	ID         uint      `gorm:"primaryKey"`
	ChatRoomID uint      `gorm:"not null;index:idx_chat_messages_room"`
	SenderID   uint      `gorm:"not null"`
	Content    string    `gorm:"size:1000;not null"`
	SentAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	IsRead     bool      `gorm:"not null;default:false"`

	// Relationships
	ChatRoom ChatRoom `gorm:"foreignKey:ChatRoomID;constraint:OnDelete:CASCADE"`
	Sender   Member   `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE"`
}
