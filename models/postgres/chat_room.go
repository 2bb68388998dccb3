package postgres

import (
	"time"
)

/*
 * 'ChatRoom' is a named chat context. The owner joins at creation time, so a
 * room always has at least one participant. Messages belong to the room and
 * are only removed with it.
 */
type ChatRoom struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:100;not null"`
	OwnerID   uint      `gorm:"not null;index:idx_chat_rooms_owner"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP"`

	// Relationships
	Owner        Member            `gorm:"foreignKey:OwnerID"`
	Participants []ChatParticipant `gorm:"foreignKey:ChatRoomID;constraint:OnDelete:CASCADE"`
	Messages     []ChatMessage     `gorm:"foreignKey:ChatRoomID;constraint:OnDelete:CASCADE"`
}
