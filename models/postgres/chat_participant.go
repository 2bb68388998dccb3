package postgres

import (
	"time"
)

/*
 * 'ChatParticipant' records confirmed membership of a member in a chat room.
 * The unique index enforces at most one active row per (room, member) pair.
 * Rows are created when a room is created (the owner) or when an invitation
 * is accepted, never speculatively.
 */
type ChatParticipant struct {
	ID         uint      `gorm:"primaryKey"`
	ChatRoomID uint      `gorm:"not null;uniqueIndex:idx_chat_participants_room_member"`
	MemberID   uint      `gorm:"not null;uniqueIndex:idx_chat_participants_room_member"`
	JoinedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`

	// Relationships
	ChatRoom ChatRoom `gorm:"foreignKey:ChatRoomID;constraint:OnDelete:CASCADE"`
	Member   Member   `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
}
