package postgres

import (
	"time"

	"gorm.io/datatypes"
)

/*
 * 'RoomEvent' is the outbox row written for every payload published on the
 * relay. Delivery over the relay is best-effort; this row is the durable
 * record of what was published, and its id gives fan-out workers an event
 * identity to deduplicate on when several of them serve overlapping
 * connection sets.
 */
type RoomEvent struct {
	ID          uint           `gorm:"primaryKey"`
	ChatRoomID  uint           `gorm:"not null;index:idx_room_events_room"`
	EventType   string         `gorm:"size:30;not null"`
	Payload     datatypes.JSON `gorm:"not null"`
	PublishedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP"`

	// Relationships
	ChatRoom ChatRoom `gorm:"foreignKey:ChatRoomID;constraint:OnDelete:CASCADE"`
}
