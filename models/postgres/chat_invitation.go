package postgres

import (
	"time"
)

/*
 * 'ChatInvitation' is an offer of room membership. Status holds one of the
 * chat_constants.Invitation* values; transitions are validated in the
 * invitation service, the column only stores the current state.
 *
 * The partial unique index allows at most one live (PENDING or ACCEPTED)
 * invitation per (room, invitee) pair, so two concurrent invites cannot both
 * commit. Terminal rows (JOINED, DECLINED) do not block a re-invite.
 */
type ChatInvitation struct {
	ID                uint      `gorm:"primaryKey"`
	ChatRoomID        uint      `gorm:"not null;index:idx_chat_invitations_room;index:idx_chat_invitations_active_invite,unique,where:status = 'PENDING' OR status = 'ACCEPTED'"`
	InvitingMemberID  uint      `gorm:"not null"`
	InvitedMemberID   uint      `gorm:"not null;index:idx_chat_invitations_invited;index:idx_chat_invitations_active_invite,unique"`
	InvitationMessage string    `gorm:"size:255"`
	Status            string    `gorm:"size:20;not null"`
	CreatedAt         time.Time `gorm:"default:CURRENT_TIMESTAMP"`

	// Relationships
	ChatRoom       ChatRoom `gorm:"foreignKey:ChatRoomID;constraint:OnDelete:CASCADE"`
	InvitingMember Member   `gorm:"foreignKey:InvitingMemberID;constraint:OnDelete:CASCADE"`
	InvitedMember  Member   `gorm:"foreignKey:InvitedMemberID;constraint:OnDelete:CASCADE"`
}
