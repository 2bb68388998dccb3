package chat

import (
	chat_constants "Chatline/constants/chat"
	models "Chatline/models/postgres"
	redis_models "Chatline/models/redis"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InvitationService drives the invitation lifecycle:
// PENDING -> ACCEPTED -> JOINED, or PENDING -> DECLINED.
//
// Accepting is the authoritative membership grant: the participant row is
// created exactly once, during Accept. Join only flips the status and
// notifies the room so connected clients can refresh their badge counts.
type InvitationService struct {
	db        *gorm.DB
	publisher Publisher
}

func NewInvitationService(db *gorm.DB, publisher Publisher) *InvitationService {
	return &InvitationService{db: db, publisher: publisher}
}

// Invite creates a PENDING invitation for a member that is not yet in the
// room. A second invite while one is still pending or accepted is rejected.
func (s *InvitationService) Invite(roomID, inviterID, inviteeID uint, message string) (*models.ChatInvitation, error) {
	var invitation models.ChatInvitation

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var room models.ChatRoom
		if err := tx.First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		if err := memberExists(tx, inviterID); err != nil {
			return err
		}
		if err := memberExists(tx, inviteeID); err != nil {
			return err
		}

		// At most one non-terminal invitation per (room, invitee). The count
		// gives the common case a clean rejection; the partial unique index
		// on chat_invitations is what actually stops two concurrent invites
		// from both committing.
		var pending int64
		err := tx.Model(&models.ChatInvitation{}).
			Where("chat_room_id = ? AND invited_member_id = ? AND status IN ?",
				roomID, inviteeID,
				[]string{chat_constants.InvitationPending, chat_constants.InvitationAccepted}).
			Count(&pending).Error
		if err != nil {
			return err
		}
		if pending > 0 {
			return ErrDuplicateInvitation
		}

		if message == "" {
			message = chat_constants.DefaultInvitationMessage
		}

		invitation = models.ChatInvitation{
			ChatRoomID:        roomID,
			InvitingMemberID:  inviterID,
			InvitedMemberID:   inviteeID,
			InvitationMessage: message,
			Status:            chat_constants.InvitationPending,
		}
		if err := tx.Create(&invitation).Error; err != nil {
			// A concurrent invite for the same (room, invitee) slipped past
			// the count; the index rejects the loser
			if isUniqueViolation(err) {
				return ErrDuplicateInvitation
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &invitation, nil
}

// Accept moves a PENDING invitation to ACCEPTED and registers the invitee as
// a participant of the room. The invitation row is locked for the duration
// of the transaction so two concurrent accepts cannot double-join.
func (s *InvitationService) Accept(invitationID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		invitation, err := lockInvitation(tx, invitationID)
		if err != nil {
			return err
		}

		if !chat_constants.CanTransition(invitation.Status, chat_constants.InvitationAccepted) {
			return ErrInvalidState
		}

		participant := models.ChatParticipant{
			ChatRoomID: invitation.ChatRoomID,
			MemberID:   invitation.InvitedMemberID,
			JoinedAt:   time.Now(),
		}
		err = tx.Where("chat_room_id = ? AND member_id = ?", invitation.ChatRoomID, invitation.InvitedMemberID).
			FirstOrCreate(&participant).Error
		if err != nil {
			return err
		}

		return tx.Model(invitation).Update("status", chat_constants.InvitationAccepted).Error
	})
}

// Decline moves a PENDING invitation to DECLINED. Declining an invitation
// that is already DECLINED is a no-op; declining from any other state is an
// ErrInvalidState.
func (s *InvitationService) Decline(invitationID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		invitation, err := lockInvitation(tx, invitationID)
		if err != nil {
			return err
		}

		if invitation.Status == chat_constants.InvitationDeclined {
			return nil
		}
		if !chat_constants.CanTransition(invitation.Status, chat_constants.InvitationDeclined) {
			return ErrInvalidState
		}

		return tx.Model(invitation).Update("status", chat_constants.InvitationDeclined).Error
	})
}

// Join marks an ACCEPTED invitation as JOINED and notifies the room topic so
// connected clients update their invitation badges. Membership was already
// granted during Accept; the FirstOrCreate here only repairs a participant
// row that went missing between the two calls.
func (s *InvitationService) Join(invitationID uint) error {
	var event *redis_models.RoomEvent

	err := s.db.Transaction(func(tx *gorm.DB) error {
		invitation, err := lockInvitation(tx, invitationID)
		if err != nil {
			return err
		}

		if !chat_constants.CanTransition(invitation.Status, chat_constants.InvitationJoined) {
			return ErrInvalidState
		}

		participant := models.ChatParticipant{
			ChatRoomID: invitation.ChatRoomID,
			MemberID:   invitation.InvitedMemberID,
			JoinedAt:   time.Now(),
		}
		err = tx.Where("chat_room_id = ? AND member_id = ?", invitation.ChatRoomID, invitation.InvitedMemberID).
			FirstOrCreate(&participant).Error
		if err != nil {
			return err
		}

		if err := tx.Model(invitation).Update("status", chat_constants.InvitationJoined).Error; err != nil {
			return err
		}

		event = &redis_models.RoomEvent{
			Type:       chat_constants.EventMemberJoined,
			ChatRoomID: invitation.ChatRoomID,
			MemberID:   invitation.InvitedMemberID,
			SentAt:     time.Now(),
		}
		return recordRoomEvent(tx, event)
	})
	if err != nil {
		return err
	}

	// The status change is committed; a relay outage only costs the live
	// notification, clients recover on their next poll.
	if err := s.publisher.PublishRoomEvent(event); err != nil {
		log.Printf("Warning: failed to publish member_joined event for invitation %d: %v", invitationID, err)
	}

	return nil
}

// PendingCount returns how many PENDING invitations the member holds, for
// the UI badge.
func (s *InvitationService) PendingCount(memberID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.ChatInvitation{}).
		Where("invited_member_id = ? AND status = ?", memberID, chat_constants.InvitationPending).
		Count(&count).Error
	return count, err
}

// lockInvitation loads the invitation under a row-level lock so concurrent
// state transitions serialize on the row.
func lockInvitation(tx *gorm.DB, invitationID uint) (*models.ChatInvitation, error) {
	var invitation models.ChatInvitation
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&invitation, invitationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, err
	}
	return &invitation, nil
}
