package chat

import (
	chat_constants "Chatline/constants/chat"
	models "Chatline/models/postgres"
	"time"

	"gorm.io/gorm"
)

// RoomService creates chat rooms and answers which rooms a member owns or is
// invited to.
type RoomService struct {
	db *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{db: db}
}

// RoomSummary is one row of the owner/invited union returned to the room
// list endpoint.
type RoomSummary struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	OwnerID   uint      `json:"owner_id"`
	OwnerName string    `json:"owner_name"`
	Status    string    `json:"status"`
}

// CreateRoom creates a room, auto-joins the owner as its first participant
// and issues a PENDING invitation to the invitee, all in one transaction.
// If either member lookup fails nothing is committed.
func (s *RoomService) CreateRoom(name string, ownerID, inviteeID uint) (*models.ChatRoom, error) {
	var room models.ChatRoom

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := memberExists(tx, ownerID); err != nil {
			return err
		}
		if err := memberExists(tx, inviteeID); err != nil {
			return err
		}

		room = models.ChatRoom{
			Name:    name,
			OwnerID: ownerID,
		}
		if err := tx.Create(&room).Error; err != nil {
			return err
		}

		participant := models.ChatParticipant{
			ChatRoomID: room.ID,
			MemberID:   ownerID,
			JoinedAt:   time.Now(),
		}
		if err := tx.Create(&participant).Error; err != nil {
			return err
		}

		invitation := models.ChatInvitation{
			ChatRoomID:        room.ID,
			InvitingMemberID:  ownerID,
			InvitedMemberID:   inviteeID,
			InvitationMessage: chat_constants.DefaultInvitationMessage,
			Status:            chat_constants.InvitationPending,
		}
		return tx.Create(&invitation).Error
	})
	if err != nil {
		return nil, err
	}

	return &room, nil
}

// RoomsForMember returns the rooms the member owns (tagged JOINED) unioned
// with the rooms the member holds a PENDING invitation for (tagged PENDING).
func (s *RoomService) RoomsForMember(memberID uint) ([]RoomSummary, error) {
	summaries := []RoomSummary{}

	err := s.db.Raw(`
		SELECT cr.id, cr.name, cr.created_at, cr.owner_id, m.name AS owner_name, 'JOINED' AS status
		FROM chat_rooms cr
		JOIN members m ON cr.owner_id = m.id
		WHERE cr.owner_id = ?
		UNION
		SELECT cr.id, cr.name, cr.created_at, cr.owner_id, m.name AS owner_name, 'PENDING' AS status
		FROM chat_rooms cr
		JOIN chat_invitations ci ON ci.chat_room_id = cr.id
		JOIN members m ON cr.owner_id = m.id
		WHERE ci.invited_member_id = ? AND ci.status = 'PENDING'`,
		memberID, memberID).Scan(&summaries).Error
	if err != nil {
		return nil, err
	}

	return summaries, nil
}

// memberExists checks the member row inside the current transaction so room
// creation cannot commit against a member deleted mid-flight.
func memberExists(tx *gorm.DB, memberID uint) error {
	var count int64
	if err := tx.Model(&models.Member{}).Where("id = ?", memberID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrMemberNotFound
	}
	return nil
}
