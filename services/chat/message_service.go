package chat

import (
	chat_constants "Chatline/constants/chat"
	models "Chatline/models/postgres"
	redis_models "Chatline/models/redis"
	"encoding/json"
	"errors"
	"log"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"
)

// MessageService persists messages and hands them to the publish relay.
// Persistence failures are fatal to the request; publish failures are not,
// the message is already durable and live subscribers that missed the frame
// catch up through MessagesForRoom.
type MessageService struct {
	db        *gorm.DB
	publisher Publisher
}

func NewMessageService(db *gorm.DB, publisher Publisher) *MessageService {
	return &MessageService{db: db, publisher: publisher}
}

// Send appends a message to the room. The sender must be a current
// participant; invited-but-not-joined members cannot post.
func (s *MessageService) Send(roomID, senderID uint, content string) (*models.ChatMessage, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	// The content column counts characters, not bytes
	if utf8.RuneCountInString(content) > chat_constants.MaxMessageLength {
		return nil, ErrContentTooLong
	}

	var message models.ChatMessage
	var event *redis_models.RoomEvent

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var room models.ChatRoom
		if err := tx.First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		var isParticipant int64
		err := tx.Model(&models.ChatParticipant{}).
			Where("chat_room_id = ? AND member_id = ?", roomID, senderID).
			Count(&isParticipant).Error
		if err != nil {
			return err
		}
		if isParticipant == 0 {
			return ErrNotParticipant
		}

		message = models.ChatMessage{
			ChatRoomID: roomID,
			SenderID:   senderID,
			Content:    content,
			SentAt:     time.Now(),
		}
		if err := tx.Create(&message).Error; err != nil {
			return err
		}

		event = &redis_models.RoomEvent{
			Type:       chat_constants.EventNewMessage,
			ChatRoomID: roomID,
			MessageID:  message.ID,
			SenderID:   senderID,
			Content:    content,
			SentAt:     message.SentAt,
		}
		return recordRoomEvent(tx, event)
	})
	if err != nil {
		return nil, err
	}

	if err := s.publisher.PublishRoomEvent(event); err != nil {
		log.Printf("Warning: failed to publish message %d to relay: %v", message.ID, err)
	}

	return &message, nil
}

// MessagesForRoom returns the room history oldest first. The id tie-break
// keeps the order total (and repeated reads identical) even when two
// messages carry the same timestamp.
func (s *MessageService) MessagesForRoom(roomID uint) ([]models.ChatMessage, error) {
	messages := []models.ChatMessage{}
	err := s.db.Where("chat_room_id = ?", roomID).
		Order("sent_at ASC, id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// MarkRead flips the read flag to true. The transition is monotonic and
// idempotent: marking an already-read message again succeeds without effect.
func (s *MessageService) MarkRead(messageID uint) error {
	var message models.ChatMessage
	if err := s.db.First(&message, messageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMessageNotFound
		}
		return err
	}

	if message.IsRead {
		return nil
	}

	return s.db.Model(&message).Update("is_read", true).Error
}

// UnreadCount counts unread messages in the room that the member did not
// send, for the UI badge.
func (s *MessageService) UnreadCount(roomID, memberID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.ChatMessage{}).
		Where("chat_room_id = ? AND sender_id <> ? AND is_read = ?", roomID, memberID, false).
		Count(&count).Error
	return count, err
}

// recordRoomEvent writes the outbox row for a payload about to be published
// and stamps the event with the row id, giving scaled-out fan-out workers an
// identity to deduplicate on.
func recordRoomEvent(tx *gorm.DB, event *redis_models.RoomEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	row := models.RoomEvent{
		ChatRoomID:  event.ChatRoomID,
		EventType:   event.Type,
		Payload:     payload,
		PublishedAt: time.Now(),
	}
	if err := tx.Create(&row).Error; err != nil {
		return err
	}

	event.EventID = row.ID
	return nil
}
