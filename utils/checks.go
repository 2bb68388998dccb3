package utils

import (
	models "Chatline/models/postgres"
	"fmt"

	"gorm.io/gorm"
)

// Function to check if a chat room exists
func CheckRoomExists(db *gorm.DB, roomID uint) (*models.ChatRoom, error) {
	var room models.ChatRoom
	result := db.First(&room, roomID)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("chat room not found")
		}
		return nil, result.Error
	}

	return &room, nil
}

// IsParticipant reports whether the member holds a participant row in the
// room. Senders and live subscribers are both gated on this.
func IsParticipant(db *gorm.DB, roomID uint, memberID uint) (bool, error) {
	var count int64
	err := db.Model(&models.ChatParticipant{}).
		Where("chat_room_id = ? AND member_id = ?", roomID, memberID).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}
