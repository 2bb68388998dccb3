package postgres

import (
	"time"
)

/*
 * 'Member' is a registered user of the platform. The chat subsystem only
 * reads members (directory lookups by id/email); registration lives in the
 * members controller.
 */
type Member struct {
	ID           uint      `gorm:"primaryKey"`
	Email        string    `gorm:"size:100;not null;uniqueIndex"`
	Name         string    `gorm:"size:100;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	RegisteredAt time.Time `gorm:"default:CURRENT_TIMESTAMP"`
}
