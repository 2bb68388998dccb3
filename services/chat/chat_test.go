package chat

import (
	redis_models "Chatline/models/redis"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB opens a GORM connection backed by sqlmock so service logic can
// be exercised without a live PostgreSQL.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Error creating sqlmock: %v", err)
	}

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("Error opening GORM over sqlmock: %v", err)
	}

	return db, mock, sqlDB
}

// fakePublisher records published events and can simulate an unreachable
// relay.
type fakePublisher struct {
	events []*redis_models.RoomEvent
	err    error
}

func (p *fakePublisher) PublishRoomEvent(event *redis_models.RoomEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}
