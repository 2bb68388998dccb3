package chat

import (
	chat_constants "Chatline/constants/chat"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func expectRoomExists(mock sqlmock.Sqlmock, roomID uint) {
	mock.ExpectQuery(`SELECT \* FROM "chat_rooms" WHERE "chat_rooms"\."id" = \$1`).
		WithArgs(roomID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "owner_id", "created_at"}).
			AddRow(roomID, "room", 1, time.Now()))
}

func TestSendMessage(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	publisher := &fakePublisher{}
	service := NewMessageService(db, publisher)

	mock.ExpectBegin()
	expectRoomExists(mock, 7)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "chat_participants" WHERE chat_room_id = \$1 AND member_id = \$2`).
		WithArgs(7, 2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "chat_messages"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(51))
	mock.ExpectQuery(`INSERT INTO "room_events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(61))
	mock.ExpectCommit()

	message, err := service.Send(7, 2, "hello")
	assert.NoError(t, err)
	assert.Equal(t, uint(51), message.ID)
	assert.Equal(t, "hello", message.Content)
	assert.False(t, message.IsRead)

	// The relay frame carries the persisted row, stamped with the outbox id
	assert.Len(t, publisher.events, 1)
	assert.Equal(t, chat_constants.EventNewMessage, publisher.events[0].Type)
	assert.Equal(t, uint(61), publisher.events[0].EventID)
	assert.Equal(t, uint(51), publisher.events[0].MessageID)
	assert.Equal(t, "hello", publisher.events[0].Content)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendMessagePublishFailure(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	service := NewMessageService(db, &fakePublisher{err: errors.New("relay unreachable")})

	mock.ExpectBegin()
	expectRoomExists(mock, 7)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "chat_participants" WHERE chat_room_id = \$1 AND member_id = \$2`).
		WithArgs(7, 2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "chat_messages"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(51))
	mock.ExpectQuery(`INSERT INTO "room_events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(61))
	mock.ExpectCommit()

	// The message is durable; a relay outage is logged and swallowed
	message, err := service.Send(7, 2, "hello")
	assert.NoError(t, err)
	assert.Equal(t, uint(51), message.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendMessageNotParticipant(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	service := NewMessageService(db, &fakePublisher{})

	mock.ExpectBegin()
	expectRoomExists(mock, 7)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "chat_participants" WHERE chat_room_id = \$1 AND member_id = \$2`).
		WithArgs(7, 9).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	// Invited but not yet accepted members cannot post
	message, err := service.Send(7, 9, "hello")
	assert.ErrorIs(t, err, ErrNotParticipant)
	assert.Nil(t, message)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendMessageRoomNotFound(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	service := NewMessageService(db, &fakePublisher{})

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "chat_rooms" WHERE "chat_rooms"\."id" = \$1`).
		WithArgs(404, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := service.Send(404, 2, "hello")
	assert.ErrorIs(t, err, ErrRoomNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendMessageContentValidation(t *testing.T) {
	db, _, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	service := NewMessageService(db, &fakePublisher{})

	_, err := service.Send(7, 2, "")
	assert.ErrorIs(t, err, ErrEmptyContent)

	_, err = service.Send(7, 2, strings.Repeat("x", chat_constants.MaxMessageLength+1))
	assert.ErrorIs(t, err, ErrContentTooLong)

	// The cap is measured in characters, matching the column size
	_, err = service.Send(7, 2, strings.Repeat("ñ", chat_constants.MaxMessageLength+1))
	assert.ErrorIs(t, err, ErrContentTooLong)
}

func TestSendMessageMultibyteContent(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	service := NewMessageService(db, &fakePublisher{})

	mock.ExpectBegin()
	expectRoomExists(mock, 7)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "chat_participants" WHERE chat_room_id = \$1 AND member_id = \$2`).
		WithArgs(7, 2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "chat_messages"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(51))
	mock.ExpectQuery(`INSERT INTO "room_events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(61))
	mock.ExpectCommit()

	// 800 characters, more than 1000 bytes; still within the character cap
	content := strings.Repeat("ñ", 800)
	message, err := service.Send(7, 2, content)
	assert.NoError(t, err)
	assert.Equal(t, content, message.Content)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessagesForRoom(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	service := NewMessageService(db, &fakePublisher{})

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT \* FROM "chat_messages" WHERE chat_room_id = \$1 ORDER BY sent_at ASC, id ASC`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "chat_room_id", "sender_id", "content", "sent_at", "is_read"}).
			AddRow(1, 7, 1, "first", base, true).
			AddRow(2, 7, 2, "second", base.Add(time.Minute), false))

	messages, err := service.MessagesForRoom(7)
	assert.NoError(t, err)
	assert.Len(t, messages, 2)
	assert.Equal(t, "first", messages[0].Content)
	assert.True(t, messages[0].IsRead)
	assert.Equal(t, "second", messages[1].Content)
	assert.False(t, messages[1].IsRead)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessagesForRoomEmpty(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	service := NewMessageService(db, &fakePublisher{})

	mock.ExpectQuery(`SELECT \* FROM "chat_messages" WHERE chat_room_id = \$1`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "chat_room_id", "sender_id", "content", "sent_at", "is_read"}))

	messages, err := service.MessagesForRoom(7)
	assert.NoError(t, err)
	assert.Empty(t, messages)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkRead(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	service := NewMessageService(db, &fakePublisher{})

	mock.ExpectQuery(`SELECT \* FROM "chat_messages" WHERE "chat_messages"\."id" = \$1`).
		WithArgs(51, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "chat_room_id", "sender_id", "content", "sent_at", "is_read"}).
			AddRow(51, 7, 1, "hello", time.Now(), false))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "chat_messages" SET "is_read"=\$1`).
		WithArgs(true, 51).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, service.MarkRead(51))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkReadAlreadyRead(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	service := NewMessageService(db, &fakePublisher{})

	mock.ExpectQuery(`SELECT \* FROM "chat_messages" WHERE "chat_messages"\."id" = \$1`).
		WithArgs(51, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "chat_room_id", "sender_id", "content", "sent_at", "is_read"}).
			AddRow(51, 7, 1, "hello", time.Now(), true))

	// No UPDATE is issued for an already-read message
	assert.NoError(t, service.MarkRead(51))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkReadNotFound(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	service := NewMessageService(db, &fakePublisher{})

	mock.ExpectQuery(`SELECT \* FROM "chat_messages" WHERE "chat_messages"\."id" = \$1`).
		WithArgs(404, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	assert.ErrorIs(t, service.MarkRead(404), ErrMessageNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnreadCount(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	service := NewMessageService(db, &fakePublisher{})

	// Own messages never count towards the badge
	mock.ExpectQuery(`SELECT count\(\*\) FROM "chat_messages" WHERE chat_room_id = \$1 AND sender_id <> \$2 AND is_read = \$3`).
		WithArgs(7, 2, false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := service.UnreadCount(7, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), count)

	assert.NoError(t, mock.ExpectationsWereMet())
}
