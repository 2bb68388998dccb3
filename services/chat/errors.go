package chat

import (
	"errors"

	"github.com/jackc/pgconn"
)

// Sentinel errors surfaced by the chat services. Controllers map these onto
// HTTP statuses; anything else is a persistence failure and becomes a 500.
var (
	ErrRoomNotFound       = errors.New("chat room not found")
	ErrMemberNotFound     = errors.New("member not found")
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrMessageNotFound    = errors.New("message not found")

	// ErrInvalidState marks a transition attempted from the wrong source
	// state, e.g. joining an invitation that was never accepted.
	ErrInvalidState = errors.New("invalid invitation state")

	// ErrDuplicateInvitation is returned when the invitee already has a
	// non-terminal invitation for the room.
	ErrDuplicateInvitation = errors.New("invitation already pending for this member")

	// ErrNotParticipant rejects sends from members outside the room.
	ErrNotParticipant = errors.New("member is not a participant of the room")

	ErrEmptyContent   = errors.New("message content is required")
	ErrContentTooLong = errors.New("message content exceeds maximum length")
)

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
