package chat_constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	// The only legal sequences are prefixes of PENDING -> ACCEPTED -> JOINED
	// or PENDING -> DECLINED.
	assert.True(t, CanTransition(InvitationPending, InvitationAccepted))
	assert.True(t, CanTransition(InvitationPending, InvitationDeclined))
	assert.True(t, CanTransition(InvitationAccepted, InvitationJoined))

	// Joining before accepting is not allowed
	assert.False(t, CanTransition(InvitationPending, InvitationJoined))

	// Terminal states go nowhere
	assert.False(t, CanTransition(InvitationDeclined, InvitationAccepted))
	assert.False(t, CanTransition(InvitationDeclined, InvitationJoined))
	assert.False(t, CanTransition(InvitationJoined, InvitationAccepted))
	assert.False(t, CanTransition(InvitationJoined, InvitationPending))

	// No state loops back
	assert.False(t, CanTransition(InvitationPending, InvitationPending))
	assert.False(t, CanTransition(InvitationAccepted, InvitationAccepted))

	// Unknown statuses never transition
	assert.False(t, CanTransition("REVOKED", InvitationAccepted))
}

func TestRoomTopic(t *testing.T) {
	assert.Equal(t, "room/42", RoomTopic(42))
	assert.Equal(t, "room/0", RoomTopic(0))
}
