package chat_constants

import "strconv"

// Invitation statuses. An invitation moves PENDING -> ACCEPTED -> JOINED,
// or PENDING -> DECLINED (terminal).
const (
	InvitationPending  = "PENDING"
	InvitationAccepted = "ACCEPTED"
	InvitationJoined   = "JOINED"
	InvitationDeclined = "DECLINED"
)

// Participation tags returned by the room list query
const StatusJoined = "JOINED"
const StatusPending = "PENDING"

// Redis pub/sub channel shared by every fan-out worker
const RoomEventsChannel = "room-events"

// Socket.io room (topic) prefix; live subscriptions are keyed "room/{id}"
const RoomTopicPrefix = "room/"

// Event types carried on the relay
const (
	EventNewMessage   = "new_message"
	EventMemberJoined = "member_joined"
)

const DefaultInvitationMessage = "You have been invited to a chat room"

// MaxMessageLength matches the chat_messages content column size
const MaxMessageLength = 1000

// validTransitions maps each invitation status to the statuses reachable from it.
// Terminal statuses have no entry.
var validTransitions = map[string][]string{
	InvitationPending:  {InvitationAccepted, InvitationDeclined},
	InvitationAccepted: {InvitationJoined},
}

// CanTransition reports whether an invitation may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// RoomTopic returns the live-subscription topic for a chat room.
func RoomTopic(roomID uint) string {
	return RoomTopicPrefix + strconv.FormatUint(uint64(roomID), 10)
}
