package handlers

import (
	chat_constants "Chatline/constants/chat"
	socketio_types "Chatline/services/socket_io/types"
	socketio_utils "Chatline/services/socket_io/utils"
	"Chatline/utils"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
	"gorm.io/gorm"
)

// HandleJoinRoom subscribes the connection to a room topic. Only current
// participants may subscribe; an invited-but-not-joined member is rejected
// and sees no room traffic.
func HandleJoinRoom(client *socket.Socket, db *gorm.DB, memberID uint) func(args ...interface{}) {
	return func(args ...interface{}) {
		if len(args) < 1 {
			client.Emit("error", gin.H{"error": "Missing room id"})
			return
		}

		roomID, err := socketio_utils.ParseRoomID(args[0])
		if err != nil {
			client.Emit("error", gin.H{"error": "Invalid room id"})
			return
		}

		if _, err := utils.CheckRoomExists(db, roomID); err != nil {
			client.Emit("error", gin.H{"error": "Chat room not found"})
			return
		}

		isParticipant, err := utils.IsParticipant(db, roomID, memberID)
		if err != nil {
			log.Printf("[JOIN-ERROR] Database error for member %d, room %d: %v", memberID, roomID, err)
			client.Emit("error", gin.H{"error": "Database error"})
			return
		}
		if !isParticipant {
			client.Emit("error", gin.H{"error": "You must join the room before subscribing to it"})
			return
		}

		topic := chat_constants.RoomTopic(roomID)
		client.Join(socket.Room(topic))
		log.Printf("[JOIN] Member %d subscribed to %s", memberID, topic)

		client.Emit("joined_room", gin.H{"room_id": roomID})
	}
}

// HandleLeaveRoom unsubscribes the connection from a room topic. It only
// tears down this connection's subscription; persistence and other
// subscribers are unaffected.
func HandleLeaveRoom(client *socket.Socket, memberID uint) func(args ...interface{}) {
	return func(args ...interface{}) {
		if len(args) < 1 {
			client.Emit("error", gin.H{"error": "Missing room id"})
			return
		}

		roomID, err := socketio_utils.ParseRoomID(args[0])
		if err != nil {
			client.Emit("error", gin.H{"error": "Invalid room id"})
			return
		}

		client.Leave(socket.Room(chat_constants.RoomTopic(roomID)))
		log.Printf("[LEAVE] Member %d left room %d", memberID, roomID)
	}
}

// HandleDisconnecting removes the connection from the server map. Socket.io
// drops the room subscriptions itself.
func HandleDisconnecting(memberID uint, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		log.Printf("[DISCONNECT] Member %d disconnecting", memberID)
		sio.RemoveConnection(memberID)
	}
}
