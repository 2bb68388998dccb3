package handlers

import (
	"Chatline/services/chat"
	socketio_utils "Chatline/services/socket_io/utils"
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// HandleChatMessage is the message-oriented entry point for sends: the
// client emits ("chat_message", roomID, content). Persistence and relay
// publish both go through the message service, exactly like the REST path.
func HandleChatMessage(client *socket.Socket, messageService *chat.MessageService, memberID uint) func(args ...interface{}) {
	return func(args ...interface{}) {
		if len(args) < 2 {
			client.Emit("error", gin.H{"error": "Expected room id and message content"})
			return
		}

		roomID, err := socketio_utils.ParseRoomID(args[0])
		if err != nil {
			client.Emit("error", gin.H{"error": "Invalid room id"})
			return
		}

		content, ok := args[1].(string)
		if !ok {
			client.Emit("error", gin.H{"error": "Invalid message format"})
			return
		}

		message, err := messageService.Send(roomID, memberID, content)
		if err != nil {
			switch {
			case errors.Is(err, chat.ErrRoomNotFound):
				client.Emit("error", gin.H{"error": "Chat room not found"})
			case errors.Is(err, chat.ErrNotParticipant):
				client.Emit("error", gin.H{"error": "You must join the room before sending messages"})
			case errors.Is(err, chat.ErrEmptyContent), errors.Is(err, chat.ErrContentTooLong):
				client.Emit("error", gin.H{"error": err.Error()})
			default:
				log.Printf("[MSG-ERROR] Member %d, room %d: %v", memberID, roomID, err)
				client.Emit("error", gin.H{"error": "Error sending message"})
			}
			return
		}

		// Delivery to the room happens through the fan-out worker; this ack
		// only tells the sender the message is durable.
		client.Emit("message_sent", gin.H{
			"message_id": message.ID,
			"room_id":    message.ChatRoomID,
			"sent_at":    message.SentAt,
		})
	}
}
