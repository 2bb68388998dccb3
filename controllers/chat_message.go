package controllers

import (
	"Chatline/services/chat"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary Send a message
// @Description Persists the message and publishes it on the relay; relay failures do not fail the request
// @Tags messages
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param request body object{chat_room_id=integer,sender_id=integer,content=string} true "Message data"
// @Success 200 {object} object{id=integer,sent_at=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/chat/send [post]
// @Security ApiKeyAuth
func SendMessage(messageService *chat.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request struct {
			ChatRoomID uint   `json:"chat_room_id"`
			SenderID   uint   `json:"sender_id"`
			Content    string `json:"content"`
		}
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		if request.ChatRoomID == 0 || request.SenderID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "chat_room_id and sender_id are required"})
			return
		}

		message, err := messageService.Send(request.ChatRoomID, request.SenderID, request.Content)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": message.ID, "sent_at": message.SentAt})
	}
}

// @Summary List room messages
// @Description Full message history of the room, oldest first
// @Tags messages
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param chatRoomId path integer true "Chat room id"
// @Success 200 {array} object{id=integer,content=string,chat_room_id=integer,sender_id=integer,sent_at=string,is_read=boolean}
// @Failure 400 {object} object{error=string}
// @Router /api/chat/messages/{chatRoomId} [get]
// @Security ApiKeyAuth
func GetChatMessages(messageService *chat.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomID, err := strconv.ParseUint(c.Param("chatRoomId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chat room id"})
			return
		}

		messages, err := messageService.MessagesForRoom(uint(roomID))
		if err != nil {
			abortWithServiceError(c, err)
			return
		}

		response := make([]gin.H, len(messages))
		for i, message := range messages {
			response[i] = gin.H{
				"id":           message.ID,
				"content":      message.Content,
				"chat_room_id": message.ChatRoomID,
				"sender_id":    message.SenderID,
				"sent_at":      message.SentAt,
				"is_read":      message.IsRead,
			}
		}

		c.JSON(http.StatusOK, response)
	}
}

// @Summary Mark a message as read
// @Description Flips the read flag to true; marking an already-read message is a no-op
// @Tags messages
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param messageId path integer true "Message id"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /api/chat/messages/read/{messageId} [post]
// @Security ApiKeyAuth
func MarkMessageRead(messageService *chat.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		messageID, err := strconv.ParseUint(c.Param("messageId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message id"})
			return
		}

		if err := messageService.MarkRead(uint(messageID)); err != nil {
			abortWithServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Message marked as read"})
	}
}

// @Summary Unread message count
// @Description Unread messages in the room not sent by the member, for the UI badge
// @Tags messages
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param chatRoomId path integer true "Chat room id"
// @Param memberId path integer true "Member id"
// @Success 200 {object} object{count=integer}
// @Failure 400 {object} object{error=string}
// @Router /api/chat/messages/unread/{chatRoomId}/{memberId} [get]
// @Security ApiKeyAuth
func GetUnreadMessageCount(messageService *chat.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomID, err := strconv.ParseUint(c.Param("chatRoomId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chat room id"})
			return
		}
		memberID, err := strconv.ParseUint(c.Param("memberId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member id"})
			return
		}

		count, err := messageService.UnreadCount(uint(roomID), uint(memberID))
		if err != nil {
			abortWithServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"count": count})
	}
}
