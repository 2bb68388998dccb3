package controllers

import (
	"Chatline/services/chat"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary Create a chat room
// @Description Creates a room, joins the owner and issues a PENDING invitation to the invitee
// @Tags chat
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param request body object{name=string,owner_id=integer,invitee_id=integer} true "Room data"
// @Success 200 {object} object{id=integer,name=string,created_at=string,owner_id=integer}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/chat/rooms/create [post]
// @Security ApiKeyAuth
func CreateChatRoom(roomService *chat.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request struct {
			Name      string `json:"name"`
			OwnerID   uint   `json:"owner_id"`
			InviteeID uint   `json:"invitee_id"`
		}
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		if request.Name == "" || request.OwnerID == 0 || request.InviteeID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, owner_id and invitee_id are required"})
			return
		}

		room, err := roomService.CreateRoom(request.Name, request.OwnerID, request.InviteeID)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":         room.ID,
			"name":       room.Name,
			"created_at": room.CreatedAt,
			"owner_id":   room.OwnerID,
		})
	}
}

// @Summary List rooms for a member
// @Description Rooms the member owns (JOINED) unioned with rooms the member is invited to (PENDING)
// @Tags chat
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param memberId path integer true "Member id"
// @Success 200 {array} chat.RoomSummary
// @Failure 400 {object} object{error=string}
// @Router /api/chat/rooms/{memberId} [get]
// @Security ApiKeyAuth
func GetMemberChatRooms(roomService *chat.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		memberID, err := strconv.ParseUint(c.Param("memberId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member id"})
			return
		}

		rooms, err := roomService.RoomsForMember(uint(memberID))
		if err != nil {
			abortWithServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, rooms)
	}
}
