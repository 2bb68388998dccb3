package controllers

import (
	"Chatline/services/chat"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func invitationIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("invitationId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invitation id"})
		return 0, false
	}
	return uint(id), true
}

// @Summary Invite a member to a room
// @Description Creates a PENDING invitation for a member that is not yet in the room
// @Tags invitations
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param request body object{room_id=integer,inviter_id=integer,invitee_id=integer,message=string} true "Invitation data"
// @Success 200 {object} object{id=integer,status=string}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/chat/invitation/invite [post]
// @Security ApiKeyAuth
func InviteToRoom(invitationService *chat.InvitationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request struct {
			RoomID    uint   `json:"room_id"`
			InviterID uint   `json:"inviter_id"`
			InviteeID uint   `json:"invitee_id"`
			Message   string `json:"message"`
		}
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		if request.RoomID == 0 || request.InviterID == 0 || request.InviteeID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "room_id, inviter_id and invitee_id are required"})
			return
		}

		invitation, err := invitationService.Invite(request.RoomID, request.InviterID, request.InviteeID, request.Message)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": invitation.ID, "status": invitation.Status})
	}
}

// @Summary Accept an invitation
// @Description Moves a PENDING invitation to ACCEPTED and registers the invitee as a participant
// @Tags invitations
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param invitationId path integer true "Invitation id"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/chat/invitation/accept/{invitationId} [post]
// @Security ApiKeyAuth
func AcceptInvitation(invitationService *chat.InvitationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := invitationIDParam(c)
		if !ok {
			return
		}

		if err := invitationService.Accept(id); err != nil {
			abortWithServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Invitation accepted"})
	}
}

// @Summary Decline an invitation
// @Description Moves a PENDING invitation to DECLINED
// @Tags invitations
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param invitationId path integer true "Invitation id"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/chat/invitation/decline/{invitationId} [post]
// @Security ApiKeyAuth
func DeclineInvitation(invitationService *chat.InvitationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := invitationIDParam(c)
		if !ok {
			return
		}

		if err := invitationService.Decline(id); err != nil {
			abortWithServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Invitation declined"})
	}
}

// @Summary Join a chat room
// @Description Moves an ACCEPTED invitation to JOINED and notifies the room topic
// @Tags invitations
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param invitationId path integer true "Invitation id"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/chat/invitation/join/{invitationId} [post]
// @Security ApiKeyAuth
func JoinInvitation(invitationService *chat.InvitationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := invitationIDParam(c)
		if !ok {
			return
		}

		if err := invitationService.Join(id); err != nil {
			abortWithServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Joined chat room"})
	}
}

// @Summary Pending invitation count
// @Description Number of PENDING invitations the member holds, for the UI badge
// @Tags invitations
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param memberId path integer true "Member id"
// @Success 200 {object} object{count=integer}
// @Failure 400 {object} object{error=string}
// @Router /api/chat/invitation/count/{memberId} [get]
// @Security ApiKeyAuth
func GetPendingInvitationCount(invitationService *chat.InvitationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		memberID, err := strconv.ParseUint(c.Param("memberId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member id"})
			return
		}

		count, err := invitationService.PendingCount(uint(memberID))
		if err != nil {
			abortWithServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"count": count})
	}
}
