package controllers

import (
	"Chatline/services/chat"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// abortWithServiceError translates chat service errors into HTTP responses.
// Anything outside the taxonomy is a persistence failure and becomes a 500.
func abortWithServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrRoomNotFound),
		errors.Is(err, chat.ErrMemberNotFound),
		errors.Is(err, chat.ErrInvitationNotFound),
		errors.Is(err, chat.ErrMessageNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, chat.ErrInvalidState),
		errors.Is(err, chat.ErrDuplicateInvitation):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, chat.ErrNotParticipant):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, chat.ErrEmptyContent),
		errors.Is(err, chat.ErrContentTooLong):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
