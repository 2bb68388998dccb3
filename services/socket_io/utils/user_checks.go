package socketio_utils

import (
	"Chatline/middleware"
	models "Chatline/models/postgres"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
	"gorm.io/gorm"
)

// Function that verifies a socket.io client connection using JWT authentication.
// It extracts the email from the JWT token and retrieves the associated member from the database.
func VerifyMemberConnection(client *socket.Socket, db *gorm.DB) (success bool, memberID uint, email string) {
	// Checks if we have auth data in the connection
	authData, ok := client.Handshake().Auth.(map[string]interface{})
	if !ok {
		fmt.Println("No auth data provided in handshake!")
		client.Emit("error", gin.H{"error": "Authentication failed: missing auth data"})
		return false, 0, ""
	}

	email, err := middleware.Socketio_JWT_decoder(authData)
	if err != nil {
		fmt.Println("Error decoding JWT:", err)
		client.Emit("error", gin.H{
			"error": "Authentication failed: invalid JWT. Remember to set it on the 'authorization' field and with the 'Bearer ' prefix.",
		})
		return false, 0, ""
	}

	// Fetch the member from the database using the email
	var member models.Member
	result := db.Where("email = ?", email).First(&member)
	if result.Error != nil {
		fmt.Println("Error fetching member from database:", result.Error)
		client.Emit("error", gin.H{"error": "Authentication failed: could not find member"})
		return false, 0, email
	}

	return true, member.ID, email
}

// ParseRoomID normalizes the room id argument of a socket event. JSON
// numbers arrive as float64, but clients may also send the id as a string.
func ParseRoomID(arg interface{}) (uint, error) {
	switch v := arg.(type) {
	case float64:
		if v < 0 {
			return 0, fmt.Errorf("invalid room id: %v", v)
		}
		return uint(v), nil
	case string:
		var id uint
		if _, err := fmt.Sscanf(v, "%d", &id); err != nil {
			return 0, fmt.Errorf("invalid room id: %q", v)
		}
		return id, nil
	default:
		return 0, fmt.Errorf("invalid room id type: %T", arg)
	}
}
