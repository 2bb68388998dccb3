package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func jwtKey() []byte {
	return []byte(os.Getenv("KEY"))
}

// GenerateToken issues the HS256 bearer token returned by the login
// endpoint. The chat core trusts this identity, it only re-checks room
// membership before a send.
func GenerateToken(email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"Email": email,
	})
	return token.SignedString(jwtKey())
}

// JWT_decoder extracts and validates the bearer token from the request and
// returns the email it carries.
func JWT_decoder(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", errors.New("missing Authorization header")
	}

	tokenString := strings.TrimPrefix(header, "Bearer ")
	if tokenString == header {
		return "", errors.New("Authorization header must use the Bearer scheme")
	}

	return decodeEmail(tokenString)
}

// Socketio_JWT_decoder validates the token a socket.io client presents in
// its handshake auth data and returns the email it carries.
func Socketio_JWT_decoder(authData map[string]interface{}) (string, error) {
	raw, exists := authData["authorization"].(string)
	if !exists {
		return "", errors.New("missing authorization field in handshake auth data")
	}

	tokenString := strings.TrimPrefix(raw, "Bearer ")
	return decodeEmail(tokenString)
}

func decodeEmail(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return jwtKey(), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}

	email, ok := claims["Email"].(string)
	if !ok || email == "" {
		return "", errors.New("token carries no email claim")
	}
	return email, nil
}

// AuthRequired is a simple middleware to check the bearer token.
func AuthRequired(c *gin.Context) {
	email, err := JWT_decoder(c)
	if err != nil {
		// Abort the request with the appropriate error code
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.Set("Email", email)
	// Continue down the chain to handler etc
	c.Next()
}
