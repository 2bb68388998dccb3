package routes

import (
	"Chatline/services/chat"
	"Chatline/services/redis"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	sqlDB, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Error creating sqlmock: %v", err)
	}
	defer sqlDB.Close()

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("Error opening GORM over sqlmock: %v", err)
	}

	// The client connects lazily, so no redis server is needed here
	redisClient := redis.NewRedisClient("localhost:6379", 0)
	messageService := chat.NewMessageService(db, redisClient)

	router := gin.New()
	SetupRoutes(router, db, redisClient, messageService)

	registered := make(map[string]bool)
	for _, route := range router.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"GET /ping",
		"GET /users/:id",
		"POST /login",
		"POST /signup",
		"POST /api/chat/rooms/create",
		"GET /api/chat/rooms/:memberId",
		"POST /api/chat/invitation/invite",
		"POST /api/chat/invitation/accept/:invitationId",
		"POST /api/chat/invitation/decline/:invitationId",
		"POST /api/chat/invitation/join/:invitationId",
		"GET /api/chat/invitation/count/:memberId",
		"POST /api/chat/send",
		"GET /api/chat/messages/:chatRoomId",
		"POST /api/chat/messages/read/:messageId",
		"GET /api/chat/messages/unread/:chatRoomId/:memberId",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "route %s not registered", route)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Chat routes sit behind the auth middleware
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/api/chat/send", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
