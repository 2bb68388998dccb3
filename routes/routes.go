package routes

import (
	"Chatline/controllers"
	"Chatline/middleware"
	"Chatline/services/chat"
	"Chatline/services/members"
	"Chatline/services/redis"
	utils "Chatline/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes. The message service is built by the
// caller because the socket layer sends through the same instance.
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisClient *redis.RedisClient, messageService *chat.MessageService) {
	// Services; the redis client is the publish relay for the invitation
	// join notification
	directory := members.NewDirectory(db)
	roomService := chat.NewRoomService(db)
	invitationService := chat.NewInvitationService(db, redisClient)

	// utils global
	router.Use(utils.ErrorHandler())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes group
	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	api.GET("/users/:id", controllers.GetMemberPublicInfo(directory))

	api.POST("/login", controllers.Login(directory))

	api.POST("/signup", controllers.SignUp(db, directory))

	// Routes that require authentication
	authenticated := api.Group("/api/chat")
	authenticated.Use(middleware.AuthRequired)
	{
		authenticated.POST("/rooms/create", controllers.CreateChatRoom(roomService))

		authenticated.GET("/rooms/:memberId", controllers.GetMemberChatRooms(roomService))

		authenticated.POST("/invitation/invite", controllers.InviteToRoom(invitationService))

		authenticated.POST("/invitation/accept/:invitationId", controllers.AcceptInvitation(invitationService))

		authenticated.POST("/invitation/decline/:invitationId", controllers.DeclineInvitation(invitationService))

		authenticated.POST("/invitation/join/:invitationId", controllers.JoinInvitation(invitationService))

		authenticated.GET("/invitation/count/:memberId", controllers.GetPendingInvitationCount(invitationService))

		authenticated.POST("/send", controllers.SendMessage(messageService))

		authenticated.GET("/messages/:chatRoomId", controllers.GetChatMessages(messageService))

		authenticated.POST("/messages/read/:messageId", controllers.MarkMessageRead(messageService))

		authenticated.GET("/messages/unread/:chatRoomId/:memberId", controllers.GetUnreadMessageCount(messageService))
	}
}
