package main

import (
	"Chatline/config"
	_ "Chatline/config/swagger"
	"Chatline/middleware"
	"Chatline/routes"
	"Chatline/services/chat"
	"Chatline/services/redis"
	"Chatline/services/socket_io"
	socketio_types "Chatline/services/socket_io/types"
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// @title Chatline API
// @version 1.0
// @description Gin-Gonic server for the "Chatline" chat API
// @BasePath /
func main() {
	godotenv.Load()
	log.Println("Setting up server...")

	if os.Getenv("PROD") == "true" {
		gin.SetMode(gin.ReleaseMode)
	}

	gormDB, err := config.ConnectGORM()
	if err != nil {
		log.Fatalf("Error connecting to PostgreSQL: %v", err)
	}
	log.Println("GORM Connected")

	// Only migrate in development or during deployment
	if os.Getenv("MIGRATE_POSTGRES") == "true" {
		log.Println("Migrating PostgreSQL database...")
		if err := config.MigrateDatabase(gormDB); err != nil {
			log.Printf("Warning: Database migration failed: %v", err)
			// Continue execution even if migration fails
		} else {
			log.Println("Database migrated successfully")
		}
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("Error reading GORM PostgreSQL instance: %v", err)
	}
	defer sqlDB.Close()

	redisClient, err := config.Connect_redis()
	if err != nil {
		log.Fatalf("Error connecting to Redis: %v", err)
	}
	log.Println("Connection to Redis successful")
	defer redis.CloseRedis(redisClient)

	r := gin.Default()

	middleware.SetUpMiddleware(r)

	// One message service shared by the REST and socket send paths
	messageService := chat.NewMessageService(gormDB, redisClient)

	routes.SetupRoutes(r, gormDB, redisClient, messageService)

	// Live delivery layer: socket server plus the fan-out worker that moves
	// relay events onto room topics
	sio := (*socket_io.MySocketServer)(socketio_types.NewSocketServer())
	sio.Start(r, gormDB, messageService)

	fanoutCtx, cancelFanout := context.WithCancel(context.Background())
	socket_io.StartFanout(fanoutCtx, redisClient, (*socketio_types.SocketServer)(sio))

	SignalC := make(chan os.Signal, 1)
	signal.Notify(SignalC, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		for s := range SignalC {
			switch s {
			case syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT:
				cancelFanout()
				sio.Close()
				redis.CloseRedis(redisClient)
				os.Exit(0)
			}
		}
	}()

	// Configure port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
