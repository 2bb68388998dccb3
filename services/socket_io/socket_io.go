package socket_io

import (
	"Chatline/services/chat"
	"Chatline/services/socket_io/handlers"
	"time"

	socketio_types "Chatline/services/socket_io/types"
	socketio_utils "Chatline/services/socket_io/utils"
	"fmt"

	"gorm.io/gorm"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type MySocketServer socketio_types.SocketServer

// Start wires the socket.io server into the gin router. Each authenticated
// connection may subscribe to room topics and send messages; delivery of
// accepted messages to the topics is done by the fan-out worker, not here.
func (sio *MySocketServer) Start(router *gin.Engine, db *gorm.DB, messageService *chat.MessageService) {
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// NOTE: higher ping interval and timeout to 1) reduce network load and 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	sio.MemberConnections = make(map[uint]*socket.Socket)

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)

		// Check if the client is authenticated
		success, memberID, email := socketio_utils.VerifyMemberConnection(client, db)
		if !success {
			return
		}

		// Add connection to map
		(*socketio_types.SocketServer)(sio).AddConnection(memberID, client)

		fmt.Println("Member connected:", memberID, email)

		// Subscribe the connection to a chat room topic
		client.On("join_room", handlers.HandleJoinRoom(client, db, memberID))

		// Drop a single room subscription
		client.On("leave_room", handlers.HandleLeaveRoom(client, memberID))

		// Persist a message and publish it on the relay
		client.On("chat_message", handlers.HandleChatMessage(client, messageService, memberID))

		// NOTE: will remove sio connection from map
		client.On("disconnecting", handlers.HandleDisconnecting(memberID, (*socketio_types.SocketServer)(sio)))
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	fmt.Println("Socket server started")
}

// Close shuts the socket server down, dropping every live connection.
func (sio *MySocketServer) Close() {
	if sio.Sio_server != nil {
		sio.Sio_server.Close(nil)
	}
}
