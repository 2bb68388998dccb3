package socketio_types

import (
	"sync"

	"github.com/zishang520/socket.io/v2/socket"
)

// SocketServer is a struct that contains the socket.io server and a map of
// socket connections. It is used to handle socket.io connections and to fan
// events out to room topics.
type SocketServer struct {
	Sio_server *socket.Server
	// Map to track member id -> socket connections
	MemberConnections map[uint]*socket.Socket
	mutex             sync.RWMutex
}

func NewSocketServer() *SocketServer {
	return &SocketServer{
		MemberConnections: make(map[uint]*socket.Socket),
	}
}

// Add methods to manage connections
func (s *SocketServer) AddConnection(memberID uint, socket *socket.Socket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.MemberConnections[memberID] = socket
}

func (s *SocketServer) RemoveConnection(memberID uint) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.MemberConnections, memberID)
}

func (s *SocketServer) GetConnection(memberID uint) (*socket.Socket, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	conn, exists := s.MemberConnections[memberID]
	return conn, exists
}

// EmitToRoom broadcasts an event to every live connection subscribed to the
// topic. Delivery per connection is handled by socket.io, so a slow client
// never blocks the rest of the room.
func (s *SocketServer) EmitToRoom(topic string, event string, data interface{}) {
	s.Sio_server.To(socket.Room(topic)).Emit(event, data)
}
