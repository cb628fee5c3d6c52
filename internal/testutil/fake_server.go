//go:build !production

package testutil

import (
	"sync"

	"github.com/palemoky/literature/internal/protocol"
	"github.com/palemoky/literature/internal/types"
)

// FakeServer 内存客户端注册表，同时充当房间广播器。
// 行为与真实服务器一致：房间广播按 GetRoom 匹配，单发按注册 ID 匹配
type FakeServer struct {
	mu      sync.RWMutex
	clients map[string]types.ClientInterface
}

func NewFakeServer() *FakeServer {
	return &FakeServer{clients: make(map[string]types.ClientInterface)}
}

func (s *FakeServer) GetOnlineCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func (s *FakeServer) GetClientByID(id string) types.ClientInterface {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.clients[id]; ok {
		return c
	}
	return nil
}

func (s *FakeServer) RegisterClient(id string, client types.ClientInterface) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[id] = client
}

func (s *FakeServer) UnregisterClient(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.clients, id)
}

func (s *FakeServer) SendToRoom(roomID string, msg *protocol.Message) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.clients {
		if c.GetRoom() == roomID {
			c.SendMessage(msg)
		}
	}
}

func (s *FakeServer) SendToPlayer(playerID string, msg *protocol.Message) {
	s.mu.RLock()
	c := s.clients[playerID]
	s.mu.RUnlock()
	if c != nil {
		c.SendMessage(msg)
	}
}
