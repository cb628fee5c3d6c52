package server

import (
	"github.com/palemoky/literature/internal/protocol"
	"github.com/palemoky/literature/internal/types"
)

// GetOnlineCount 获取在线人数（按需调用）
func (s *Server) GetOnlineCount() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return len(s.clients)
}

// SendToRoom 广播消息给房间内所有在线玩家
func (s *Server) SendToRoom(roomID string, msg *protocol.Message) {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()

	for _, client := range s.clients {
		if client.GetRoom() == roomID {
			client.SendMessage(msg)
		}
	}
}

// SendToPlayer 发送消息给指定玩家，不在线则静默丢弃
func (s *Server) SendToPlayer(playerID string, msg *protocol.Message) {
	s.clientsMu.RLock()
	client := s.clients[playerID]
	s.clientsMu.RUnlock()

	if client != nil {
		client.SendMessage(msg)
	}
}

// registerClient 注册客户端
func (s *Server) registerClient(client *Client) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	s.clients[client.GetID()] = client
}

// unregisterClient 注销客户端
func (s *Server) unregisterClient(client *Client) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()

	if _, ok := s.clients[client.GetID()]; ok {
		delete(s.clients, client.GetID())
		s.logger.Info("客户端已断开", "player_id", client.GetID())
	}
}

// Interface implementations for types.ServerInterface

func (s *Server) GetClientByID(id string) types.ClientInterface {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	if c, ok := s.clients[id]; ok {
		return c
	}
	return nil
}

func (s *Server) RegisterClient(id string, client types.ClientInterface) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	if c, ok := client.(*Client); ok {
		s.clients[id] = c
	}
}

func (s *Server) UnregisterClient(id string) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	delete(s.clients, id)
}
