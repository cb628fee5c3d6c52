package room

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/palemoky/literature/internal/apperrors"
)

// MemoryRepository 内存版仓储，供单元测试与本地演示使用。
// 与真实存储一致：读写都经过深拷贝，调用方拿不到内部引用
type MemoryRepository struct {
	mu      sync.Mutex
	rooms   map[string]*Room
	players map[string]*Player
	order   map[string][]string // roomID -> 按加入顺序的玩家 ID
}

// NewMemoryRepository 创建内存仓储
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		rooms:   make(map[string]*Room),
		players: make(map[string]*Player),
		order:   make(map[string][]string),
	}
}

func (s *MemoryRepository) GetRoom(_ context.Context, id string) (*Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[id]
	if !ok {
		return nil, apperrors.ErrRoomNotFound
	}
	return r.Clone(), nil
}

func (s *MemoryRepository) PutRoom(_ context.Context, r *Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[r.ID] = r.Clone()
	return nil
}

func (s *MemoryRepository) DeleteRoom(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, id)
	delete(s.order, id)
	return nil
}

func (s *MemoryRepository) GetPlayer(_ context.Context, id string) (*Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[id]
	if !ok {
		return nil, apperrors.ErrPlayerNotFound
	}
	return p.Clone(), nil
}

func (s *MemoryRepository) PutPlayer(_ context.Context, p *Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[p.ID] = p.Clone()
	return nil
}

func (s *MemoryRepository) CreatePlayer(_ context.Context, roomID, name string, team int) (*Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := &Player{
		ID:     uuid.New().String(),
		RoomID: roomID,
		Name:   name,
		Team:   team,
	}
	s.players[p.ID] = p
	s.order[roomID] = append(s.order[roomID], p.ID)
	return p.Clone(), nil
}

func (s *MemoryRepository) ListPlayers(_ context.Context, roomID string) ([]*Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.order[roomID]
	players := make([]*Player, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.players[id]; ok {
			players = append(players, p.Clone())
		}
	}
	return players, nil
}
