package room

import (
	"context"

	"github.com/palemoky/literature/internal/protocol"
)

// Repository 房间与玩家的持久化契约。
// 实现必须对不存在的实体返回 apperrors.ErrRoomNotFound / ErrPlayerNotFound，
// 其余失败返回底层存储错误。写入本身不要求事务性，
// 多步写入的一致性由 Manager 的房间锁保证
type Repository interface {
	GetRoom(ctx context.Context, id string) (*Room, error)
	PutRoom(ctx context.Context, r *Room) error
	DeleteRoom(ctx context.Context, id string) error

	GetPlayer(ctx context.Context, id string) (*Player, error)
	PutPlayer(ctx context.Context, p *Player) error
	// CreatePlayer 分配玩家 ID 并登记到房间。ListPlayers 按登记顺序返回
	CreatePlayer(ctx context.Context, roomID, name string, team int) (*Player, error)
	ListPlayers(ctx context.Context, roomID string) ([]*Player, error)
}

// Broadcaster 事件投递契约。fire-and-forget：
// 投递不阻塞、不返回错误，订阅者卡死不能拖住房间锁
type Broadcaster interface {
	SendToRoom(roomID string, msg *protocol.Message)
	SendToPlayer(playerID string, msg *protocol.Message)
}
