package room

import (
	"context"

	"github.com/palemoky/literature/internal/apperrors"
	"github.com/palemoky/literature/internal/game/card"
)

// 只读查询。不取房间锁：单次仓储读取本身就是一致快照

// GetHand 查询玩家手牌
func (m *Manager) GetHand(ctx context.Context, playerID string) ([]card.Card, error) {
	p, err := m.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return p.Hand, nil
}

// GetRoomPlayers 查询房间玩家（按加入顺序）
func (m *Manager) GetRoomPlayers(ctx context.Context, roomID string) ([]*Player, error) {
	if _, err := m.repo.GetRoom(ctx, roomID); err != nil {
		return nil, err
	}
	return m.repo.ListPlayers(ctx, roomID)
}

// GetPlayerTeam 查询玩家队伍
func (m *Manager) GetPlayerTeam(ctx context.Context, playerID string) (int, error) {
	p, err := m.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return 0, err
	}
	return p.Team, nil
}

// TurnState 回合查询结果
type TurnState struct {
	CurrentTurn string
	Started     bool
}

// GetCurrentTurn 查询房间当前回合与开局标记
func (m *Manager) GetCurrentTurn(ctx context.Context, roomID string) (*TurnState, error) {
	r, err := m.repo.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	return &TurnState{CurrentTurn: r.CurrentTurn, Started: r.Started}, nil
}

// AnnouncePlayers 向全房间重播玩家列表（连接建立与 get_players 请求使用）
func (m *Manager) AnnouncePlayers(ctx context.Context, roomID string) error {
	players, err := m.GetRoomPlayers(ctx, roomID)
	if err != nil {
		return err
	}
	m.sendPlayerList(roomID, players)
	return nil
}

// ResendHand 向玩家本人重发手牌。
// 玩家不存在或尚未发牌时返回 ErrHandUnavailable
func (m *Manager) ResendHand(ctx context.Context, playerID string) error {
	p, err := m.repo.GetPlayer(ctx, playerID)
	if err != nil || len(p.Hand) == 0 {
		return apperrors.ErrHandUnavailable
	}
	m.sendHand(p)
	return nil
}
