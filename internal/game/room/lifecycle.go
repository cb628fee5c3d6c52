package room

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/palemoky/literature/internal/apperrors"
	"github.com/palemoky/literature/internal/game/card"
	"github.com/palemoky/literature/internal/protocol"
)

// CreateRoom 创建房间并把创建者登记为第一名玩家（0 队）。
// 创建者登记失败时回收房间，不留下孤儿房间
func (m *Manager) CreateRoom(ctx context.Context, creatorName string) (roomID, playerID string, err error) {
	r := &Room{
		ID:     uuid.New().String(),
		Status: StatusSetup,
		Scores: make(map[int]int),
	}

	if err := m.repo.PutRoom(ctx, r); err != nil {
		return "", "", fmt.Errorf("create room: %w", err)
	}

	creator, err := m.repo.CreatePlayer(ctx, r.ID, creatorName, 0)
	if err != nil {
		// 补偿：房间没有创建者就没有存在的意义
		_ = m.repo.DeleteRoom(ctx, r.ID)
		return "", "", fmt.Errorf("create room: admit creator: %w", err)
	}

	m.logger.Info("房间已创建", "room", r.ID, "creator", creatorName)

	return r.ID, creator.ID, nil
}

// Snapshot 加入房间后返回给调用方的房间快照
type Snapshot struct {
	Room    *Room
	Players []*Player // 按加入顺序
}

// JoinRoom 玩家加入房间。
// 队伍按到达奇偶交替分配，不做均衡。
// 凑满 6 人时原子地发牌、随机指定首个回合并切到 active；
// 未满员时只广播玩家列表，并把当前状态快照单发给新玩家
func (m *Manager) JoinRoom(ctx context.Context, roomID, playerName string) (string, *Snapshot, error) {
	unlock := m.lockRoom(roomID)
	defer unlock()

	r, err := m.repo.GetRoom(ctx, roomID)
	if err != nil {
		return "", nil, err
	}

	players, err := m.repo.ListPlayers(ctx, roomID)
	if err != nil {
		return "", nil, fmt.Errorf("join room: list players: %w", err)
	}
	if len(players) >= Capacity {
		return "", nil, apperrors.ErrRoomFull
	}

	joiner, err := m.repo.CreatePlayer(ctx, roomID, playerName, len(players)%TeamCount)
	if err != nil {
		return "", nil, fmt.Errorf("join room: %w", err)
	}
	players = append(players, joiner)

	m.logger.Info("玩家加入房间", "room", roomID, "player", playerName, "team", joiner.Team, "count", len(players))

	if len(players) == Capacity {
		if err := m.startGame(ctx, r, players); err != nil {
			return "", nil, err
		}
	} else {
		m.sendPlayerList(roomID, players)
		m.bc.SendToPlayer(joiner.ID, protocol.MustNewMessage(protocol.MsgGameState, protocol.GameStatePayload{
			Started:     r.Started,
			CurrentTurn: r.CurrentTurn,
		}))
	}

	return joiner.ID, &Snapshot{Room: r, Players: players}, nil
}

// startGame 满员后的开局：发牌、随机首回合、切换状态。
// 所有写入成功之后才广播，避免失败后客户端看到半成品状态
func (m *Manager) startGame(ctx context.Context, r *Room, players []*Player) error {
	hands, err := card.Deal(m.rng, Capacity, HandSize)
	if err != nil {
		return err
	}

	// 发牌顺序 = 加入顺序
	for i, p := range players {
		p.Hand = hands[i]
		if err := m.repo.PutPlayer(ctx, p); err != nil {
			return fmt.Errorf("start game: persist hand of %s: %w", p.ID, err)
		}
	}

	r.Status = StatusActive
	r.Round = 1
	r.Started = true
	r.CurrentTurn = players[m.rng.IntN(len(players))].ID
	if err := m.repo.PutRoom(ctx, r); err != nil {
		return fmt.Errorf("start game: persist room: %w", err)
	}

	for _, p := range players {
		m.sendHand(p)
	}
	m.sendPlayerList(r.ID, players)
	m.bc.SendToRoom(r.ID, protocol.MustNewMessage(protocol.MsgGameStarted, protocol.GameStartedPayload{
		CurrentTurn: r.CurrentTurn,
	}))

	m.logger.Info("游戏开始", "room", r.ID, "first_turn", r.CurrentTurn)

	return nil
}
