package room

import (
	"slices"

	"github.com/palemoky/literature/internal/game/card"
)

const (
	// Capacity 每个房间固定 6 名玩家
	Capacity = 6
	// HandSize 发牌时每人 9 张（6 × 9 恰好覆盖 54 张全集）
	HandSize = 9
	// TeamCount 两支队伍，按加入顺序奇偶交替分配
	TeamCount = 2
)

// Status 房间生命周期状态
type Status string

const (
	StatusSetup  Status = "setup"  // 等待玩家加入
	StatusActive Status = "active" // 已发牌，对局进行中
)

// Room 房间聚合（仓储中的快照）。
// CurrentTurn 一旦设置，必须引用本房间的玩家
type Room struct {
	ID          string
	Status      Status
	Round       int
	CurrentTurn string // 当前回合玩家 ID，发牌前为空
	Scores      map[int]int
	Started     bool
}

// Clone 深拷贝（仓储实现与测试共用）
func (r *Room) Clone() *Room {
	if r == nil {
		return nil
	}
	cp := *r
	cp.Scores = make(map[int]int, len(r.Scores))
	for team, score := range r.Scores {
		cp.Scores[team] = score
	}
	return &cp
}

// Player 房间中的玩家。队伍在加入时分配后不再变化
type Player struct {
	ID     string
	RoomID string
	Name   string
	Team   int
	Hand   []card.Card
}

// HasCard 判断手牌中是否持有指定牌
func (p *Player) HasCard(c card.Card) bool {
	return slices.Contains(p.Hand, c)
}

// RemoveCard 从手牌中移除一张指定牌。
// 两张王标识符相同，只移除一张。返回是否移除成功
func (p *Player) RemoveCard(c card.Card) bool {
	i := slices.Index(p.Hand, c)
	if i < 0 {
		return false
	}
	p.Hand = slices.Delete(p.Hand, i, i+1)
	return true
}

// Clone 深拷贝
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Hand = slices.Clone(p.Hand)
	return &cp
}
