package room

import (
	"github.com/palemoky/literature/internal/game/card"
	"github.com/palemoky/literature/internal/protocol"
)

// cardsToWire 手牌转为线上表示
func cardsToWire(hand []card.Card) []string {
	out := make([]string, len(hand))
	for i, c := range hand {
		out[i] = string(c)
	}
	return out
}

// playersToWire 玩家列表转为线上表示（保持加入顺序）
func playersToWire(players []*Player) []protocol.PlayerInfo {
	out := make([]protocol.PlayerInfo, len(players))
	for i, p := range players {
		out[i] = protocol.PlayerInfo{ID: p.ID, Name: p.Name, Team: p.Team}
	}
	return out
}

// sendHand 向玩家推送手牌更新
func (m *Manager) sendHand(p *Player) {
	m.bc.SendToPlayer(p.ID, protocol.MustNewMessage(protocol.MsgHandUpdated, protocol.HandUpdatedPayload{
		Hand: cardsToWire(p.Hand),
	}))
}

// sendPlayerList 向全房间推送玩家列表
func (m *Manager) sendPlayerList(roomID string, players []*Player) {
	m.bc.SendToRoom(roomID, protocol.MustNewMessage(protocol.MsgUpdatePlayers, protocol.UpdatePlayersPayload{
		Players: playersToWire(players),
	}))
}

// sendTurnChanged 向全房间推送回合变更
func (m *Manager) sendTurnChanged(roomID, currentTurn string) {
	m.bc.SendToRoom(roomID, protocol.MustNewMessage(protocol.MsgTurnChanged, protocol.TurnChangedPayload{
		CurrentTurn: currentTurn,
	}))
}
