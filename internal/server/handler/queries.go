package handler

import (
	"context"

	"github.com/palemoky/literature/internal/protocol"
	"github.com/palemoky/literature/internal/types"
)

// handleGetPlayers 向全房间重播玩家列表
func (h *Handler) handleGetPlayers(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.RoomRefPayload](msg)
	if err != nil {
		client.SendMessage(protocol.InvalidMessage())
		return
	}

	if err := h.rooms.AnnouncePlayers(context.Background(), payload.RoomID); err != nil {
		h.sendError(client, err)
	}
}

// handleGetHand 查询玩家手牌，结果只回给发起方
func (h *Handler) handleGetHand(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.PlayerRefPayload](msg)
	if err != nil {
		client.SendMessage(protocol.InvalidMessage())
		return
	}

	hand, err := h.rooms.GetHand(context.Background(), payload.PlayerID)
	if err != nil {
		h.sendError(client, err)
		return
	}

	cards := make([]string, len(hand))
	for i, c := range hand {
		cards[i] = string(c)
	}
	client.SendMessage(protocol.MustNewMessage(protocol.MsgHandUpdated, protocol.HandUpdatedPayload{
		Hand: cards,
	}))
}

// handleGetRoomPlayers 查询房间玩家列表，结果只回给发起方
func (h *Handler) handleGetRoomPlayers(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.RoomRefPayload](msg)
	if err != nil {
		client.SendMessage(protocol.InvalidMessage())
		return
	}

	players, err := h.rooms.GetRoomPlayers(context.Background(), payload.RoomID)
	if err != nil {
		h.sendError(client, err)
		return
	}

	infos := make([]protocol.PlayerInfo, len(players))
	for i, p := range players {
		infos[i] = protocol.PlayerInfo{ID: p.ID, Name: p.Name, Team: p.Team}
	}
	client.SendMessage(protocol.MustNewMessage(protocol.MsgUpdatePlayers, protocol.UpdatePlayersPayload{
		Players: infos,
	}))
}

// handleGetPlayerTeam 查询玩家队伍
func (h *Handler) handleGetPlayerTeam(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.PlayerRefPayload](msg)
	if err != nil {
		client.SendMessage(protocol.InvalidMessage())
		return
	}

	team, err := h.rooms.GetPlayerTeam(context.Background(), payload.PlayerID)
	if err != nil {
		h.sendError(client, err)
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgPlayerTeam, protocol.PlayerTeamPayload{
		Team: team,
	}))
}

// handleGetCurrentTurn 查询房间当前回合
func (h *Handler) handleGetCurrentTurn(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.RoomRefPayload](msg)
	if err != nil {
		client.SendMessage(protocol.InvalidMessage())
		return
	}

	state, err := h.rooms.GetCurrentTurn(context.Background(), payload.RoomID)
	if err != nil {
		h.sendError(client, err)
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgGameState, protocol.GameStatePayload{
		Started:     state.Started,
		CurrentTurn: state.CurrentTurn,
	}))
}
