package handler

import (
	"context"

	"github.com/palemoky/literature/internal/game/card"
	"github.com/palemoky/literature/internal/game/room"
	"github.com/palemoky/literature/internal/protocol"
	"github.com/palemoky/literature/internal/types"
)

// handleAskCard 处理问牌
func (h *Handler) handleAskCard(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.AskCardPayload](msg)
	if err != nil {
		client.SendMessage(protocol.InvalidMessage())
		return
	}

	err = h.rooms.AskCard(context.Background(), &room.AskRequest{
		RoomID:         payload.RoomID,
		AskingPlayerID: payload.AskingPlayerID,
		AskedPlayerID:  payload.AskedPlayerID,
		Card:           card.Card(payload.Card),
	})
	if err != nil {
		h.sendError(client, err)
	}
}

// handleSetTurn 处理直接指定回合
func (h *Handler) handleSetTurn(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.SetTurnPayload](msg)
	if err != nil {
		client.SendMessage(protocol.InvalidMessage())
		return
	}

	if err := h.rooms.SetTurn(context.Background(), payload.RoomID, payload.NewTurn); err != nil {
		h.sendError(client, err)
	}
}

// handleUpdateHand 处理手牌重发请求
func (h *Handler) handleUpdateHand(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.PlayerRefPayload](msg)
	if err != nil {
		client.SendMessage(protocol.InvalidMessage())
		return
	}

	playerID := payload.PlayerID
	if playerID == "" {
		playerID = client.GetID()
	}

	if err := h.rooms.ResendHand(context.Background(), playerID); err != nil {
		h.sendError(client, err)
	}
}
