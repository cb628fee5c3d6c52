package handler

import (
	"context"

	"github.com/palemoky/literature/internal/protocol"
	"github.com/palemoky/literature/internal/types"
)

// handleCreateRoom 处理创建房间
func (h *Handler) handleCreateRoom(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.CreateRoomPayload](msg)
	if err != nil {
		client.SendMessage(protocol.InvalidMessage())
		return
	}

	roomID, playerID, err := h.rooms.CreateRoom(context.Background(), payload.Name)
	if err != nil {
		h.sendError(client, err)
		return
	}

	h.bindClient(client, playerID, payload.Name, roomID)

	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomCreated, protocol.RoomCreatedPayload{
		RoomID:   roomID,
		PlayerID: playerID,
	}))
}

// handleJoinRoom 处理加入房间
func (h *Handler) handleJoinRoom(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.JoinRoomPayload](msg)
	if err != nil {
		client.SendMessage(protocol.InvalidMessage())
		return
	}

	playerID, snap, err := h.rooms.JoinRoom(context.Background(), payload.RoomID, payload.Name)
	if err != nil {
		h.sendError(client, err)
		return
	}

	h.bindClient(client, playerID, payload.Name, payload.RoomID)

	players := make([]protocol.PlayerInfo, len(snap.Players))
	var hand []string
	for i, p := range snap.Players {
		players[i] = protocol.PlayerInfo{ID: p.ID, Name: p.Name, Team: p.Team}
		if p.ID == playerID {
			for _, c := range p.Hand {
				hand = append(hand, string(c))
			}
		}
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomJoined, protocol.RoomJoinedPayload{
		RoomID:      payload.RoomID,
		PlayerID:    playerID,
		Players:     players,
		Started:     snap.Room.Started,
		CurrentTurn: snap.Room.CurrentTurn,
		Hand:        hand,
	}))
}

// bindClient 把连接重新绑定到新分配的玩家 ID。
// 之后房间广播按玩家 ID 找到这条连接
func (h *Handler) bindClient(client types.ClientInterface, playerID, name, roomID string) {
	h.server.UnregisterClient(client.GetID())
	client.SetID(playerID)
	client.SetName(name)
	client.SetRoom(roomID)
	h.server.RegisterClient(playerID, client)
}
