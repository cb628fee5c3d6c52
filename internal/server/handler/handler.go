package handler

import (
	"github.com/charmbracelet/log"

	"github.com/palemoky/literature/internal/apperrors"
	"github.com/palemoky/literature/internal/game/room"
	"github.com/palemoky/literature/internal/protocol"
	"github.com/palemoky/literature/internal/types"
)

// Deps 处理器依赖
type Deps struct {
	Server types.ServerInterface
	Rooms  *room.Manager
	Logger *log.Logger
}

// Handler 消息处理器
type Handler struct {
	server   types.ServerInterface
	rooms    *room.Manager
	logger   *log.Logger
	handlers map[protocol.MessageType]handlerFunc
}

// handlerFunc 统一的处理器函数签名
type handlerFunc func(client types.ClientInterface, msg *protocol.Message)

// NewHandler 创建处理器
func NewHandler(deps Deps) *Handler {
	h := &Handler{
		server: deps.Server,
		rooms:  deps.Rooms,
		logger: deps.Logger,
	}
	h.initHandlers()
	return h
}

// initHandlers 初始化消息处理器映射
func (h *Handler) initHandlers() {
	h.handlers = map[protocol.MessageType]handlerFunc{
		// 连接操作
		protocol.MsgPing: h.handlePing,

		// 房间操作
		protocol.MsgCreateRoom: h.handleCreateRoom,
		protocol.MsgJoinRoom:   h.handleJoinRoom,

		// 游戏操作
		protocol.MsgAskCard:    h.handleAskCard,
		protocol.MsgSetTurn:    h.handleSetTurn,
		protocol.MsgUpdateHand: h.handleUpdateHand,

		// 信息查询
		protocol.MsgGetPlayers:     h.handleGetPlayers,
		protocol.MsgGetHand:        h.handleGetHand,
		protocol.MsgGetRoomPlayers: h.handleGetRoomPlayers,
		protocol.MsgGetPlayerTeam:  h.handleGetPlayerTeam,
		protocol.MsgGetCurrentTurn: h.handleGetCurrentTurn,
	}
}

// Handle 处理消息
func (h *Handler) Handle(client types.ClientInterface, msg *protocol.Message) {
	if handler, ok := h.handlers[msg.Type]; ok {
		handler(client, msg)
		return
	}

	h.logger.Warn("未知消息类型", "type", msg.Type, "player_id", client.GetID())
	client.SendMessage(protocol.InvalidMessage())
}

// sendError 把错误转成错误事件回给发起方本人
func (h *Handler) sendError(client types.ClientInterface, err error) {
	client.SendMessage(apperrors.AsMessage(err))
}
