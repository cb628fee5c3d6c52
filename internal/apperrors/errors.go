package apperrors

import (
	"errors"

	"github.com/palemoky/literature/internal/protocol"
)

// GameError 游戏错误（房间和引擎共享）
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// ToMessage 转为发给客户端的错误事件
func (e *GameError) ToMessage() *protocol.Message {
	return protocol.NewErrorMessage(e.Code, e.Message)
}

// AsMessage 把任意错误转为错误事件。
// GameError 带约定的码和文案，其余错误按未知错误处理
func AsMessage(err error) *protocol.Message {
	var gameErr *GameError
	if errors.As(err, &gameErr) {
		return gameErr.ToMessage()
	}
	return protocol.NewErrorMessage(protocol.ErrCodeUnknown, err.Error())
}

// 预定义错误。错误文案与客户端约定，不可改动
var (
	ErrRoomNotFound    = &GameError{Code: protocol.ErrCodeRoomNotFound, Message: "Room not found"}
	ErrRoomFull        = &GameError{Code: protocol.ErrCodeRoomFull, Message: "Room is full"}
	ErrPlayerNotFound  = &GameError{Code: protocol.ErrCodePlayerNotFound, Message: "Player not found"}
	ErrNotYourTurn     = &GameError{Code: protocol.ErrCodeNotYourTurn, Message: "Not your turn"}
	ErrAskOwnCard      = &GameError{Code: protocol.ErrCodeInvalidAsk, Message: "You cannot ask for a card you already have"}
	ErrSetNotHeld      = &GameError{Code: protocol.ErrCodeInvalidAsk, Message: "You must have a card in the set you are asking for"}
	ErrUnknownCard     = &GameError{Code: protocol.ErrCodeInvalidAsk, Message: "Unknown card"}
	ErrAskOutsideRoom  = &GameError{Code: protocol.ErrCodeInvalidAsk, Message: "You can only ask players in your room"}
	ErrHandUnavailable = &GameError{Code: protocol.ErrCodePlayerNotFound, Message: "Failed to update hand"}
)
