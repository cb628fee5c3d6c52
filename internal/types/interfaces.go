package types

import (
	"github.com/palemoky/literature/internal/protocol"
)

// ServerInterface 定义服务器接口（用于打破循环依赖）
type ServerInterface interface {
	GetOnlineCount() int
	GetClientByID(id string) ClientInterface
	RegisterClient(id string, client ClientInterface)
	UnregisterClient(id string)
}

// ClientInterface 定义客户端接口。
// 创建/加入房间成功后，连接会重新绑定到新分配的玩家 ID
type ClientInterface interface {
	GetID() string
	SetID(id string)
	GetName() string
	SetName(name string)
	GetRoom() string
	SetRoom(id string)
	SendMessage(msg *protocol.Message)
	Close()
}
