//go:build !production

package testutil

import (
	"github.com/palemoky/literature/internal/protocol"
)

// SimpleClient 简单的 mock 客户端（用于不需要 testify 断言的测试）
type SimpleClient struct {
	ID       string
	Name     string
	RoomID   string
	Messages []*protocol.Message
}

func (c *SimpleClient) GetID() string                     { return c.ID }
func (c *SimpleClient) SetID(id string)                   { c.ID = id }
func (c *SimpleClient) GetName() string                   { return c.Name }
func (c *SimpleClient) SetName(name string)               { c.Name = name }
func (c *SimpleClient) GetRoom() string                   { return c.RoomID }
func (c *SimpleClient) SetRoom(id string)                 { c.RoomID = id }
func (c *SimpleClient) SendMessage(msg *protocol.Message) { c.Messages = append(c.Messages, msg) }
func (c *SimpleClient) Close()                            {}

// LastMessage 返回最近一条消息，没有则返回 nil
func (c *SimpleClient) LastMessage() *protocol.Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return c.Messages[len(c.Messages)-1]
}

// MessagesOfType 按类型过滤收到的消息
func (c *SimpleClient) MessagesOfType(t protocol.MessageType) []*protocol.Message {
	var out []*protocol.Message
	for _, msg := range c.Messages {
		if msg.Type == t {
			out = append(out, msg)
		}
	}
	return out
}
