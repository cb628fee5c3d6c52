//go:build !production

package testutil

import (
	"sync"

	"github.com/palemoky/literature/internal/protocol"
)

// Event 一条被记录的广播
type Event struct {
	RoomID   string // 房间频道投递时非空
	PlayerID string // 玩家频道投递时非空
	Msg      *protocol.Message
}

// RecordingBroadcaster 记录所有广播的 room.Broadcaster 实现
type RecordingBroadcaster struct {
	mu     sync.Mutex
	Events []Event
}

func (b *RecordingBroadcaster) SendToRoom(roomID string, msg *protocol.Message) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Events = append(b.Events, Event{RoomID: roomID, Msg: msg})
}

func (b *RecordingBroadcaster) SendToPlayer(playerID string, msg *protocol.Message) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Events = append(b.Events, Event{PlayerID: playerID, Msg: msg})
}

// Reset 清空记录
func (b *RecordingBroadcaster) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Events = nil
}

// RoomEvents 返回投递到指定房间频道的某类消息
func (b *RecordingBroadcaster) RoomEvents(roomID string, t protocol.MessageType) []*protocol.Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []*protocol.Message
	for _, e := range b.Events {
		if e.RoomID == roomID && e.Msg.Type == t {
			out = append(out, e.Msg)
		}
	}
	return out
}

// PlayerEvents 返回投递到指定玩家频道的某类消息
func (b *RecordingBroadcaster) PlayerEvents(playerID string, t protocol.MessageType) []*protocol.Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []*protocol.Message
	for _, e := range b.Events {
		if e.PlayerID == playerID && e.Msg.Type == t {
			out = append(out, e.Msg)
		}
	}
	return out
}
