package server

import (
	"io"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"github.com/palemoky/literature/internal/protocol"
)

func newTestClient(buffer int) *Client {
	return &Client{
		id:     "test-client",
		server: &Server{logger: log.New(io.Discard)},
		send:   make(chan []byte, buffer),
	}
}

func TestSendMessage_AfterClose(t *testing.T) {
	t.Parallel()

	c := newTestClient(4)
	c.Close()

	// 关闭后发送应静默丢弃，不 panic
	c.SendMessage(protocol.MustNewMessage(protocol.MsgPong, nil))
	assert.Empty(t, c.send)
}

func TestSendMessage_FullBuffer(t *testing.T) {
	t.Parallel()

	c := newTestClient(1)
	msg := protocol.MustNewMessage(protocol.MsgPong, nil)

	c.SendMessage(msg)
	// 缓冲区已满，连接应被关闭
	c.SendMessage(msg)

	c.mu.RLock()
	defer c.mu.RUnlock()
	assert.True(t, c.closed)
}

func TestSendMessage_ConcurrentClose(t *testing.T) {
	t.Parallel()

	// 并发发送与关闭不应向已关闭的 channel 写入（配合 -race 验证）
	for range 100 {
		c := newTestClient(2)
		msg := protocol.MustNewMessage(protocol.MsgPong, nil)

		var wg sync.WaitGroup
		for range 4 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				c.SendMessage(msg)
			}()
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Close()
		}()
		wg.Wait()
	}
}
