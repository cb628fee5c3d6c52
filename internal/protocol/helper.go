package protocol

import "encoding/json"

// NewMessage 把 payload 序列化后装入消息信封。payload 为 nil 时信封不带负载
func NewMessage(msgType MessageType, payload any) (*Message, error) {
	if payload == nil {
		return &Message{Type: msgType}, nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Message{Type: msgType, Payload: data}, nil
}

// MustNewMessage 同 NewMessage。payload 都是本包的结构体，
// 序列化失败只能是编码错误，直接 panic
func MustNewMessage(msgType MessageType, payload any) *Message {
	msg, err := NewMessage(msgType, payload)
	if err != nil {
		panic(err)
	}
	return msg
}

// Encode 整条消息编码为 JSON 字节，供写入 WebSocket 帧
func (m *Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// Decode 从 WebSocket 帧解出消息信封。Payload 保持原始字节，
// 由各 handler 按消息类型解析
func Decode(data []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// ParsePayload 把消息负载解析为指定的 payload 类型
func ParsePayload[T any](msg *Message) (*T, error) {
	var payload T
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// NewErrorMessage 构造错误事件。文案随错误给出，
// 游戏错误的码和文案由 apperrors 统一转换
func NewErrorMessage(code int, text string) *Message {
	return MustNewMessage(MsgError, ErrorPayload{Code: code, Message: text})
}

// InvalidMessage 无法解析或类型未知的请求统一回这个事件
func InvalidMessage() *Message {
	return NewErrorMessage(ErrCodeInvalidMsg, "Invalid message format")
}
