package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMessage(t *testing.T) {
	payload := JoinRoomPayload{RoomID: "room-1", Name: "Alice"}
	msg, err := NewMessage(MsgJoinRoom, payload)

	assert.NoError(t, err)
	assert.NotNil(t, msg)
	assert.Equal(t, MsgJoinRoom, msg.Type)
	assert.NotEmpty(t, msg.Payload)
}

func TestNewMessage_NilPayload(t *testing.T) {
	msg, err := NewMessage(MsgPong, nil)

	assert.NoError(t, err)
	assert.Empty(t, msg.Payload)
}

func TestEncodeDecode(t *testing.T) {
	original, err := NewMessage(MsgAskCard, AskCardPayload{
		AskingPlayerID: "p1",
		AskedPlayerID:  "p2",
		Card:           "7 of Hearts",
		RoomID:         "room-1",
	})
	assert.NoError(t, err)

	bytes, err := original.Encode()
	assert.NoError(t, err)
	assert.NotEmpty(t, bytes)

	decoded, err := Decode(bytes)
	assert.NoError(t, err)
	assert.Equal(t, original.Type, decoded.Type)
	assert.JSONEq(t, string(original.Payload), string(decoded.Payload))
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode([]byte(`{"type":`))
	assert.Error(t, err)
}

func TestParsePayload(t *testing.T) {
	msg := MustNewMessage(MsgCardTransferred, CardTransferredPayload{
		FromPlayer: "p2",
		ToPlayer:   "p1",
		Card:       "Joker",
	})

	payload, err := ParsePayload[CardTransferredPayload](msg)
	assert.NoError(t, err)
	assert.Equal(t, "p2", payload.FromPlayer)
	assert.Equal(t, "p1", payload.ToPlayer)
	assert.Equal(t, "Joker", payload.Card)
}

func TestNewErrorMessage(t *testing.T) {
	msg := NewErrorMessage(ErrCodeInvalidAsk, "Unknown card")

	payload, err := ParsePayload[ErrorPayload](msg)
	assert.NoError(t, err)
	assert.Equal(t, MsgError, msg.Type)
	assert.Equal(t, ErrCodeInvalidAsk, payload.Code)
	assert.Equal(t, "Unknown card", payload.Message)
}

func TestInvalidMessage(t *testing.T) {
	payload, err := ParsePayload[ErrorPayload](InvalidMessage())
	assert.NoError(t, err)
	assert.Equal(t, ErrCodeInvalidMsg, payload.Code)
	assert.Equal(t, "Invalid message format", payload.Message)
}
