package protocol

// --- 客户端请求 Payloads ---

// PingPayload 心跳请求
type PingPayload struct {
	Timestamp int64 `json:"timestamp"` // 客户端时间戳（毫秒）
}

// CreateRoomPayload 创建房间请求
type CreateRoomPayload struct {
	Name string `json:"name"` // 创建者昵称
}

// JoinRoomPayload 加入房间请求
type JoinRoomPayload struct {
	RoomID string `json:"room_id"`
	Name   string `json:"name"`
}

// AskCardPayload 问牌请求
type AskCardPayload struct {
	AskingPlayerID string `json:"asking_player_id"`
	AskedPlayerID  string `json:"asked_player_id"`
	Card           string `json:"card"`
	RoomID         string `json:"room_id"`
}

// SetTurnPayload 直接指定回合请求
type SetTurnPayload struct {
	RoomID  string `json:"room_id"`
	NewTurn string `json:"new_turn"`
}

// RoomRefPayload 按房间查询
type RoomRefPayload struct {
	RoomID string `json:"room_id"`
}

// PlayerRefPayload 按玩家查询
type PlayerRefPayload struct {
	PlayerID string `json:"player_id"`
}

// --- 服务端响应 Payloads ---

// ConnectedPayload 连接成功响应
type ConnectedPayload struct {
	PlayerID string `json:"player_id"`
}

// PongPayload 心跳响应
type PongPayload struct {
	ClientTimestamp int64 `json:"client_timestamp"`
	ServerTimestamp int64 `json:"server_timestamp"` // 服务器时间戳（毫秒）
}

// RoomCreatedPayload 房间创建成功响应
type RoomCreatedPayload struct {
	RoomID   string `json:"room_id"`
	PlayerID string `json:"player_id"`
}

// RoomJoinedPayload 加入房间成功响应。
// 加入即开局时带上本人手牌：此刻连接尚未按玩家 ID 绑定，
// 开局广播到不了新玩家，靠这份快照补齐
type RoomJoinedPayload struct {
	RoomID      string       `json:"room_id"`
	PlayerID    string       `json:"player_id"`
	Players     []PlayerInfo `json:"players"`
	Started     bool         `json:"started"`
	CurrentTurn string       `json:"current_turn,omitempty"`
	Hand        []string     `json:"hand,omitempty"`
}

// PlayerInfo 玩家信息
type PlayerInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Team int    `json:"team"`
}

// UpdatePlayersPayload 玩家列表更新事件
type UpdatePlayersPayload struct {
	Players []PlayerInfo `json:"players"`
}

// HandUpdatedPayload 手牌更新事件
type HandUpdatedPayload struct {
	Hand []string `json:"hand"`
}

// GameStartedPayload 游戏开始事件
type GameStartedPayload struct {
	CurrentTurn string `json:"current_turn"`
}

// GameStatePayload 游戏状态快照事件
type GameStatePayload struct {
	Started     bool   `json:"started"`
	CurrentTurn string `json:"current_turn,omitempty"`
}

// CardTransferredPayload 牌转移事件
type CardTransferredPayload struct {
	FromPlayer string `json:"from_player"`
	ToPlayer   string `json:"to_player"`
	Card       string `json:"card"`
}

// TurnChangedPayload 回合变更事件
type TurnChangedPayload struct {
	CurrentTurn string `json:"current_turn"`
}

// PlayerTeamPayload 队伍查询结果
type PlayerTeamPayload struct {
	Team int `json:"team"`
}

// ErrorPayload 错误消息
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
