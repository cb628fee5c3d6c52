package protocol

import "encoding/json"

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
const (
	// 连接操作
	MsgPing MessageType = "ping" // 心跳 ping

	// 房间操作
	MsgCreateRoom MessageType = "create_room" // 创建房间
	MsgJoinRoom   MessageType = "join_room"   // 加入房间

	// 游戏操作
	MsgAskCard MessageType = "ask_card" // 问牌
	MsgSetTurn MessageType = "set_turn" // 直接指定回合（带外纠正）

	// 信息查询
	MsgGetPlayers     MessageType = "get_players"      // 请求向全房间重播玩家列表
	MsgUpdateHand     MessageType = "update_hand"      // 请求重发自己的手牌
	MsgGetHand        MessageType = "get_hand"         // 查询手牌
	MsgGetRoomPlayers MessageType = "get_room_players" // 查询房间玩家
	MsgGetPlayerTeam  MessageType = "get_player_team"  // 查询玩家队伍
	MsgGetCurrentTurn MessageType = "get_current_turn" // 查询当前回合
)

// 服务端 → 客户端 消息类型
const (
	// 连接相关
	MsgConnected MessageType = "connected" // 连接成功
	MsgPong      MessageType = "pong"      // 心跳 pong

	// 房间相关
	MsgRoomCreated MessageType = "room_created" // 房间创建成功
	MsgRoomJoined  MessageType = "room_joined"  // 加入房间成功

	// 游戏事件（与客户端约定的事件名，不可更改）
	MsgUpdatePlayers   MessageType = "update_players"   // 玩家列表更新
	MsgHandUpdated     MessageType = "hand_updated"     // 手牌更新
	MsgGameStarted     MessageType = "game_started"     // 游戏开始
	MsgGameState       MessageType = "game_state"       // 游戏状态快照
	MsgCardTransferred MessageType = "card_transferred" // 牌转移
	MsgTurnChanged     MessageType = "turn_changed"     // 回合变更

	// 查询结果
	MsgPlayerTeam MessageType = "player_team" // 队伍查询结果

	// 错误
	MsgError MessageType = "error" // 错误消息
)
