package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/palemoky/literature/internal/apperrors"
	"github.com/palemoky/literature/internal/game/card"
	"github.com/palemoky/literature/internal/game/room"
)

const (
	// Redis key 前缀
	roomKeyPrefix   = "room:"
	playerKeyPrefix = "player:"

	// 房间成员列表（保持加入顺序）
	memberListSuffix = ":players"
)

// roomDoc 房间数据（用于 Redis 序列化）
type roomDoc struct {
	ID          string      `json:"id"`
	Status      string      `json:"status"`
	Round       int         `json:"round"`
	CurrentTurn string      `json:"current_turn"`
	Scores      map[int]int `json:"scores"`
	Started     bool        `json:"started"`
}

// playerDoc 玩家数据
type playerDoc struct {
	ID     string   `json:"id"`
	RoomID string   `json:"room_id"`
	Name   string   `json:"name"`
	Team   int      `json:"team"`
	Hand   []string `json:"hand"`
}

// RedisStore 基于 Redis 的 room.Repository 实现。
// 所有键共享同一过期时间，房间闲置超时后整体消失
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore 创建 Redis 存储
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// --- 房间 ---

func (rs *RedisStore) GetRoom(ctx context.Context, id string) (*room.Room, error) {
	data, err := rs.client.Get(ctx, roomKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("读取房间失败: %w", err)
	}

	var doc roomDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("反序列化房间数据失败: %w", err)
	}
	return docToRoom(&doc), nil
}

func (rs *RedisStore) PutRoom(ctx context.Context, r *room.Room) error {
	data, err := json.Marshal(roomToDoc(r))
	if err != nil {
		return fmt.Errorf("序列化房间数据失败: %w", err)
	}
	if err := rs.client.Set(ctx, roomKeyPrefix+r.ID, data, rs.ttl).Err(); err != nil {
		return fmt.Errorf("保存房间失败: %w", err)
	}
	// 成员列表随房间续期
	rs.client.Expire(ctx, rs.memberKey(r.ID), rs.ttl)
	return nil
}

func (rs *RedisStore) DeleteRoom(ctx context.Context, id string) error {
	return rs.client.Del(ctx, roomKeyPrefix+id, rs.memberKey(id)).Err()
}

// --- 玩家 ---

func (rs *RedisStore) GetPlayer(ctx context.Context, id string) (*room.Player, error) {
	data, err := rs.client.Get(ctx, playerKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("读取玩家失败: %w", err)
	}

	var doc playerDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("反序列化玩家数据失败: %w", err)
	}
	return docToPlayer(&doc), nil
}

func (rs *RedisStore) PutPlayer(ctx context.Context, p *room.Player) error {
	data, err := json.Marshal(playerToDoc(p))
	if err != nil {
		return fmt.Errorf("序列化玩家数据失败: %w", err)
	}
	if err := rs.client.Set(ctx, playerKeyPrefix+p.ID, data, rs.ttl).Err(); err != nil {
		return fmt.Errorf("保存玩家失败: %w", err)
	}
	return nil
}

func (rs *RedisStore) CreatePlayer(ctx context.Context, roomID, name string, team int) (*room.Player, error) {
	p := &room.Player{
		ID:     uuid.NewString(),
		RoomID: roomID,
		Name:   name,
		Team:   team,
	}
	if err := rs.PutPlayer(ctx, p); err != nil {
		return nil, err
	}
	if err := rs.client.RPush(ctx, rs.memberKey(roomID), p.ID).Err(); err != nil {
		return nil, fmt.Errorf("登记房间成员失败: %w", err)
	}
	rs.client.Expire(ctx, rs.memberKey(roomID), rs.ttl)
	return p, nil
}

func (rs *RedisStore) ListPlayers(ctx context.Context, roomID string) ([]*room.Player, error) {
	ids, err := rs.client.LRange(ctx, rs.memberKey(roomID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("读取房间成员失败: %w", err)
	}

	players := make([]*room.Player, 0, len(ids))
	for _, id := range ids {
		p, err := rs.GetPlayer(ctx, id)
		if err != nil {
			// 玩家键先于成员列表过期时跳过
			if errors.Is(err, apperrors.ErrPlayerNotFound) {
				continue
			}
			return nil, err
		}
		players = append(players, p)
	}
	return players, nil
}

func (rs *RedisStore) memberKey(roomID string) string {
	return roomKeyPrefix + roomID + memberListSuffix
}

// --- 文档转换 ---

func roomToDoc(r *room.Room) *roomDoc {
	return &roomDoc{
		ID:          r.ID,
		Status:      string(r.Status),
		Round:       r.Round,
		CurrentTurn: r.CurrentTurn,
		Scores:      r.Scores,
		Started:     r.Started,
	}
}

func docToRoom(doc *roomDoc) *room.Room {
	r := &room.Room{
		ID:          doc.ID,
		Status:      room.Status(doc.Status),
		Round:       doc.Round,
		CurrentTurn: doc.CurrentTurn,
		Scores:      doc.Scores,
		Started:     doc.Started,
	}
	if r.Scores == nil {
		r.Scores = map[int]int{}
	}
	return r
}

func playerToDoc(p *room.Player) *playerDoc {
	hand := make([]string, len(p.Hand))
	for i, c := range p.Hand {
		hand[i] = string(c)
	}
	return &playerDoc{ID: p.ID, RoomID: p.RoomID, Name: p.Name, Team: p.Team, Hand: hand}
}

func docToPlayer(doc *playerDoc) *room.Player {
	hand := make([]card.Card, len(doc.Hand))
	for i, c := range doc.Hand {
		hand[i] = card.Card(c)
	}
	return &room.Player{ID: doc.ID, RoomID: doc.RoomID, Name: doc.Name, Team: doc.Team, Hand: hand}
}
