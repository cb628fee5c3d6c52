package room

import (
	"context"
	"fmt"

	"github.com/palemoky/literature/internal/apperrors"
	"github.com/palemoky/literature/internal/game/card"
	"github.com/palemoky/literature/internal/protocol"
)

// AskRequest 一次问牌动作
type AskRequest struct {
	RoomID         string
	AskingPlayerID string
	AskedPlayerID  string
	Card           card.Card
}

// askOutcome 裁决结果（纯数据，不含副作用）
type askOutcome struct {
	Transferred bool
	NextTurn    string
}

// adjudicate 裁决问牌是否合法以及结果。纯函数，不做任何 I/O。
// 规则按固定顺序检查：
//  1. 必须轮到问牌者
//  2. 被问者必须在同一房间
//  3. 不能问自己已持有的牌
//  4. 问牌者必须持有目标牌所在分组的至少一张牌
//
// 猜中：牌转移，回合不变（继续问）；猜错：回合转给被问者
func adjudicate(r *Room, asker, asked *Player, c card.Card) (*askOutcome, error) {
	if r.CurrentTurn != asker.ID {
		return nil, apperrors.ErrNotYourTurn
	}
	if asked.RoomID != r.ID {
		return nil, apperrors.ErrAskOutsideRoom
	}
	if asker.HasCard(c) {
		return nil, apperrors.ErrAskOwnCard
	}

	wantSet, err := card.SetOf(c)
	if err != nil {
		return nil, apperrors.ErrUnknownCard
	}

	holdsSet := false
	for _, held := range asker.Hand {
		id, err := card.SetOf(held)
		if err != nil {
			// 手牌只可能来自发牌与转移，不应出现非法标识符
			return nil, fmt.Errorf("corrupt hand of %s: %w", asker.ID, err)
		}
		if id == wantSet {
			holdsSet = true
			break
		}
	}
	if !holdsSet {
		return nil, apperrors.ErrSetNotHeld
	}

	out := &askOutcome{Transferred: asked.HasCard(c)}
	if out.Transferred {
		// 猜中者保住回合
		out.NextTurn = r.CurrentTurn
	} else {
		out.NextTurn = asked.ID
	}
	return out, nil
}

// AskCard 执行一次问牌：裁决 → 落库 → 广播。
// 合法性错误不产生任何状态变更，由调用方转发给问牌者本人。
// 所有写入成功之后才广播成功事件
func (m *Manager) AskCard(ctx context.Context, req *AskRequest) error {
	unlock := m.lockRoom(req.RoomID)
	defer unlock()

	r, err := m.repo.GetRoom(ctx, req.RoomID)
	if err != nil {
		return err
	}
	asker, err := m.repo.GetPlayer(ctx, req.AskingPlayerID)
	if err != nil {
		return err
	}
	asked, err := m.repo.GetPlayer(ctx, req.AskedPlayerID)
	if err != nil {
		return err
	}

	out, err := adjudicate(r, asker, asked, req.Card)
	if err != nil {
		return err
	}

	if out.Transferred {
		asked.RemoveCard(req.Card)
		asker.Hand = append(asker.Hand, req.Card)
		if err := m.repo.PutPlayer(ctx, asker); err != nil {
			return fmt.Errorf("ask card: persist asker hand: %w", err)
		}
		if err := m.repo.PutPlayer(ctx, asked); err != nil {
			return fmt.Errorf("ask card: persist asked hand: %w", err)
		}
	}

	r.CurrentTurn = out.NextTurn
	if err := m.repo.PutRoom(ctx, r); err != nil {
		return fmt.Errorf("ask card: persist turn: %w", err)
	}

	if out.Transferred {
		m.bc.SendToRoom(r.ID, protocol.MustNewMessage(protocol.MsgCardTransferred, protocol.CardTransferredPayload{
			FromPlayer: asked.ID,
			ToPlayer:   asker.ID,
			Card:       string(req.Card),
		}))
	}
	m.sendTurnChanged(r.ID, r.CurrentTurn)
	m.sendHand(asker)
	m.sendHand(asked)

	m.logger.Debug("问牌",
		"room", r.ID, "asker", asker.ID, "asked", asked.ID,
		"card", req.Card, "transferred", out.Transferred, "turn", r.CurrentTurn)

	return nil
}

// SetTurn 带外直接指定当前回合并广播。不做合法性检查，调用方自行负责
func (m *Manager) SetTurn(ctx context.Context, roomID, newTurn string) error {
	unlock := m.lockRoom(roomID)
	defer unlock()

	r, err := m.repo.GetRoom(ctx, roomID)
	if err != nil {
		return err
	}

	r.CurrentTurn = newTurn
	if err := m.repo.PutRoom(ctx, r); err != nil {
		return fmt.Errorf("set turn: %w", err)
	}

	m.sendTurnChanged(roomID, newTurn)
	return nil
}
