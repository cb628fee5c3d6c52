package card

import (
	"fmt"
	"strings"
)

// Card 一张牌的标识符，形如 "7 of Hearts"。
// 两张王共用同一个标识符 "Joker"，因此手牌是多重集合
type Card string

// Joker 王牌（两张完全相同）
const Joker Card = "Joker"

// UniverseSize 全集大小：13 点数 × 4 花色 + 2 王
const UniverseSize = 54

// ranks 牌面值（构建全集的顺序）
var ranks = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// suits 花色（构建全集的顺序）
var suits = []string{"Hearts", "Diamonds", "Clubs", "Spades"}

// Universe 构建 54 张牌的全集（含两张 Joker）
func Universe() []Card {
	deck := make([]Card, 0, UniverseSize)
	for _, r := range ranks {
		for _, s := range suits {
			deck = append(deck, Card(r+" of "+s))
		}
	}
	deck = append(deck, Joker, Joker)
	return deck
}

// validRanks 用于快速校验点数
var validRanks = func() map[string]bool {
	m := make(map[string]bool, len(ranks))
	for _, r := range ranks {
		m[r] = true
	}
	return m
}()

// validSuits 用于快速校验花色
var validSuits = func() map[string]bool {
	m := make(map[string]bool, len(suits))
	for _, s := range suits {
		m[s] = true
	}
	return m
}()

// Split 拆出点数与花色。Joker 没有点数与花色，返回错误
func (c Card) Split() (rank, suit string, err error) {
	rank, suit, ok := strings.Cut(string(c), " of ")
	if !ok || !validRanks[rank] || !validSuits[suit] {
		return "", "", fmt.Errorf("无法识别的牌: %q", string(c))
	}
	return rank, suit, nil
}
