package card

import (
	"fmt"
	"math/rand/v2"
)

// Deal 洗牌并按入座顺序切成 playerCount 份，每份 handSize 张。
// 随机源由调用方注入，便于复现测试。
// playerCount × handSize 必须恰好覆盖全集，否则返回配置错误
func Deal(rng *rand.Rand, playerCount, handSize int) ([][]Card, error) {
	if playerCount <= 0 || handSize <= 0 || playerCount*handSize != UniverseSize {
		return nil, fmt.Errorf("发牌配置无效: %d 名玩家 × %d 张手牌 ≠ %d 张牌", playerCount, handSize, UniverseSize)
	}

	deck := Universe()
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	hands := make([][]Card, playerCount)
	for i := range hands {
		hands[i] = deck[i*handSize : (i+1)*handSize : (i+1)*handSize]
	}
	return hands, nil
}
