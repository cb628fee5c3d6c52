package card

// SetID 合法性分组编号，取值 [0,8]。
// 每组恰好 6 张牌：2-7 按花色分 4 个低组，9-A 按花色分 4 个高组，
// 四张 8 加两张王组成百搭组
type SetID int

// WildSet 百搭组（所有 8 和两张王）
const WildSet SetID = 8

// SetCount 分组总数
const SetCount = 9

// suitOffsets 花色在组编号中的偏移
var suitOffsets = map[string]SetID{
	"Spades":   0,
	"Hearts":   1,
	"Clubs":    2,
	"Diamonds": 3,
}

// lowRanks 低组点数（2-7）
var lowRanks = map[string]bool{
	"2": true, "3": true, "4": true, "5": true, "6": true, "7": true,
}

// SetOf 返回牌所属的分组。对全集之外的标识符返回错误
func SetOf(c Card) (SetID, error) {
	if c == Joker {
		return WildSet, nil
	}

	rank, suit, err := c.Split()
	if err != nil {
		return -1, err
	}

	if rank == "8" {
		return WildSet, nil
	}
	if lowRanks[rank] {
		return suitOffsets[suit], nil
	}
	// 剩下的只有 9、10、J、Q、K、A
	return 4 + suitOffsets[suit], nil
}
