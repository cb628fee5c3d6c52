package protocol

// 错误码。线上文案跟着具体错误走（见 apperrors），码只做分类
const (
	ErrCodeUnknown        = 1000
	ErrCodeInvalidMsg     = 1001
	ErrCodeRoomNotFound   = 2001
	ErrCodeRoomFull       = 2002
	ErrCodePlayerNotFound = 2003
	ErrCodeNotYourTurn    = 3001
	ErrCodeInvalidAsk     = 3002
	ErrCodeStorage        = 4001
)
