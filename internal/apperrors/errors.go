package apperrors

// 错误码
const (
	CodeGameNotStart = 1001
	CodeGameOver     = 1002
	CodeQuizOpen     = 1003
	CodeNoQuiz       = 1004
	CodeBadSpeed     = 1005
)

// GameError 训练器命令被拒绝时返回的错误
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrGameNotStart = &GameError{Code: CodeGameNotStart, Message: "游戏尚未开始"}
	ErrGameOver     = &GameError{Code: CodeGameOver, Message: "本局已结束"}
	ErrQuizOpen     = &GameError{Code: CodeQuizOpen, Message: "请先回答记牌测验"}
	ErrNoQuiz       = &GameError{Code: CodeNoQuiz, Message: "当前没有记牌测验"}
	ErrBadSpeed     = &GameError{Code: CodeBadSpeed, Message: "自动出牌间隔无效"}
)
