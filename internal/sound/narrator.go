package sound

import (
	"fmt"
	"strings"

	"github.com/palemoky/landlord-trainer/internal/game/speech"
	"github.com/palemoky/landlord-trainer/internal/logger"
)

// DefaultDir 提示音目录
const DefaultDir = "assets/sounds"

// 提示音文件名（不含扩展名）
const (
	CuePlay   = "play"
	CuePass   = "pass"
	CueBomb   = "bomb"
	CueRocket = "rocket"
)

// CueFor 根据播报文本选择提示音
func CueFor(text string) string {
	switch {
	case text == speech.Pass:
		return CuePass
	case text == speech.Rocket:
		return CueRocket
	case strings.HasSuffix(text, speech.BombSuffix):
		return CueBomb
	default:
		return CuePlay
	}
}

// SeatCue 座位专属提示音名，如 play_1。没有时退回通用 cue
func SeatCue(cue string, seat int) string {
	return fmt.Sprintf("%s_%d", cue, seat)
}

// Speak 记录播报文本并播放对应提示音
func (sm *SoundManager) Speak(text string, seat int) {
	logger.LogInfo("[播报] 座位%d: %s", seat, text)
	cue := CueFor(text)
	sm.Play(SeatCue(cue, seat), cue)
}
