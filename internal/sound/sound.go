//go:build !ci

package sound

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"

	"github.com/palemoky/landlord-trainer/internal/logger"
)

const sampleRate = beep.SampleRate(44100)

type decodeFunc func(io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error)

var decoders = map[string]decodeFunc{
	".mp3": mp3.Decode,
	".wav": func(r io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(r) },
}

// SoundManager 播放出牌提示音，同时实现 trainer.Narrator。
// Speak 可能在自动出牌的定时器 goroutine 中调用
type SoundManager struct {
	mu      sync.RWMutex
	buffers map[string]*beep.Buffer
	enabled bool
	dir     string
}

func NewSoundManager(dir string) *SoundManager {
	if dir == "" {
		dir = DefaultDir
	}
	return &SoundManager{
		buffers: make(map[string]*beep.Buffer),
		dir:     dir,
	}
}

// Init 初始化声卡并加载提示音。目录不存在时静默
func (sm *SoundManager) Init() error {
	// 较小的缓冲降低延迟
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}

	buffers, err := loadCues(sm.dir)
	if err != nil {
		return err
	}

	sm.mu.Lock()
	sm.buffers = buffers
	sm.enabled = true
	sm.mu.Unlock()

	logger.LogInfo("Sound initialized, %d cues loaded from %s", len(buffers), sm.dir)
	return nil
}

// loadCues 读取目录下所有可识别的提示音，文件名（不含扩展名）即 cue 名
func loadCues(dir string) (map[string]*beep.Buffer, error) {
	buffers := make(map[string]*beep.Buffer)

	files, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return buffers, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read sound directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		name := file.Name()
		ext := strings.ToLower(filepath.Ext(name))
		decode, ok := decoders[ext]
		if !ok {
			continue
		}

		buf, err := loadCue(filepath.Join(dir, name), decode)
		if err != nil {
			logger.LogError("load sound %s: %v", name, err)
			continue
		}
		buffers[strings.TrimSuffix(name, filepath.Ext(name))] = buf
	}
	return buffers, nil
}

func loadCue(path string, decode decodeFunc) (*beep.Buffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	streamer, format, err := decode(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	defer func() { _ = streamer.Close() }()

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buffer := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 4})
	buffer.Append(s)
	return buffer, nil
}

// Play 播放第一个已加载的 cue
func (sm *SoundManager) Play(names ...string) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	if !sm.enabled {
		return
	}

	for _, name := range names {
		if buffer, ok := sm.buffers[name]; ok {
			speaker.Play(buffer.Streamer(0, buffer.Len()))
			return
		}
	}
}

func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.enabled {
		speaker.Clear()
	}
	sm.enabled = false
}
