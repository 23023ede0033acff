//go:build ci

package sound

// SoundManager 在 CI 构建中不发声，只保留播报日志
type SoundManager struct {
	dir string
}

func NewSoundManager(dir string) *SoundManager {
	if dir == "" {
		dir = DefaultDir
	}
	return &SoundManager{dir: dir}
}

func (sm *SoundManager) Init() error {
	return nil
}

func (sm *SoundManager) Play(names ...string) {}

func (sm *SoundManager) Close() {}
