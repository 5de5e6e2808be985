package host

import (
	"bytes"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"

	"github.com/ggueyraud/Asteroids"
)

type AudioProps struct {
	MasterVolume float64
	MusicVolume  float64
	SoundVolume  float64
}

// AudioManager plays decoded sounds. Looped sounds count as music and use
// the music volume; one-shots use the sound volume.
type AudioManager struct {
	context      *audio.Context
	log          *zap.Logger
	mutex        sync.Mutex
	players      []*audio.Player
	loops        []*audio.Player
	masterVolume float64
	musicVolume  float64
	soundVolume  float64
}

func NewAudioManager(props *AudioProps, log *zap.Logger) *AudioManager {
	if props == nil {
		props = &AudioProps{
			MasterVolume: 1.0,
			MusicVolume:  0.7,
			SoundVolume:  0.8,
		}
	}

	return &AudioManager{
		context:      audio.NewContext(SampleRate),
		log:          log.Named("audio"),
		masterVolume: clampVolume(props.MasterVolume),
		musicVolume:  clampVolume(props.MusicVolume),
		soundVolume:  clampVolume(props.SoundVolume),
	}
}

// Play starts sound and forgets about it. Failures are logged, never
// returned: a missing voice must not stop the game.
func (am *AudioManager) Play(sound asteroids.Sound, params asteroids.PlayParams) {
	s, ok := sound.(*Sound)
	if !ok || len(s.data) == 0 {
		am.log.Warn("cannot play sound", zap.String("name", sound.Name()))
		return
	}

	am.mutex.Lock()
	defer am.mutex.Unlock()

	var (
		player *audio.Player
		err    error
	)
	channel := am.soundVolume
	if params.Looped {
		loop := audio.NewInfiniteLoop(bytes.NewReader(s.data), int64(len(s.data)))
		player, err = am.context.NewPlayer(loop)
		channel = am.musicVolume
	} else {
		player, err = am.context.NewPlayer(bytes.NewReader(s.data))
	}
	if err != nil {
		am.log.Warn("create audio player", zap.String("name", s.name), zap.Error(err))
		return
	}

	player.SetVolume(clampVolume(am.masterVolume * channel * params.Volume))
	player.Play()

	if params.Looped {
		am.loops = append(am.loops, player)
	} else {
		am.cleanupPlayers()
		am.players = append(am.players, player)
	}
}

// Update closes players that finished. Call it once per frame.
func (am *AudioManager) Update() {
	am.mutex.Lock()
	defer am.mutex.Unlock()
	am.cleanupPlayers()
}

func (am *AudioManager) cleanupPlayers() {
	active := am.players[:0]
	for _, player := range am.players {
		if player.IsPlaying() {
			active = append(active, player)
		} else {
			player.Close()
		}
	}
	for i := len(active); i < len(am.players); i++ {
		am.players[i] = nil
	}
	am.players = active
}

func (am *AudioManager) Cleanup() {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	for _, player := range am.players {
		player.Close()
	}
	for _, player := range am.loops {
		player.Close()
	}
	am.players = nil
	am.loops = nil
}

func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
