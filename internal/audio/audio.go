// Package audio turns game events into synthesized sound. Games never call
// it directly: the platform maps tick events to cues and hands them to a
// Player, which must never block the frame loop.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-duel/internal/core"
)

// Cue is a fire-and-forget sound trigger.
type Cue int

const (
	CueHit  Cue = iota // wall or paddle impact
	CueWin             // round won by the player
	CueLose            // round won by the CPU
	CueShot            // bullet fired
)

func (c Cue) String() string {
	switch c {
	case CueHit:
		return "hit"
	case CueWin:
		return "win"
	case CueLose:
		return "lose"
	case CueShot:
		return "shot"
	default:
		return "unknown"
	}
}

// CueForEvent maps a tick event to the sound it should make, if any.
func CueForEvent(ev core.Event) (Cue, bool) {
	switch ev.Kind {
	case core.EventWallBounce, core.EventPaddleHit, core.EventTargetHit, core.EventBulletBlocked:
		return CueHit, true
	case core.EventShotFired:
		return CueShot, true
	case core.EventScored, core.EventGameOver:
		switch ev.Side {
		case core.SidePlayer:
			return CueWin, true
		case core.SideCPU:
			return CueLose, true
		}
	}
	return 0, false
}

// Config controls the audio device.
type Config struct {
	Enabled     bool
	Volume      float64 // effects, 0..1
	MusicVolume float64 // background loop, 0..1
	SampleRate  int
}

// DefaultConfig returns audio settings with sound on.
func DefaultConfig() Config {
	return Config{
		Enabled:     true,
		Volume:      0.5,
		MusicVolume: 0.15,
		SampleRate:  44100,
	}
}

// Player plays cues and the background loop.
type Player interface {
	// Play queues a cue. It never blocks.
	Play(c Cue)
	// StartMusic starts the looping background track. Later calls are no-ops.
	StartMusic()
	// Update is called once per frame and hands queued cues to the mixer.
	Update()
	// Close stops all sound.
	Close()
}

// Silent is a Player that discards everything.
type Silent struct{}

func (Silent) Play(Cue)    {}
func (Silent) StartMusic() {}
func (Silent) Update()     {}
func (Silent) Close()      {}

// Device plays sound through the system speaker.
type Device struct {
	mu      sync.Mutex
	cfg     Config
	rate    beep.SampleRate
	mixer   *beep.Mixer
	pending []Cue
	music   *beep.Ctrl
	closed  bool

	// lock guards the mixer against the speaker goroutine.
	lock, unlock func()
}

func newDevice(cfg Config) *Device {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultConfig().SampleRate
	}
	return &Device{
		cfg:    cfg,
		rate:   beep.SampleRate(cfg.SampleRate),
		mixer:  &beep.Mixer{},
		lock:   func() {},
		unlock: func() {},
	}
}

// Open initializes the speaker and returns a Device playing into it. When
// audio is disabled it returns Silent. On failure it returns Silent along
// with the error, so callers can log and carry on.
func Open(cfg Config) (Player, error) {
	if !cfg.Enabled {
		return Silent{}, nil
	}
	d := newDevice(cfg)
	if err := speaker.Init(d.rate, d.rate.N(50*time.Millisecond)); err != nil {
		return Silent{}, fmt.Errorf("audio: failed to init speaker: %w", err)
	}
	d.lock, d.unlock = speaker.Lock, speaker.Unlock
	speaker.Play(d.mixer)
	return d, nil
}

func (d *Device) Play(c Cue) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.pending = append(d.pending, c)
}

func (d *Device) StartMusic() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed || d.music != nil {
		return
	}
	buf := musicBuffer(d.rate)
	d.music = &beep.Ctrl{Streamer: beep.Loop(-1, buf.Streamer(0, buf.Len()))}

	d.lock()
	d.mixer.Add(withVolume(d.music, d.cfg.MusicVolume))
	d.unlock()
}

func (d *Device) Update() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed || len(d.pending) == 0 {
		return
	}

	streams := make([]beep.Streamer, 0, len(d.pending))
	for _, c := range d.pending {
		if s := cueStreamer(c, d.rate); s != nil {
			streams = append(streams, withVolume(s, d.cfg.Volume))
		}
	}
	d.pending = d.pending[:0]

	d.lock()
	d.mixer.Add(streams...)
	d.unlock()
}

func (d *Device) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.closed = true
	d.pending = nil

	d.lock()
	if d.music != nil {
		d.music.Paused = true
	}
	d.mixer.Clear()
	d.unlock()
}

var (
	_ Player = Silent{}
	_ Player = (*Device)(nil)
)
