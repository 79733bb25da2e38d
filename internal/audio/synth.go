package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator produces a fixed-length raw wave.
type oscillator struct {
	freq  float64
	phase float64
	left  int
	wave  Wave
	rate  beep.SampleRate
	noise *rand.Rand
}

func newOscillator(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) *oscillator {
	return &oscillator{
		freq:  freq,
		left:  rate.N(d),
		wave:  wave,
		rate:  rate,
		noise: rand.New(rand.NewSource(int64(freq*1000) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.left <= 0 {
		return 0, false
	}
	for i := range samples {
		if o.left <= 0 {
			return i, true
		}

		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		case WaveNoise:
			v = o.noise.Float64()*2 - 1
		}
		samples[i][0], samples[i][1] = v, v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.left--
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	s       beep.Streamer
	pos     int
	total   int
	attack  int
	release int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{
		s:       s,
		total:   rate.N(d),
		attack:  rate.N(attack),
		release: rate.N(release),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.attack > 0 && e.pos < e.attack {
			gain = float64(e.pos) / float64(e.attack)
		}
		if rem := e.total - e.pos; e.release > 0 && rem < e.release {
			gain = math.Max(float64(rem)/float64(e.release), 0)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// withVolume scales a stream by a linear gain. Zero or less is silent.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// tone is a single enveloped note.
func tone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return newEnvelope(newOscillator(freq, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}

// note names used by the cues and the background loop (Hz).
const (
	noteA2 = 110.00
	noteC3 = 130.81
	noteE3 = 164.81
	noteG3 = 196.00
	noteA4 = 440.00
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
)

// cueNote is one enveloped note of a cue.
type cueNote struct {
	freq float64
	d    time.Duration
	wave Wave
}

// cueNotes lists the notes each cue plays in order.
var cueNotes = map[Cue][]cueNote{
	CueHit: {{noteA4, 60 * time.Millisecond, WaveSquare}},
	CueWin: {
		{noteC5, 90 * time.Millisecond, WaveSine},
		{noteE5, 90 * time.Millisecond, WaveSine},
		{noteG5, 160 * time.Millisecond, WaveSine},
	},
	CueLose: {
		{noteG3, 120 * time.Millisecond, WaveSaw},
		{noteE3, 120 * time.Millisecond, WaveSaw},
		{noteC3, 220 * time.Millisecond, WaveSaw},
	},
	CueShot: {{0, 80 * time.Millisecond, WaveNoise}},
}

// cueStreamer synthesizes the one-shot sound for a cue.
func cueStreamer(c Cue, rate beep.SampleRate) beep.Streamer {
	notes := cueNotes[c]
	if len(notes) == 0 {
		return nil
	}
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = tone(n.freq, n.d, n.wave, rate)
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return beep.Seq(parts...)
}

// musicBar is the background bassline, one beat per entry.
var musicBar = []float64{noteA2, noteA2, noteC3, noteE3, noteA2, noteA2, noteG3, noteE3}

const musicBeat = 250 * time.Millisecond

// musicBuffer renders one bar of the background track into a seekable buffer.
func musicBuffer(rate beep.SampleRate) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	for _, f := range musicBar {
		buf.Append(tone(f, musicBeat, WaveSine, rate))
	}
	return buf
}
