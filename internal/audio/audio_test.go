package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-duel/internal/core"
)

const testRate = beep.SampleRate(8000)

// drain streams s to the end and returns the number of samples produced.
func drain(t *testing.T, s beep.Streamer, limit int) int {
	t.Helper()
	buf := make([][2]float64, 256)
	total := 0
	for total < limit {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
	return total
}

func TestCueStreamLengths(t *testing.T) {
	for _, c := range []Cue{CueHit, CueWin, CueLose, CueShot} {
		t.Run(c.String(), func(t *testing.T) {
			s := cueStreamer(c, testRate)
			if s == nil {
				t.Fatal("no streamer for cue")
			}
			var length time.Duration
			for _, n := range cueNotes[c] {
				length += n.d
			}
			want := testRate.N(length)
			got := drain(t, s, want*2)
			// beep.Seq rounds each note separately.
			if diff := got - want; diff < -3 || diff > 3 {
				t.Errorf("cue produced %d samples, expected ~%d", got, want)
			}
		})
	}

	if cueStreamer(Cue(99), testRate) != nil {
		t.Error("unknown cue should have no streamer")
	}
}

func TestToneEnvelopeBounds(t *testing.T) {
	d := 60 * time.Millisecond
	s := tone(noteA4, d, WaveSquare, testRate)
	buf := make([][2]float64, testRate.N(d))
	n, _ := s.Stream(buf)

	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, expected silent attack start", buf[0][0])
	}
	for i := 0; i < n; i++ {
		if buf[i][0] < -1 || buf[i][0] > 1 || buf[i][0] != buf[i][1] {
			t.Fatalf("sample %d out of range or not mono: %v", i, buf[i])
		}
	}
	if last := buf[n-1][0]; last > 0.01 || last < -0.01 {
		t.Errorf("last sample = %v, expected released to ~0", last)
	}
}

func TestMusicLoops(t *testing.T) {
	buf := musicBuffer(testRate)
	barLen := buf.Len()
	if want := testRate.N(musicBeat) * len(musicBar); barLen != want {
		t.Fatalf("bar length = %d, expected %d", barLen, want)
	}

	loop := beep.Loop(-1, buf.Streamer(0, barLen))
	if got := drain(t, loop, barLen*3); got < barLen*3 {
		t.Errorf("loop stopped after %d samples", got)
	}
}

func TestCueForEvent(t *testing.T) {
	tests := []struct {
		ev   core.Event
		want Cue
		ok   bool
	}{
		{core.Event{Kind: core.EventWallBounce}, CueHit, true},
		{core.Event{Kind: core.EventPaddleHit, Side: core.SideCPU}, CueHit, true},
		{core.Event{Kind: core.EventScored, Side: core.SidePlayer}, CueWin, true},
		{core.Event{Kind: core.EventScored, Side: core.SideCPU}, CueLose, true},
		{core.Event{Kind: core.EventShotFired, Side: core.SidePlayer}, CueShot, true},
		{core.Event{Kind: core.EventGameOver, Side: core.SideNone}, 0, false},
		{core.Event{Kind: core.EventBulletMissed}, 0, false},
		{core.Event{Kind: core.EventRestart}, 0, false},
	}
	for _, tt := range tests {
		got, ok := CueForEvent(tt.ev)
		if got != tt.want || ok != tt.ok {
			t.Errorf("CueForEvent(%v/%v) = %v, %v; expected %v, %v", tt.ev.Kind, tt.ev.Side, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDeviceQueuesUntilUpdate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleRate = int(testRate)
	d := newDevice(cfg)

	d.Play(CueHit)
	d.Play(CueShot)
	if d.mixer.Len() != 0 {
		t.Fatal("Play must not touch the mixer before Update")
	}

	d.Update()
	if d.mixer.Len() != 2 {
		t.Errorf("mixer has %d streamers, expected 2", d.mixer.Len())
	}

	d.StartMusic()
	d.StartMusic()
	if d.mixer.Len() != 3 {
		t.Errorf("music should be added once, mixer has %d", d.mixer.Len())
	}

	d.Close()
	if d.mixer.Len() != 0 || !d.music.Paused {
		t.Error("Close should clear the mixer and pause the music")
	}
	d.Play(CueWin)
	d.Update()
	if d.mixer.Len() != 0 {
		t.Error("closed device should ignore cues")
	}
}

func TestOpenDisabledIsSilent(t *testing.T) {
	p, err := Open(Config{Enabled: false})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, ok := p.(Silent); !ok {
		t.Errorf("Open(disabled) = %T, expected Silent", p)
	}
	p.Play(CueHit)
	p.StartMusic()
	p.Update()
	p.Close()
}
