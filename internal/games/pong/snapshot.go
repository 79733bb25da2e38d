package pong

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/vovakirdan/tui-duel/internal/core"
)

// Snapshot is a fixed-size copy of the rally state. Floats are stored
// scaled by 1000 so two runs can be compared exactly.
type Snapshot struct {
	Tick      uint64
	BallX     int64
	BallY     int64
	BallDX    int64
	BallDY    int64
	BallSpeed int64
	PlayerY   int64
	CPUY      int64
	Player    int64
	CPU       int64
	GameOver  bool
}

func milli(v float64) int64 {
	return int64(math.Round(v * 1000))
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		BallX:     milli(g.ball.Pos.X),
		BallY:     milli(g.ball.Pos.Y),
		BallDX:    milli(g.ball.Dir.X),
		BallDY:    milli(g.ball.Dir.Y),
		BallSpeed: milli(g.ball.Speed),
		PlayerY:   milli(g.player.Pos.Y),
		CPUY:      milli(g.cpu.Pos.Y),
		Player:    int64(g.playerScore),
		CPU:       int64(g.cpuScore),
		GameOver:  g.phase == core.PhaseGameOver,
	}
}

// Hash returns an FNV-1a digest of the snapshot.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	_ = binary.Write(h, binary.LittleEndian, s)
	return h.Sum64()
}
