package gunfight

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/physics"
)

// ShooterState is the scaled position and resources of one shooter.
type ShooterState struct {
	X, Y    int64
	Bullets int64
	Lives   int64
}

// BulletState is one live bullet, identified by its pool slot.
type BulletState struct {
	Slot   int64
	X, Y   int64
	DX, DY int64
	Owner  int64
}

// Snapshot is a copy of the duel state. Floats are stored scaled by 1000 so
// two runs can be compared exactly.
type Snapshot struct {
	Tick      uint64
	Player    ShooterState
	CPU       ShooterState
	CPUTimer  int64
	GameOver  bool
	Obstacles []int64 // y position and speed per obstacle
	Bullets   []BulletState
}

func milli(v float64) int64 {
	return int64(math.Round(v * 1000))
}

func shooterState(s *physics.Shooter) ShooterState {
	return ShooterState{
		X:       milli(s.Pos.X),
		Y:       milli(s.Pos.Y),
		Bullets: int64(s.BulletsLeft),
		Lives:   int64(s.Lives),
	}
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     g.tick,
		Player:   shooterState(g.player),
		CPU:      shooterState(g.cpu),
		CPUTimer: milli(g.cpuTimer),
		GameOver: g.phase == core.PhaseGameOver,
	}
	for _, o := range g.obstacles {
		snap.Obstacles = append(snap.Obstacles, milli(o.Pos.Y), milli(o.Speed))
	}
	g.bullets.Each(func(i int, b *physics.Bullet) {
		snap.Bullets = append(snap.Bullets, BulletState{
			Slot:  int64(i),
			X:     milli(b.Pos.X),
			Y:     milli(b.Pos.Y),
			DX:    milli(b.Dir.X),
			DY:    milli(b.Dir.Y),
			Owner: int64(b.Owner),
		})
	})
	return snap
}

// Hash returns an FNV-1a digest of the snapshot.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	_ = binary.Write(h, binary.LittleEndian, s.Tick)
	_ = binary.Write(h, binary.LittleEndian, s.Player)
	_ = binary.Write(h, binary.LittleEndian, s.CPU)
	_ = binary.Write(h, binary.LittleEndian, s.CPUTimer)
	_ = binary.Write(h, binary.LittleEndian, s.GameOver)
	_ = binary.Write(h, binary.LittleEndian, s.Obstacles)
	_ = binary.Write(h, binary.LittleEndian, s.Bullets)
	return h.Sum64()
}
