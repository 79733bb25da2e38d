package core

// Phase is the match state machine shared by the games.
type Phase int

const (
	PhasePlaying  Phase = iota // initial
	PhaseGameOver              // terminal until restart
)

func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game_over"
	}
	return "playing"
}
