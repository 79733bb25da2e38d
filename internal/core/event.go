package core

// Side identifies one of the two combatants.
type Side int

const (
	SideNone   Side = iota // No side (draw, or not applicable)
	SidePlayer             // Human player, left side
	SideCPU                // Computer opponent, right side
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideCPU:
		return "cpu"
	default:
		return "none"
	}
}

// EventKind classifies something that happened during a tick.
type EventKind int

const (
	EventWallBounce    EventKind = iota // Projectile reflected off top/bottom edge
	EventPaddleHit                      // Ball bounced off a paddle
	EventScored                         // A side scored a point (Side = scorer)
	EventShotFired                      // A shooter spawned a bullet (Side = shooter)
	EventTargetHit                      // A bullet hit a shooter (Side = victim)
	EventBulletBlocked                  // A bullet was absorbed by an obstacle
	EventBulletMissed                   // A bullet left the arena laterally
	EventGameOver                       // Match ended (Side = winner, SideNone = draw)
	EventRestart                        // Match re-initialized
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventWallBounce:
		return "wall_bounce"
	case EventPaddleHit:
		return "paddle_hit"
	case EventScored:
		return "scored"
	case EventShotFired:
		return "shot_fired"
	case EventTargetHit:
		return "target_hit"
	case EventBulletBlocked:
		return "bullet_blocked"
	case EventBulletMissed:
		return "bullet_missed"
	case EventGameOver:
		return "game_over"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event is a fire-and-forget notification emitted by a game tick.
// The platform turns events into sounds and log lines; games never wait on them.
type Event struct {
	Kind EventKind
	Side Side
}
