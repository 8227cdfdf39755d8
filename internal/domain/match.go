package domain

// Phase represents the lifecycle stage of a penalty match.
type Phase string

const (
	// PhaseInPlay is the open-play state entered at kickoff.
	PhaseInPlay Phase = "in_play"
	// PhaseShootout is the tie-breaking penalty shootout state.
	PhaseShootout Phase = "shootout"
	// PhaseEnded is the state after the match is decided.
	PhaseEnded Phase = "ended"
)

// MaxHealth is the upper bound for player health. Health never leaves [0, MaxHealth].
const MaxHealth = 100

// Side identifies a goal side for penalty kicks and keeper dives.
type Side string

const (
	SideLeft   Side = "left"
	SideMiddle Side = "middle"
	SideRight  Side = "right"
)

// Sides lists the goal sides a keeper can dive toward.
var Sides = [3]Side{SideLeft, SideMiddle, SideRight}

// ValidSide reports whether s is a recognized goal side.
func ValidSide(s Side) bool {
	switch s {
	case SideLeft, SideMiddle, SideRight:
		return true
	default:
		return false
	}
}

// Score tracks goals for both sides of the match.
type Score struct {
	Player   int `json:"player"`
	Opponent int `json:"opponent"`
}

// Match holds the authoritative state for one player's match session.
// Health is kept here and nowhere else; every mutation goes through
// ApplyHealthDelta so the [0, MaxHealth] bound holds at all times.
type Match struct {
	PlayerName string        `json:"player_name"`
	ChosenID   string        `json:"chosen_player"`
	Phase      Phase         `json:"phase"`
	Health     int           `json:"health"`
	Score      Score         `json:"score"`
	Events     []EventRecord `json:"events"`
}

// ClampHealth bounds h to [0, MaxHealth].
func ClampHealth(h int) int {
	if h < 0 {
		return 0
	}
	if h > MaxHealth {
		return MaxHealth
	}
	return h
}

// ApplyHealthDelta adds delta to health, clamping the result into
// [0, MaxHealth], and returns the resulting health.
func (m *Match) ApplyHealthDelta(delta int) int {
	m.Health = ClampHealth(m.Health + delta)
	return m.Health
}

// Ended reports whether the match has been decided.
func (m *Match) Ended() bool {
	return m.Phase == PhaseEnded
}
