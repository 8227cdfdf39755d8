package app

import "kickoff/internal/domain"

// HealthResult reports the health remaining after an adjustment.
type HealthResult struct {
	Health int `json:"health"`
}

// TackleResult reports the outcome of an opponent tackle.
type TackleResult struct {
	Message string `json:"message"`
	Health  int    `json:"health"`
	RefSaw  bool   `json:"ref_sees"`
}

// RefSeesResult reports a standalone referee check.
type RefSeesResult struct {
	RefSaw bool `json:"ref_sees"`
}

// PenaltyResult reports the outcome of a single penalty kick.
type PenaltyResult struct {
	Scored bool         `json:"scored"`
	Keeper domain.Side  `json:"keeper"`
	Score  domain.Score `json:"score"`
	Health int          `json:"health"`
}

// Decision routes play after regulation time.
type Decision string

const (
	// DecisionShootout sends a tied match into the penalty shootout.
	DecisionShootout Decision = "shootout"
	// DecisionGameOver ends a match that regulation already decided.
	DecisionGameOver Decision = "game_over"
)
