package nakama

import "kickoff/internal/domain"

// Request/response payloads exchanged with clients over RPC. Field names
// mirror the web client's form and JSON keys.

// StartMatchRequest picks an identity and starting health for a new match.
type StartMatchRequest struct {
	Player     string `json:"player"`
	CustomName string `json:"custom_name"`
	Health     int    `json:"health"`
}

// AdjustHealthRequest applies a signed health delta.
type AdjustHealthRequest struct {
	Amount int `json:"amount"`
}

// RecordScoreRequest credits a goal to one side of the match.
type RecordScoreRequest struct {
	Who string `json:"who"`
	Inc int    `json:"inc"`
}

// PenaltyKickRequest aims a shootout kick at a goal side.
type PenaltyKickRequest struct {
	Side string `json:"side"`
}

// EndOfPlayResponse reports where play routes after regulation.
type EndOfPlayResponse struct {
	Decision string       `json:"decision"`
	Score    domain.Score `json:"score"`
}

// GameOverResponse carries the final result snapshot and, when the receipt
// service is configured, a signed receipt token.
type GameOverResponse struct {
	Entry   domain.Entry `json:"entry"`
	Receipt string       `json:"receipt,omitempty"`
}

// LeaderboardResponse lists persisted results most recent first.
type LeaderboardResponse struct {
	Entries []domain.Entry `json:"entries"`
}
