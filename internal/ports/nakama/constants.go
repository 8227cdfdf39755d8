package nakama

// RPC ids clients call for each match operation.
const (
	RpcStartMatch   = "start_match"
	RpcAdjustHealth = "adjust_health"
	RpcRecordScore  = "record_score"
	RpcTackleEvent  = "tackle_event"
	RpcRefSees      = "ref_sees"
	RpcEndOfPlay    = "end_of_play"
	RpcPenaltyKick  = "penalty_kick"
	RpcGameOver     = "game_over"
	RpcLeaderboard  = "leaderboard"
	RpcReset        = "reset"
)

// Storage locations for session blobs and the shared leaderboard object.
const (
	sessionCollection = "match"
	sessionKey        = "state"

	leaderboardCollection = "leaderboard"
	leaderboardKey        = "recent"
)

// Nakama runtime env keys configuring the result receipt service.
const (
	envReceiptSecret = "kickoff_receipt_secret"
	envReceiptIssuer = "kickoff_receipt_issuer"
)

// gameConfigPath is the data-folder path the module loads its config from.
const gameConfigPath = "data/game_config.json"
