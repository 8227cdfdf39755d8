package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"kickoff/internal/app"
	"kickoff/internal/config"
	"kickoff/internal/domain"
	"kickoff/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// handlers binds the match operations to their transport dependencies.
type handlers struct {
	app      *app.Service
	sessions ports.SessionPort
	board    ports.LeaderboardPort
	receipts *app.ReceiptService // nil when receipts are not configured
}

// newHandlers wires the default adapters around the Nakama runtime module.
// env is the Nakama runtime environment used to configure receipts.
func newHandlers(nk runtime.NakamaModule, env map[string]string) *handlers {
	h := &handlers{
		app:      app.NewService(nil, nil),
		sessions: NewNakamaSessionAdapter(nk),
		board:    NewNakamaLeaderboardAdapter(nk, config.LeaderboardCapacity()),
	}
	if secret, ok := env[envReceiptSecret]; ok && secret != "" {
		h.receipts = app.NewReceiptService(secret, env[envReceiptIssuer])
	}
	return h
}

// RegisterRPCs registers the match operation RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer, h *handlers) error {
	rpcs := map[string]func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error){
		RpcStartMatch:   h.rpcStartMatch,
		RpcAdjustHealth: h.rpcAdjustHealth,
		RpcRecordScore:  h.rpcRecordScore,
		RpcTackleEvent:  h.rpcTackleEvent,
		RpcRefSees:      h.rpcRefSees,
		RpcEndOfPlay:    h.rpcEndOfPlay,
		RpcPenaltyKick:  h.rpcPenaltyKick,
		RpcGameOver:     h.rpcGameOver,
		RpcLeaderboard:  h.rpcLeaderboard,
		RpcReset:        h.rpcReset,
	}
	for id, fn := range rpcs {
		if err := initializer.RegisterRpc(id, fn); err != nil {
			return err
		}
	}
	return nil
}

// userIDFromContext extracts the authenticated caller's user id.
func userIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("rpc requires an authenticated user")
	}
	return userID, nil
}

func respond(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal response: %w", err)
	}
	return string(b), nil
}

func (h *handlers) rpcStartMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return "", err
	}

	var req StartMatchRequest
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			return "", fmt.Errorf("invalid start_match payload: %w", err)
		}
	}
	if req.Health == 0 {
		req.Health = config.DefaultHealth()
	}

	match, err := h.app.StartMatch(req.Player, req.CustomName, req.Health)
	if err != nil {
		return "", err
	}
	if err := h.sessions.Save(ctx, userID, match); err != nil {
		logger.Error("rpcStartMatch [User:%s]: %v", userID, err)
		return "", err
	}
	return respond(match)
}

func (h *handlers) rpcAdjustHealth(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req AdjustHealthRequest
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			return "", fmt.Errorf("invalid adjust_health payload: %w", err)
		}
	}

	return h.withMatch(ctx, logger, func(m *domain.Match) (any, error) {
		return h.app.AdjustHealth(m, req.Amount)
	})
}

func (h *handlers) rpcRecordScore(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req RecordScoreRequest
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			return "", fmt.Errorf("invalid record_score payload: %w", err)
		}
	}

	return h.withMatch(ctx, logger, func(m *domain.Match) (any, error) {
		return h.app.RecordScore(m, req.Who, req.Inc)
	})
}

func (h *handlers) rpcTackleEvent(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	return h.withMatch(ctx, logger, func(m *domain.Match) (any, error) {
		return h.app.ResolveTackle(m)
	})
}

func (h *handlers) rpcRefSees(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	return h.withMatch(ctx, logger, func(m *domain.Match) (any, error) {
		return h.app.ResolveRefSees(m)
	})
}

func (h *handlers) rpcEndOfPlay(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	return h.withMatch(ctx, logger, func(m *domain.Match) (any, error) {
		decision, err := h.app.CheckEndOfPlay(m)
		if err != nil {
			return nil, err
		}
		return EndOfPlayResponse{Decision: string(decision), Score: m.Score}, nil
	})
}

func (h *handlers) rpcPenaltyKick(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req PenaltyKickRequest
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			return "", fmt.Errorf("invalid penalty_kick payload: %w", err)
		}
	}

	return h.withMatch(ctx, logger, func(m *domain.Match) (any, error) {
		return h.app.ResolvePenaltyKick(m, domain.Side(req.Side))
	})
}

func (h *handlers) rpcGameOver(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return "", err
	}

	match, err := h.sessions.Load(ctx, userID)
	if err != nil {
		return "", err
	}

	entry := h.app.FinalizeGameOver(match)
	if err := h.board.Append(ctx, entry); err != nil {
		logger.Error("rpcGameOver [User:%s]: %v", userID, err)
		return "", err
	}
	if err := h.sessions.Save(ctx, userID, match); err != nil {
		logger.Error("rpcGameOver [User:%s]: %v", userID, err)
		return "", err
	}

	resp := GameOverResponse{Entry: entry}
	if h.receipts != nil {
		token, err := h.receipts.GenerateToken(userID, entry)
		if err != nil {
			// Receipts are best-effort; the persisted result is what matters.
			logger.Warn("rpcGameOver [User:%s]: receipt not issued: %v", userID, err)
		} else {
			resp.Receipt = token
		}
	}
	return respond(resp)
}

func (h *handlers) rpcLeaderboard(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	entries, err := h.board.LoadAll(ctx)
	if err != nil {
		logger.Error("rpcLeaderboard: %v", err)
		return "", err
	}

	// Stored oldest to newest; clients want most recent first.
	reversed := make([]domain.Entry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		reversed = append(reversed, entries[i])
	}
	return respond(LeaderboardResponse{Entries: reversed})
}

func (h *handlers) rpcReset(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return "", err
	}
	if err := h.sessions.Clear(ctx, userID); err != nil {
		logger.Error("rpcReset [User:%s]: %v", userID, err)
		return "", err
	}
	return "{}", nil
}

// withMatch loads the caller's match, runs op against it, persists the
// mutated state and responds with op's result.
func (h *handlers) withMatch(ctx context.Context, logger runtime.Logger, op func(*domain.Match) (any, error)) (string, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return "", err
	}

	match, err := h.sessions.Load(ctx, userID)
	if err != nil {
		return "", err
	}

	result, err := op(match)
	if err != nil {
		return "", err
	}
	if err := h.sessions.Save(ctx, userID, match); err != nil {
		logger.Error("withMatch [User:%s]: %v", userID, err)
		return "", err
	}
	return respond(result)
}
