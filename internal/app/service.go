package app

import (
	"errors"
	"strings"
	"time"

	"kickoff/internal/config"
	"kickoff/internal/domain"
)

// Service contains the penalty match use-cases operating on domain state.
// Operations take the current match explicitly and mutate it in place; the
// caller owns loading and persisting the state around each call.
type Service struct {
	resolver Resolver
	now      func() time.Time
}

// NewService constructs a Service with the provided resolver and clock.
// resolver may be nil to use a time-seeded random resolver; now may be nil
// to use time.Now.
func NewService(resolver Resolver, now func() time.Time) *Service {
	if resolver == nil {
		resolver = NewRandResolver(nil)
	}
	if now == nil {
		now = time.Now
	}
	return &Service{resolver: resolver, now: now}
}

var (
	ErrMatchOver     = errors.New("match already over")
	ErrNotInPlay     = errors.New("match not in open play")
	ErrNotInShootout = errors.New("match not in penalty shootout")
	ErrInvalidSide   = errors.New("unknown kick side")
	ErrEmptyChoice   = errors.New("player choice is required")
)

const (
	// ChoiceCustom is the player choice token that selects a custom name.
	ChoiceCustom = "custom"
	// IdentityMyself is the chosen identity recorded for custom names.
	IdentityMyself = "Myself"

	// ScorerPlayer and ScorerOpponent are the recognized scoring keys.
	ScorerPlayer   = "player"
	ScorerOpponent = "opponent"
)

// Messages returned with tackle outcomes.
const (
	MsgFoulSeen   = "Foul! Ref saw the tackle, penalty awarded."
	MsgFoulUnseen = "Opponent tackled you, ref did not see. Health reduced."
)

// StartMatch resolves the effective player identity and creates a fresh
// match in open play. A custom name wins only when choice is ChoiceCustom
// and the trimmed name is non-empty; otherwise the preset token is used as
// both name and identity. The initial health is clamped into bounds.
func (s *Service) StartMatch(choice, customName string, health int) (*domain.Match, error) {
	name := strings.TrimSpace(customName)
	playerName := strings.TrimSpace(choice)
	chosen := playerName
	if playerName == ChoiceCustom && name != "" {
		playerName = name
		chosen = IdentityMyself
	}
	if playerName == "" {
		return nil, ErrEmptyChoice
	}

	return &domain.Match{
		PlayerName: playerName,
		ChosenID:   chosen,
		Phase:      domain.PhaseInPlay,
		Health:     domain.ClampHealth(health),
		Score:      domain.Score{},
		Events:     []domain.EventRecord{},
	}, nil
}

// AdjustHealth applies a clamped health delta. Legal in any non-terminal phase.
func (s *Service) AdjustHealth(m *domain.Match, delta int) (HealthResult, error) {
	if m.Ended() {
		return HealthResult{}, ErrMatchOver
	}
	return HealthResult{Health: m.ApplyHealthDelta(delta)}, nil
}

// RecordScore increments the score for a recognized side. Unrecognized keys
// are ignored rather than rejected. An increment of zero or less falls back
// to the configured default.
func (s *Service) RecordScore(m *domain.Match, who string, inc int) (domain.Score, error) {
	if m.Ended() {
		return domain.Score{}, ErrMatchOver
	}
	if inc <= 0 {
		inc = config.ScoreIncrement()
	}
	switch who {
	case ScorerPlayer:
		m.Score.Player += inc
	case ScorerOpponent:
		m.Score.Opponent += inc
	}
	return m.Score, nil
}

// ResolveTackle draws a referee-sees outcome for an opponent tackle. A seen
// tackle awards a foul with no health cost; an unseen one costs health. The
// draw is always recorded in the event log. Legal only in open play.
func (s *Service) ResolveTackle(m *domain.Match) (TackleResult, error) {
	if m.Ended() {
		return TackleResult{}, ErrMatchOver
	}
	if m.Phase != domain.PhaseInPlay {
		return TackleResult{}, ErrNotInPlay
	}

	refSaw := s.resolver.RefSees()
	result := TackleResult{RefSaw: refSaw, Health: m.Health, Message: MsgFoulSeen}
	if !refSaw {
		result.Message = MsgFoulUnseen
		result.Health = m.ApplyHealthDelta(-config.TacklePenalty())
	}

	m.Events = append(m.Events, domain.EventRecord{
		Kind:   domain.EventKindTackle,
		RefSaw: refSaw,
		Time:   s.timestamp(),
	})
	return result, nil
}

// ResolveRefSees performs a standalone referee check, independent of any
// tackle draw. Legal in any non-terminal phase.
func (s *Service) ResolveRefSees(m *domain.Match) (RefSeesResult, error) {
	if m.Ended() {
		return RefSeesResult{}, ErrMatchOver
	}

	refSaw := s.resolver.RefSees()
	m.Events = append(m.Events, domain.EventRecord{
		Kind:   domain.EventKindRefSees,
		RefSaw: refSaw,
		Time:   s.timestamp(),
	})
	return RefSeesResult{RefSaw: refSaw}, nil
}

// CheckEndOfPlay routes the match after regulation: a level score moves play
// into the penalty shootout, an unequal score decides the match outright.
func (s *Service) CheckEndOfPlay(m *domain.Match) (Decision, error) {
	if m.Ended() {
		return "", ErrMatchOver
	}
	if m.Score.Player == m.Score.Opponent {
		m.Phase = domain.PhaseShootout
		return DecisionShootout, nil
	}
	m.Phase = domain.PhaseEnded
	return DecisionGameOver, nil
}

// ResolvePenaltyKick resolves one shootout kick against an independent,
// uniform keeper draw. A beaten keeper scores for the player; a save costs
// health. Kicks keep accumulating score and health changes until the caller
// routes to game over; the shootout itself never terminates a match.
func (s *Service) ResolvePenaltyKick(m *domain.Match, side domain.Side) (PenaltyResult, error) {
	if !domain.ValidSide(side) {
		return PenaltyResult{}, ErrInvalidSide
	}
	if m.Ended() {
		return PenaltyResult{}, ErrMatchOver
	}
	if m.Phase != domain.PhaseShootout {
		return PenaltyResult{}, ErrNotInShootout
	}

	keeper := s.resolver.KeeperChoice()
	scored := side != keeper
	if scored {
		m.Score.Player += config.ScoreIncrement()
	} else {
		m.ApplyHealthDelta(-config.MissPenalty())
	}

	return PenaltyResult{
		Scored: scored,
		Keeper: keeper,
		Score:  m.Score,
		Health: m.Health,
	}, nil
}

// FinalizeGameOver moves the match to its terminal phase from any state and
// returns the immutable result snapshot to persist on the leaderboard.
func (s *Service) FinalizeGameOver(m *domain.Match) domain.Entry {
	m.Phase = domain.PhaseEnded
	return domain.Entry{
		Name:     m.PlayerName,
		ChosenID: m.ChosenID,
		Score:    m.Score,
		Health:   m.Health,
		Time:     s.timestamp(),
	}
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}
