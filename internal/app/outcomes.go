package app

import (
	"math/rand"
	"time"

	"kickoff/internal/config"
	"kickoff/internal/domain"
)

// Resolver draws randomized in-match outcomes. Each call is an independent
// draw; implementations share no state between decisions. Tests swap in
// deterministic doubles without touching call sites.
type Resolver interface {
	// RefSees reports whether the referee flags the current foul.
	RefSees() bool
	// KeeperChoice returns the side the keeper dives toward.
	KeeperChoice() domain.Side
}

// randResolver draws outcomes from a math/rand source using the configured
// referee probability and a uniform keeper choice.
type randResolver struct {
	rng *rand.Rand
}

// NewRandResolver returns a Resolver backed by rng, or a time-seeded source
// when rng is nil.
func NewRandResolver(rng *rand.Rand) Resolver {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &randResolver{rng: rng}
}

func (r *randResolver) RefSees() bool {
	return r.rng.Float64() < config.RefSeesProbability()
}

func (r *randResolver) KeeperChoice() domain.Side {
	return domain.Sides[r.rng.Intn(len(domain.Sides))]
}
