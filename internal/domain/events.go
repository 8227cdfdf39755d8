package domain

// EventKind identifies the type of an in-match event record.
type EventKind string

const (
	// EventKindTackle records an opponent tackle and whether the ref flagged it.
	EventKindTackle EventKind = "tackle"
	// EventKindRefSees records a standalone off-ball referee check.
	EventKindRefSees EventKind = "refSees"
)

// EventRecord is an immutable audit entry in a match's event log.
// Records are append-only and are never read back to drive game logic.
type EventRecord struct {
	Kind   EventKind `json:"kind"`
	RefSaw bool      `json:"ref_saw"`
	Time   string    `json:"time"` // RFC3339 UTC
}
