package app

import (
	"fmt"
	"time"

	"github.com/form3tech-oss/jwt-go"

	"kickoff/internal/domain"
)

// ReceiptService issues signed receipts for finished matches so a result can
// be shared and verified outside the session that produced it.
type ReceiptService struct {
	secret string
	issuer string
}

// receiptValidity bounds how long a result receipt stays verifiable.
const receiptValidity = 24 * time.Hour

// NewReceiptService constructs a receipt service with the signing secret and
// issuer name.
func NewReceiptService(secret, issuer string) *ReceiptService {
	return &ReceiptService{
		secret: secret,
		issuer: issuer,
	}
}

// GenerateToken signs an HS256 token carrying the final result snapshot for
// the given user.
func (s *ReceiptService) GenerateToken(userID string, entry domain.Entry) (string, error) {
	if s == nil {
		return "", fmt.Errorf("receipt service is nil")
	}
	if userID == "" {
		return "", fmt.Errorf("user is required")
	}
	if s.secret == "" || s.issuer == "" {
		return "", fmt.Errorf("receipt config is incomplete")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"iss":            s.issuer,
		"sub":            userID,
		"iat":            now.Unix(),
		"exp":            now.Add(receiptValidity).Unix(),
		"name":           entry.Name,
		"chosen":         entry.ChosenID,
		"score_player":   entry.Score.Player,
		"score_opponent": entry.Score.Opponent,
		"health":         entry.Health,
		"finished_at":    entry.Time,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}
