package repository

import (
	"context"

	"github.com/devpoints/codecasino/internal/domain"
)

// ChallengePool defines access to the persisted challenge pool. Pool
// challenges carry small sequential identities assigned by the database and
// store their correct snippet canonically in option one.
type ChallengePool interface {
	// GetByID fetches a persisted challenge, or nil when the identity is
	// unknown.
	GetByID(ctx context.Context, id int64) (*domain.Challenge, error)
	// GetRandom returns a random persisted challenge, or nil when the pool is
	// empty. Used as the degraded-mode content source.
	GetRandom(ctx context.Context) (*domain.Challenge, error)
}
