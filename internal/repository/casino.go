package repository

import (
	"context"

	"github.com/devpoints/codecasino/internal/domain"
)

// Casino defines the persistence surface of the settlement engine.
type Casino interface {
	// GetAccount fetches a wager account, or nil when none exists yet.
	GetAccount(ctx context.Context, userID string) (*domain.WagerAccount, error)
	// CreateAccount persists a freshly defaulted account.
	CreateAccount(ctx context.Context, account *domain.WagerAccount) error
	// TopAccounts returns accounts ranked by total points for the leaderboard
	// projection.
	TopAccounts(ctx context.Context, limit int) ([]domain.WagerAccount, error)
	// ListSettlements returns a user's settlement history, newest first.
	ListSettlements(ctx context.Context, userID string, limit int) ([]domain.SettlementRecord, error)
	// SetZodiacSign updates the account's zodiac sign.
	SetZodiacSign(ctx context.Context, userID, sign string) error

	// BeginSettle opens the settlement commit transaction.
	BeginSettle(ctx context.Context) (SettleTx, error)
}

// SettleTx is the atomic commit point of a settlement: the account update and
// the settlement record land together or not at all.
type SettleTx interface {
	// GetAccountForUpdate fetches the account with a row lock, or nil when
	// none exists.
	GetAccountForUpdate(ctx context.Context, userID string) (*domain.WagerAccount, error)
	// UpdateAccount writes the mutated account state.
	UpdateAccount(ctx context.Context, account *domain.WagerAccount) error
	// InsertSettlement appends the immutable settlement record.
	InsertSettlement(ctx context.Context, record *domain.SettlementRecord) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
