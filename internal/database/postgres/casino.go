package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devpoints/codecasino/internal/domain"
	"github.com/devpoints/codecasino/internal/repository"
)

// CasinoRepository implements the casino persistence surface for PostgreSQL
type CasinoRepository struct {
	db *pgxpool.Pool
}

// NewCasinoRepository creates a new CasinoRepository
func NewCasinoRepository(db *pgxpool.Pool) *CasinoRepository {
	return &CasinoRepository{db: db}
}

const accountColumns = `user_id, zodiac_sign, total_points, current_streak, longest_streak,
	total_games_played, total_games_won, last_daily_played_at`

func scanAccount(row pgx.Row) (*domain.WagerAccount, error) {
	var acc domain.WagerAccount
	err := row.Scan(
		&acc.UserID,
		&acc.ZodiacSign,
		&acc.TotalPoints,
		&acc.CurrentStreak,
		&acc.LongestStreak,
		&acc.TotalGamesPlayed,
		&acc.TotalGamesWon,
		&acc.LastDailyPlayedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan wager account: %w", err)
	}
	return &acc, nil
}

// GetAccount fetches a wager account, or nil when none exists
func (r *CasinoRepository) GetAccount(ctx context.Context, userID string) (*domain.WagerAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM wager_accounts WHERE user_id = $1`
	return scanAccount(r.db.QueryRow(ctx, query, userID))
}

// CreateAccount persists a freshly defaulted account
func (r *CasinoRepository) CreateAccount(ctx context.Context, account *domain.WagerAccount) error {
	query := `
		INSERT INTO wager_accounts (user_id, zodiac_sign, total_points, current_streak, longest_streak,
			total_games_played, total_games_won, last_daily_played_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(ctx, query,
		account.UserID,
		account.ZodiacSign,
		account.TotalPoints,
		account.CurrentStreak,
		account.LongestStreak,
		account.TotalGamesPlayed,
		account.TotalGamesWon,
		account.LastDailyPlayedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create wager account: %w", err)
	}
	return nil
}

// TopAccounts returns accounts ranked by total points
func (r *CasinoRepository) TopAccounts(ctx context.Context, limit int) ([]domain.WagerAccount, error) {
	query := `SELECT ` + accountColumns + `
		FROM wager_accounts
		ORDER BY total_points DESC, longest_streak DESC
		LIMIT $1`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.WagerAccount
	for rows.Next() {
		var acc domain.WagerAccount
		if err := rows.Scan(
			&acc.UserID,
			&acc.ZodiacSign,
			&acc.TotalPoints,
			&acc.CurrentStreak,
			&acc.LongestStreak,
			&acc.TotalGamesPlayed,
			&acc.TotalGamesWon,
			&acc.LastDailyPlayedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, acc)
	}
	return accounts, rows.Err()
}

// ListSettlements returns a user's settlement history, newest first
func (r *CasinoRepository) ListSettlements(ctx context.Context, userID string, limit int) ([]domain.SettlementRecord, error) {
	query := `
		SELECT id, user_id, challenge_id, challenge_source, points_bet, chosen_option,
			is_correct, points_delta, luck_multiplier, is_daily, played_at
		FROM settlement_records
		WHERE user_id = $1
		ORDER BY played_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query settlements: %w", err)
	}
	defer rows.Close()

	var records []domain.SettlementRecord
	for rows.Next() {
		var rec domain.SettlementRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.ChallengeID,
			&rec.ChallengeSource,
			&rec.PointsBet,
			&rec.ChosenOption,
			&rec.IsCorrect,
			&rec.PointsDelta,
			&rec.LuckMultiplier,
			&rec.IsDaily,
			&rec.PlayedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan settlement row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// SetZodiacSign updates the account's zodiac sign
func (r *CasinoRepository) SetZodiacSign(ctx context.Context, userID, sign string) error {
	query := `UPDATE wager_accounts SET zodiac_sign = $2, updated_at = NOW() WHERE user_id = $1`
	tag, err := r.db.Exec(ctx, query, userID, sign)
	if err != nil {
		return fmt.Errorf("failed to update zodiac sign: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// BeginSettle opens the settlement commit transaction
func (r *CasinoRepository) BeginSettle(ctx context.Context) (repository.SettleTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &settleTx{tx: tx}, nil
}

// settleTx implements repository.SettleTx over a pgx transaction
type settleTx struct {
	tx pgx.Tx
}

// GetAccountForUpdate fetches the account with a row lock
func (t *settleTx) GetAccountForUpdate(ctx context.Context, userID string) (*domain.WagerAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM wager_accounts WHERE user_id = $1 FOR UPDATE`
	return scanAccount(t.tx.QueryRow(ctx, query, userID))
}

// UpdateAccount writes the mutated account state
func (t *settleTx) UpdateAccount(ctx context.Context, account *domain.WagerAccount) error {
	query := `
		UPDATE wager_accounts
		SET zodiac_sign = $2,
			total_points = $3,
			current_streak = $4,
			longest_streak = $5,
			total_games_played = $6,
			total_games_won = $7,
			last_daily_played_at = $8,
			updated_at = NOW()
		WHERE user_id = $1
	`
	tag, err := t.tx.Exec(ctx, query,
		account.UserID,
		account.ZodiacSign,
		account.TotalPoints,
		account.CurrentStreak,
		account.LongestStreak,
		account.TotalGamesPlayed,
		account.TotalGamesWon,
		account.LastDailyPlayedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update wager account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// InsertSettlement appends the immutable settlement record
func (t *settleTx) InsertSettlement(ctx context.Context, record *domain.SettlementRecord) error {
	query := `
		INSERT INTO settlement_records (id, user_id, challenge_id, challenge_source,
			points_bet, chosen_option, is_correct, points_delta, luck_multiplier,
			is_daily, played_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := t.tx.Exec(ctx, query,
		record.ID,
		record.UserID,
		record.ChallengeID,
		record.ChallengeSource,
		record.PointsBet,
		record.ChosenOption,
		record.IsCorrect,
		record.PointsDelta,
		record.LuckMultiplier,
		record.IsDaily,
		record.PlayedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert settlement record: %w", err)
	}
	return nil
}

func (t *settleTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *settleTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if err != nil && errors.Is(err, pgx.ErrTxClosed) {
		return errors.New(domain.ErrMsgTxClosed)
	}
	return err
}
