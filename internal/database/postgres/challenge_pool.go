package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devpoints/codecasino/internal/domain"
)

// ChallengePoolRepository implements the persisted challenge pool for PostgreSQL
type ChallengePoolRepository struct {
	db *pgxpool.Pool
}

// NewChallengePoolRepository creates a new ChallengePoolRepository
func NewChallengePoolRepository(db *pgxpool.Pool) *ChallengePoolRepository {
	return &ChallengePoolRepository{db: db}
}

const challengeColumns = `id, title, description, tech_stack, difficulty,
	correct_snippet, buggy_snippet, explanation, topic`

func scanChallenge(row pgx.Row) (*domain.Challenge, error) {
	var ch domain.Challenge
	var topic *string
	err := row.Scan(
		&ch.ID,
		&ch.Title,
		&ch.Description,
		&ch.TechStack,
		&ch.Difficulty,
		&ch.CorrectSnippet,
		&ch.BuggySnippet,
		&ch.Explanation,
		&topic,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan challenge: %w", err)
	}
	if topic != nil {
		ch.Topic = *topic
	}
	ch.Source = domain.SourcePersisted
	return &ch, nil
}

// GetByID fetches a persisted challenge, or nil when the identity is unknown
func (r *ChallengePoolRepository) GetByID(ctx context.Context, id int64) (*domain.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges WHERE id = $1`
	return scanChallenge(r.db.QueryRow(ctx, query, id))
}

// GetRandom returns a random persisted challenge, or nil when the pool is empty
func (r *ChallengePoolRepository) GetRandom(ctx context.Context) (*domain.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges ORDER BY random() LIMIT 1`
	return scanChallenge(r.db.QueryRow(ctx, query))
}
