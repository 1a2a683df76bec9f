package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Wager Accounts
-- One row per user; created lazily on first bet or account lookup.
CREATE TABLE IF NOT EXISTS wager_accounts (
    user_id VARCHAR(64) PRIMARY KEY,
    zodiac_sign VARCHAR(16) NOT NULL DEFAULT '',
    total_points INTEGER NOT NULL DEFAULT 100,
    current_streak INTEGER NOT NULL DEFAULT 0,
    longest_streak INTEGER NOT NULL DEFAULT 0,
    total_games_played INTEGER NOT NULL DEFAULT 0,
    total_games_won INTEGER NOT NULL DEFAULT 0,
    last_daily_played_at TIMESTAMPTZ,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_wager_accounts_points
    ON wager_accounts (total_points DESC);

-- Settlement Records
-- Append-only audit trail; never updated after insert.
CREATE TABLE IF NOT EXISTS settlement_records (
    id UUID PRIMARY KEY,
    user_id VARCHAR(64) NOT NULL REFERENCES wager_accounts(user_id),
    challenge_id BIGINT NOT NULL,
    challenge_source VARCHAR(16) NOT NULL,
    points_bet INTEGER NOT NULL,
    chosen_option SMALLINT NOT NULL,
    is_correct BOOLEAN NOT NULL,
    points_delta INTEGER NOT NULL,
    luck_multiplier NUMERIC(4,2) NOT NULL,
    is_daily BOOLEAN NOT NULL,
    played_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_settlement_records_user
    ON settlement_records (user_id, played_at DESC);

-- Persisted Challenge Pool
-- Identities are small and sequential; option one always holds the correct
-- snippet for pool content.
CREATE TABLE IF NOT EXISTS challenges (
    id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    title VARCHAR(200) NOT NULL,
    description TEXT NOT NULL,
    tech_stack VARCHAR(50) NOT NULL,
    difficulty VARCHAR(20) NOT NULL,
    correct_snippet TEXT NOT NULL,
    buggy_snippet TEXT NOT NULL,
    explanation TEXT NOT NULL,
    topic VARCHAR(100),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`
