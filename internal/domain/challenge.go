package domain

// ChallengeSource identifies which namespace a challenge identity belongs to.
// The source is resolved once when the identity is allocated and carried
// through settlement instead of being re-derived from the numeric value.
type ChallengeSource string

const (
	// SourcePersisted challenges live in the database pool with small
	// sequential identities assigned by the persistence layer.
	SourcePersisted ChallengeSource = "persisted"
	// SourceEphemeral challenges are generated ad hoc and exist only in the
	// process-wide cache under a random high-range identity.
	SourceEphemeral ChallengeSource = "ephemeral"
	// SourceDaily challenges are shared by all users for a UTC calendar day
	// under a date-encoded identity.
	SourceDaily ChallengeSource = "daily"
)

// Challenge is the full content unit including the answer key. It is immutable
// once created and must never be sent to clients as-is.
type Challenge struct {
	ID             int64           `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	TechStack      string          `json:"tech_stack"`
	Difficulty     string          `json:"difficulty"`
	CorrectSnippet string          `json:"correct_snippet"`
	BuggySnippet   string          `json:"buggy_snippet"`
	Explanation    string          `json:"explanation"`
	Topic          string          `json:"topic"`
	Source         ChallengeSource `json:"source"`
}

// ChallengeView is the client-facing projection of a challenge. The two
// snippets are presented in shuffled slots; which one is correct is only
// known to the challenge cache.
type ChallengeView struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	TechStack       string `json:"tech_stack"`
	Difficulty      string `json:"difficulty"`
	OptionA         string `json:"option_a"`
	OptionB         string `json:"option_b"`
	Topic           string `json:"topic"`
	BonusMultiplier int    `json:"bonus_multiplier"`
	IsDaily         bool   `json:"is_daily"`
}
