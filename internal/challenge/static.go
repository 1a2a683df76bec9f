package challenge

import (
	"context"
	"strings"
	"time"

	"github.com/devpoints/codecasino/internal/domain"
	"github.com/devpoints/codecasino/internal/utils"
)

// StaticGenerator serves challenges from a built-in set. It is the default
// collaborator when no AI-backed generator is configured, and doubles as the
// degraded-mode content source in tests.
type StaticGenerator struct {
	set []domain.Challenge
	now func() time.Time
}

// NewStaticGenerator creates a generator over the built-in challenge set.
func NewStaticGenerator() *StaticGenerator {
	return &StaticGenerator{set: builtinChallenges, now: time.Now}
}

// Generate picks a random challenge, preferring ones matching the requested
// tech stack. Returns (nil, nil) when the set is empty.
func (g *StaticGenerator) Generate(ctx context.Context, techStack, difficulty string) (*domain.Challenge, error) {
	candidates := make([]domain.Challenge, 0, len(g.set))
	for _, ch := range g.set {
		if techStack == "" || strings.EqualFold(ch.TechStack, techStack) {
			candidates = append(candidates, ch)
		}
	}
	if len(candidates) == 0 {
		candidates = g.set
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	idx, err := utils.SecureRandomInt(0, len(candidates)-1)
	if err != nil {
		return nil, err
	}
	ch := candidates[idx]
	if difficulty != "" {
		ch.Difficulty = difficulty
	}
	return &ch, nil
}

// GenerateDaily picks today's challenge deterministically from the set so
// every process agrees on the content without coordination.
func (g *StaticGenerator) GenerateDaily(ctx context.Context) (*domain.Challenge, error) {
	if len(g.set) == 0 {
		return nil, nil
	}
	ch := g.set[g.now().UTC().YearDay()%len(g.set)]
	return &ch, nil
}

// builtinChallenges is the shipped challenge set. Persisted-pool content is
// seeded separately; these never carry identities.
var builtinChallenges = []domain.Challenge{
	{
		Title:          "Off by one",
		Description:    "One of these loops prints every element exactly once. Which?",
		TechStack:      "go",
		Difficulty:     domain.DifficultyEasy,
		CorrectSnippet: "for i := 0; i < len(xs); i++ {\n\tfmt.Println(xs[i])\n}",
		BuggySnippet:   "for i := 0; i <= len(xs); i++ {\n\tfmt.Println(xs[i])\n}",
		Explanation:    "Using <= walks one past the end of the slice and panics with an index out of range.",
		Topic:          "loops",
	},
	{
		Title:          "Deferred surprise",
		Description:    "One of these closes the file on every path. Which?",
		TechStack:      "go",
		Difficulty:     domain.DifficultyMedium,
		CorrectSnippet: "f, err := os.Open(name)\nif err != nil {\n\treturn err\n}\ndefer f.Close()",
		BuggySnippet:   "f, err := os.Open(name)\ndefer f.Close()\nif err != nil {\n\treturn err\n}",
		Explanation:    "Deferring before the error check dereferences a nil file handle when Open fails.",
		Topic:          "error-handling",
	},
	{
		Title:          "Equality in JavaScript",
		Description:    "One of these checks reliably detects the absence of a value. Which?",
		TechStack:      "javascript",
		Difficulty:     domain.DifficultyEasy,
		CorrectSnippet: "if (value === undefined || value === null) {\n  return fallback;\n}",
		BuggySnippet:   "if (value == false) {\n  return fallback;\n}",
		Explanation:    "Loose equality against false also matches 0 and empty strings, silently discarding valid values.",
		Topic:          "equality",
	},
	{
		Title:          "Mutable default argument",
		Description:    "One of these Python functions returns a fresh list every call. Which?",
		TechStack:      "python",
		Difficulty:     domain.DifficultyMedium,
		CorrectSnippet: "def collect(item, acc=None):\n    if acc is None:\n        acc = []\n    acc.append(item)\n    return acc",
		BuggySnippet:   "def collect(item, acc=[]):\n    acc.append(item)\n    return acc",
		Explanation:    "A mutable default is evaluated once at definition time, so every call shares the same list.",
		Topic:          "defaults",
	},
	{
		Title:          "Parameterized or not",
		Description:    "One of these queries is safe against injection. Which?",
		TechStack:      "sql",
		Difficulty:     domain.DifficultyHard,
		CorrectSnippet: "db.QueryRow(\"SELECT id FROM users WHERE name = $1\", name)",
		BuggySnippet:   "db.QueryRow(\"SELECT id FROM users WHERE name = '\" + name + \"'\")",
		Explanation:    "Concatenating user input into SQL lets crafted names escape the literal and run arbitrary statements.",
		Topic:          "sql-injection",
	},
	{
		Title:          "Goroutine capture",
		Description:    "One of these prints each value of the slice. Which?",
		TechStack:      "go",
		Difficulty:     domain.DifficultyHard,
		CorrectSnippet: "for _, v := range xs {\n\tv := v\n\tgo func() { fmt.Println(v) }()\n}",
		BuggySnippet:   "for _, v := range xs {\n\tgo func() { fmt.Println(v) }()\n}",
		Explanation:    "Before Go 1.22 the loop variable is shared across iterations, so the goroutines mostly observe the final value.",
		Topic:          "concurrency",
	},
}
