package challenge

import (
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/devpoints/codecasino/internal/domain"
	"github.com/devpoints/codecasino/internal/utils"
)

// Entry wraps a cached challenge with the answer-key mapping. CorrectOption
// is assigned once when the entry is created and never changes afterwards.
type Entry struct {
	Challenge     *domain.Challenge
	CorrectOption int
	IssuedAt      time.Time
	IsDaily       bool
}

// View builds the client-facing projection with the snippets placed in their
// shuffled slots. The correctness flag never leaves the cache.
func (e *Entry) View() *domain.ChallengeView {
	optionA, optionB := e.Challenge.CorrectSnippet, e.Challenge.BuggySnippet
	if e.CorrectOption == domain.OptionTwo {
		optionA, optionB = optionB, optionA
	}
	bonus := BonusMultiplierStandard
	if e.IsDaily {
		bonus = BonusMultiplierDaily
	}
	return &domain.ChallengeView{
		ID:              e.Challenge.ID,
		Title:           e.Challenge.Title,
		Description:     e.Challenge.Description,
		TechStack:       e.Challenge.TechStack,
		Difficulty:      e.Challenge.Difficulty,
		OptionA:         optionA,
		OptionB:         optionB,
		Topic:           e.Challenge.Topic,
		BonusMultiplier: bonus,
		IsDaily:         e.IsDaily,
	}
}

// Cache is the process-wide store mapping challenge identity to its answer
// key. It is constructed once at startup and injected, so tests can build
// isolated instances. All access is safe for concurrent use.
//
// Ephemeral entries live in a bounded LRU with a retention TTL. Daily entries
// additionally live in a longer-lived map keyed by UTC date, pruned to the
// last DailyRetentionDays days.
type Cache struct {
	entries *expirable.LRU[int64, *Entry]

	mu    sync.Mutex
	daily map[string]*Entry

	rng func(min, max int) (int, error)
	now func() time.Time
}

// NewCache creates a challenge cache with the given capacity and ephemeral
// retention window.
func NewCache(capacity int, retention time.Duration) *Cache {
	return &Cache{
		entries: expirable.NewLRU[int64, *Entry](capacity, nil, retention),
		daily:   make(map[string]*Entry),
		rng:     utils.SecureRandomInt,
		now:     time.Now,
	}
}

// Put stores a challenge under its identity, randomizing which option slot
// holds the correct snippet. Returns the created entry.
func (c *Cache) Put(id ID, ch *domain.Challenge) (*Entry, error) {
	coin, err := c.rng(0, 1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgShuffleFailed, err)
	}
	correct := domain.OptionOne
	if coin == 1 {
		correct = domain.OptionTwo
	}

	entry := &Entry{
		Challenge:     ch,
		CorrectOption: correct,
		IssuedAt:      c.now().UTC(),
		IsDaily:       id.IsDaily(),
	}

	c.entries.Add(id.Value, entry)

	if entry.IsDaily {
		c.mu.Lock()
		c.daily[dailyKey(id)] = entry
		c.pruneDailyLocked(c.now().UTC())
		c.mu.Unlock()
	}

	return entry, nil
}

// Get looks up the entry for an identity. Daily identities survive LRU
// eviction through the date-keyed store.
func (c *Cache) Get(id ID) (*Entry, bool) {
	if entry, ok := c.entries.Get(id.Value); ok {
		return entry, true
	}
	if id.IsDaily() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if entry, ok := c.daily[dailyKey(id)]; ok {
			return entry, true
		}
	}
	return nil, false
}

// Len returns the number of entries in the bounded store.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// DailyLen returns the number of retained daily entries.
func (c *Cache) DailyLen() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.daily)
}

// PruneDaily drops daily entries older than DailyRetentionDays relative to
// now. Called periodically by the cache prune worker and on every daily
// insert.
func (c *Cache) PruneDaily(now time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pruneDailyLocked(now.UTC())
}

func (c *Cache) pruneDailyLocked(now time.Time) int {
	cutoff := now.AddDate(0, 0, -DailyRetentionDays)
	pruned := 0
	for key, entry := range c.daily {
		if entry.IssuedAt.Before(cutoff) {
			delete(c.daily, key)
			pruned++
		}
	}
	return pruned
}

// dailyKey converts a daily identity (YYYYMMDD) to the date-keyed form.
func dailyKey(id ID) string {
	t, err := time.Parse(dailyIDLayout, fmt.Sprintf("%08d", id.Value))
	if err != nil {
		// Malformed daily value; fall back to the raw number so lookups
		// still agree between Put and Get.
		return fmt.Sprintf("%d", id.Value)
	}
	return t.Format(dailyKeyLayout)
}
