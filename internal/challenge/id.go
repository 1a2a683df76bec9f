package challenge

import (
	"fmt"
	"strconv"
	"time"

	"github.com/devpoints/codecasino/internal/domain"
	"github.com/devpoints/codecasino/internal/utils"
)

// Identity namespace partition. The three ranges are fixed and must never
// overlap:
//
//	persisted:  1 .. 99_999            (assigned by the persistence layer)
//	ephemeral:  100_000 .. 9_999_999   (random, cache-only)
//	daily:      YYYYMMDD encoding, always >= 10_000_000
//
// ParseID is the only place that maps a raw integer back to a namespace;
// everything downstream carries the tagged ID.
const (
	persistedMaxID = 99_999
	ephemeralMinID = 100_000
	ephemeralMaxID = 9_999_999
	dailyMinID     = 10_000_000
)

// dailyIDLayout encodes a UTC date as an 8-digit integer.
const dailyIDLayout = "20060102"

// ID is a challenge identity tagged with its namespace.
type ID struct {
	Source domain.ChallengeSource
	Value  int64
}

// Int64 serializes the identity to its boundary integer form.
func (id ID) Int64() int64 { return id.Value }

// IsDaily reports whether the identity lives in the daily namespace.
func (id ID) IsDaily() bool { return id.Source == domain.SourceDaily }

// String implements fmt.Stringer for log output.
func (id ID) String() string {
	return fmt.Sprintf("%s:%d", id.Source, id.Value)
}

// PersistedID tags an identity assigned by the persistence layer.
func PersistedID(value int64) ID {
	return ID{Source: domain.SourcePersisted, Value: value}
}

// NewEphemeralID draws a random identity from the ephemeral range. Collisions
// within the cache retention window are practically impossible given the range
// size, and a collision only overwrites a cache entry, never corrupts the
// ledger.
func NewEphemeralID() (ID, error) {
	v, err := utils.SecureRandomInt(ephemeralMinID, ephemeralMaxID)
	if err != nil {
		return ID{}, fmt.Errorf("failed to draw ephemeral challenge id: %w", err)
	}
	return ID{Source: domain.SourceEphemeral, Value: int64(v)}, nil
}

// DailyID derives the deterministic identity for the UTC calendar day of t.
// Every caller within the same UTC day gets the same identity without
// coordination.
func DailyID(t time.Time) ID {
	encoded := t.UTC().Format(dailyIDLayout)
	// The layout guarantees 8 digits, so parsing cannot fail.
	v, _ := strconv.ParseInt(encoded, 10, 64)
	return ID{Source: domain.SourceDaily, Value: v}
}

// ParseID re-derives the namespace of a raw boundary integer. This is the
// single place where the numeric partition is interpreted.
func ParseID(value int64) (ID, error) {
	switch {
	case value >= 1 && value <= persistedMaxID:
		return ID{Source: domain.SourcePersisted, Value: value}, nil
	case value >= ephemeralMinID && value <= ephemeralMaxID:
		return ID{Source: domain.SourceEphemeral, Value: value}, nil
	case value >= dailyMinID:
		return ID{Source: domain.SourceDaily, Value: value}, nil
	default:
		return ID{}, fmt.Errorf("%w: id %d outside all namespaces", domain.ErrChallengeNotFound, value)
	}
}
