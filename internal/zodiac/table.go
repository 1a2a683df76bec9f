package zodiac

import "strings"

// Zodiac sign constants
const (
	SignAries       = "aries"
	SignTaurus      = "taurus"
	SignGemini      = "gemini"
	SignCancer      = "cancer"
	SignLeo         = "leo"
	SignVirgo       = "virgo"
	SignLibra       = "libra"
	SignScorpio     = "scorpio"
	SignSagittarius = "sagittarius"
	SignCapricorn   = "capricorn"
	SignAquarius    = "aquarius"
	SignPisces      = "pisces"
)

// DefaultMultiplier is applied when the sign is unknown or empty.
const DefaultMultiplier = 1.00

// multipliers maps each sign to its hand-tuned luck multiplier.
// Values stay within [0.95, 1.15] so luck nudges payouts without
// dominating the base multiplier.
var multipliers = map[string]float64{
	SignAries:       1.05,
	SignTaurus:      0.98,
	SignGemini:      1.10,
	SignCancer:      0.95,
	SignLeo:         1.15,
	SignVirgo:       1.00,
	SignLibra:       1.02,
	SignScorpio:     1.08,
	SignSagittarius: 1.12,
	SignCapricorn:   0.97,
	SignAquarius:    1.06,
	SignPisces:      1.03,
}

// Multiplier returns the luck multiplier for a zodiac sign.
// Unknown signs get DefaultMultiplier.
func Multiplier(sign string) float64 {
	if m, ok := multipliers[strings.ToLower(strings.TrimSpace(sign))]; ok {
		return m
	}
	return DefaultMultiplier
}

// IsValid reports whether sign names one of the twelve known signs.
func IsValid(sign string) bool {
	_, ok := multipliers[strings.ToLower(strings.TrimSpace(sign))]
	return ok
}

// Signs returns all known signs. Useful for validation and seeding.
func Signs() []string {
	signs := make([]string, 0, len(multipliers))
	for s := range multipliers {
		signs = append(signs, s)
	}
	return signs
}
