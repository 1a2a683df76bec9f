package domain

// Option slots presented to the client. Exactly one of the two holds the
// correct snippet for any challenge.
const (
	OptionOne = 1
	OptionTwo = 2
)

// Difficulty levels accepted by the challenge generator.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)
