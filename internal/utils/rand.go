package utils

import (
	crand "crypto/rand"
	"fmt"
	"math/big"
)

// SecureRandomInt returns a random integer between min and max (inclusive)
// using crypto/rand. Used for ephemeral challenge identities and option
// shuffling, where a predictable sequence would let clients infer the
// correct option.
func SecureRandomInt(min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("min cannot be greater than max")
	}
	diff := big.NewInt(int64(max - min + 1))
	n, err := crand.Int(crand.Reader, diff)
	if err != nil {
		return 0, err
	}
	return int(n.Int64()) + min, nil
}
