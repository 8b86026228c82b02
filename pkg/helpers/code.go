package helpers

import (
	"crypto/rand"
	"math/big"
)

const (
	codeMin  = 100000
	codeSpan = 900000
)

// GenVerificationCode returns a 6-digit login code drawn uniformly from
// [100000, 999999] using the crypto source.
func GenVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return "", err
	}
	return big.NewInt(codeMin + n.Int64()).String(), nil
}
