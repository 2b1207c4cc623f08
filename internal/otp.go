package internal

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// NewOTP returns a uniformly random code of the given digit count. The
// first digit is never zero, so a 6-digit code is always in
// [100000, 999999] and survives string/number round trips intact.
func NewOTP(digits int) (string, error) {
	if digits < 4 || digits > 10 {
		return "", errors.New("invalid otp digits")
	}

	low := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits-1)), nil)
	span := new(big.Int).Mul(low, big.NewInt(9))

	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return "", err
	}
	return n.Add(n, low).String(), nil
}
