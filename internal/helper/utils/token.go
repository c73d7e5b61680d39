package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const passwordCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomPassword generates the initial credential for a provisioned account.
// Candidates never choose their first password; they reset it after login.
func RandomPassword(length int) (string, error) {
	if length < 8 {
		return "", errors.New("password length too short")
	}

	out := make([]byte, length)
	max := big.NewInt(int64(len(passwordCharset)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = passwordCharset[n.Int64()]
	}
	return string(out), nil
}
