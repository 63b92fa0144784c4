// Package partnercode generates the short codes users share to link as partners.
package partnercode

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// Length of a partner code
	Length = 6

	// Alphabet codes are drawn from
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Generate returns a random partner code
func Generate() (string, error) {
	max := big.NewInt(int64(len(Alphabet)))
	code := make([]byte, Length)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate partner code: %w", err)
		}
		code[i] = Alphabet[n.Int64()]
	}
	return string(code), nil
}

// Valid reports whether s has the shape of a partner code
func Valid(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'A' && c <= 'Z') && !(c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}
