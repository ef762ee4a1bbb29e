package admin

import (
	"crypto/rand"
	"fmt"
)

// codeAlphabet omits the lookalike characters 0, O, 1 and I so access codes
// survive being read over the phone.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const codeLength = 8

// GenerateAccessCode returns a fresh 8-character gallery access code.
func GenerateAccessCode() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating access code: %w", err)
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}
