package delivery

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"strings"
)

const CodeLength = 6

var codeSpace = big.NewInt(1_000_000)

// NewCode returns a uniformly random 6-digit numeric code.
func NewCode() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	return fmt.Sprintf("%0*d", CodeLength, n.Int64()), nil
}

// NormalizeCode trims surrounding whitespace and requires exactly six ASCII
// digits. Nothing else is rewritten.
func NormalizeCode(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) != CodeLength {
		return "", ErrMalformedCode
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return "", ErrMalformedCode
		}
	}
	return s, nil
}

// MatchCode compares an already normalized code with the stored one.
func MatchCode(stored, supplied string) error {
	if subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) != 1 {
		return ErrCodeMismatch
	}
	return nil
}
