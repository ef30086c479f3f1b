package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Alphabets used by the handle generator.
const (
	// TokenAlphabet is the character set for session tokens.
	TokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_"

	// DigitAlphabet is the character set for discriminator codes.
	DigitAlphabet = "0123456789"

	// TokenLength is the length of a session token.
	TokenLength = 32
)

// RandomString returns a string of the given length drawn uniformly (with
// repetition) from the given alphabet.
//
// Randomness comes from crypto/rand: the result is used as a bearer
// credential, so it must be unpredictable to a remote client. A seeded
// pseudo-random generator is not acceptable here.
func RandomString(length int, alphabet string) (string, error) {
	if length <= 0 || alphabet == "" {
		return "", fmt.Errorf("invalid random string parameters: length=%d, alphabet size=%d", length, len(alphabet))
	}

	max := big.NewInt(int64(len(alphabet)))
	result := make([]byte, length)

	for i := range result {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("error reading random source: %w", err)
		}
		result[i] = alphabet[n.Int64()]
	}

	return string(result), nil
}

// RandomToken returns a fresh session token: [TokenLength] characters over
// [TokenAlphabet].
func RandomToken() (string, error) {
	return RandomString(TokenLength, TokenAlphabet)
}
