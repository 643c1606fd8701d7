package crypto

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"math/big"
)

func ComputeHMAC256(toSign []byte, secretKey string) string {
	h := hmac.New(sha256.New, []byte(secretKey))
	h.Write(toSign)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// VerifyHMAC compares a computed signature against a provided one.
// It can also verify only the x first characters, that's enough entropy
// for short user-facing signatures.
func VerifyHMAC(secretKey string, toSign []byte, providedSign string, compareOnlyFirstCharacters int) (isValid bool) {

	signed := ComputeHMAC256(toSign, secretKey)

	if compareOnlyFirstCharacters == 0 || len(signed) < compareOnlyFirstCharacters {
		return hmac.Equal([]byte(signed), []byte(providedSign))
	}

	if len(providedSign) < compareOnlyFirstCharacters {
		return false
	}

	return hmac.Equal(
		[]byte(signed[:compareOnlyFirstCharacters]),
		[]byte(providedSign[:compareOnlyFirstCharacters]),
	)
}

// GenerateMagicCode returns a random numeric code of the given length,
// suitable for email sign-in.
func GenerateMagicCode(length int) (string, error) {
	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate magic code: %w", err)
		}
		code[i] = byte('0' + n.Int64())
	}
	return string(code), nil
}

// HashMagicCode creates an HMAC-SHA256 hash of the magic code with the provided secret key.
// This prevents plain-text storage of authentication codes in the database.
// Returns a 64-character hexadecimal string.
func HashMagicCode(code string, secretKey string) string {
	return ComputeHMAC256([]byte(code), secretKey)
}

// VerifyMagicCode performs a constant-time comparison between the input code and stored hash.
// Uses HMAC to hash the input code, then compares with the stored hash using hmac.Equal()
// to prevent timing attacks.
// Returns true if the codes match, false otherwise.
func VerifyMagicCode(inputCode string, storedHash string, secretKey string) bool {
	computedHash := HashMagicCode(inputCode, secretKey)

	return hmac.Equal([]byte(computedHash), []byte(storedHash))
}
