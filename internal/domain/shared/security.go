package shared

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	hashAlgorithm  = "pbkdf2_sha512"
	hashIterations = 10000
	hashKeyLength  = 64
	saltBytes      = 16
)

// HashPassword derives a versioned opaque hash in the format
// algorithm$iterations$salt$hash.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	saltHex := hex.EncodeToString(salt)

	key := pbkdf2.Key([]byte(password), []byte(saltHex), hashIterations, hashKeyLength, sha512.New)

	return strings.Join([]string{
		hashAlgorithm,
		strconv.Itoa(hashIterations),
		saltHex,
		hex.EncodeToString(key),
	}, "$"), nil
}

// VerifyPassword checks a plaintext password against a stored hash,
// honoring the iteration count and salt embedded in the hash itself.
func VerifyPassword(password, storedHash string) (bool, error) {
	parts := strings.Split(storedHash, "$")
	if len(parts) != 4 {
		return false, errors.New("stored hash has invalid format")
	}
	if parts[0] != hashAlgorithm {
		return false, errors.New("unsupported hash algorithm: " + parts[0])
	}

	iterations, err := strconv.Atoi(parts[1])
	if err != nil || iterations <= 0 {
		return false, errors.New("stored hash has invalid iteration count")
	}

	expected, err := hex.DecodeString(parts[3])
	if err != nil {
		return false, errors.New("stored hash is not valid hex")
	}

	key := pbkdf2.Key([]byte(password), []byte(parts[2]), iterations, len(expected), sha512.New)
	return subtle.ConstantTimeCompare(key, expected) == 1, nil
}

// GenerateSecureToken returns a random hex token.
func GenerateSecureToken(bytes int) (string, error) {
	if bytes <= 0 {
		bytes = 32
	}
	buf := make([]byte, bytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

var sanitizer = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
	`\`, "&#x5C;",
	"`", "&#96;",
)

// SanitizeInput neutralizes markup-significant characters in free text
// that will be rendered later. Defense measure, not a business rule.
func SanitizeInput(input string) string {
	if input == "" {
		return ""
	}
	return sanitizer.Replace(input)
}
