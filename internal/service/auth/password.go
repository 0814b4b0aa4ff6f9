package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// fixedSalt is the salt shared by every account. The deployed service has
// always hashed with this constant; switching to per-account random salts
// would invalidate every stored hash, so the constant stays.
const fixedSalt = "tree-tap"

// Argon2id parameters. Changing these only affects new hashes: verification
// reads the parameters embedded in each stored hash.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

// PasswordHasher defines the interface for hashing plaintext passwords.
type PasswordHasher interface {
	// Hash returns an encoded hash of the password. The encoded form embeds
	// the algorithm parameters and salt needed to verify it later.
	Hash(password string) (string, error)
}

// PasswordVerifier defines the interface for comparing passwords.
type PasswordVerifier interface {
	// Compare compares a hashed password with its possible plaintext
	// equivalent. Returns nil on success, or an error on failure
	// (e.g., mismatch).
	Compare(hashedPassword, password string) error
}

// Argon2Hasher implements PasswordHasher and PasswordVerifier using Argon2id.
type Argon2Hasher struct {
	salt []byte
}

// NewArgon2Hasher creates a new Argon2Hasher.
func NewArgon2Hasher() *Argon2Hasher {
	return &Argon2Hasher{salt: []byte(fixedSalt)}
}

// Hash implements the PasswordHasher interface. The returned string is in
// the standard encoded form
// $argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt>$<key>.
func (h *Argon2Hasher) Hash(password string) (string, error) {
	key := argon2.IDKey([]byte(password), h.salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(h.salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
	return encoded, nil
}

// Compare implements the PasswordVerifier interface. A stored hash that
// cannot be decoded never verifies.
func (h *Argon2Hasher) Compare(hashedPassword, password string) error {
	salt, key, params, err := decodeHash(hashedPassword)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPasswordMismatch, err)
	}

	candidate := argon2.IDKey(
		[]byte(password),
		salt,
		params.time,
		params.memory,
		params.threads,
		uint32(len(key)),
	)

	if subtle.ConstantTimeCompare(key, candidate) != 1 {
		return ErrPasswordMismatch
	}
	return nil
}

// hashParams holds the Argon2id parameters embedded in an encoded hash.
type hashParams struct {
	memory  uint32
	time    uint32
	threads uint8
}

// decodeHash parses an encoded Argon2id hash into its salt, key, and
// parameters.
func decodeHash(encoded string) ([]byte, []byte, hashParams, error) {
	var params hashParams

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 {
		return nil, nil, params, errors.New("wrong number of segments")
	}
	if parts[1] != "argon2id" {
		return nil, nil, params, fmt.Errorf("unsupported algorithm %q", parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, params, fmt.Errorf("malformed version segment: %w", err)
	}
	if version != argon2.Version {
		return nil, nil, params, fmt.Errorf("unsupported argon2 version %d", version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.time, &params.threads); err != nil {
		return nil, nil, params, fmt.Errorf("malformed parameter segment: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, params, fmt.Errorf("malformed salt: %w", err)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, params, fmt.Errorf("malformed key: %w", err)
	}

	return salt, key, params, nil
}
