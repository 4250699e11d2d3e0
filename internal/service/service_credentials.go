package service

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	scryptPrefix  = "scrypt"
	scryptR       = 8
	scryptP       = 1
	scryptKeyLen  = 64
	scryptSaltLen = 16

	// upper bound for N read back from a stored hash
	scryptMaxN = 1 << 20
)

// scryptCredentialStore encodes hashes as "scrypt:N:r:p$salt$hexdigest".
// Verify reads the parameters from the encoding, so raising N only affects
// new hashes.
type scryptCredentialStore struct {
	n int
}

// NewCredentialStore returns a scrypt-backed [CredentialStore] using cost
// parameter n for new hashes.
func NewCredentialStore(n int) CredentialStore {
	return &scryptCredentialStore{n: n}
}

func (s *scryptCredentialStore) Hash(plaintext string) (string, error) {
	saltBytes := make([]byte, scryptSaltLen)
	if _, err := rand.Read(saltBytes); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}
	salt := hex.EncodeToString(saltBytes)

	digest, err := scrypt.Key([]byte(plaintext), []byte(salt), s.n, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return fmt.Sprintf("%s:%d:%d:%d$%s$%s", scryptPrefix, s.n, scryptR, scryptP, salt, hex.EncodeToString(digest)), nil
}

func (s *scryptCredentialStore) Verify(plaintext, encoded string) bool {
	n, r, p, salt, want, ok := parseScryptHash(encoded)
	if !ok {
		return false
	}

	got, err := scrypt.Key([]byte(plaintext), []byte(salt), n, r, p, len(want))
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(got, want) == 1
}

func parseScryptHash(encoded string) (n, r, p int, salt string, digest []byte, ok bool) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 || parts[1] == "" {
		return 0, 0, 0, "", nil, false
	}

	params := strings.Split(parts[0], ":")
	if len(params) != 4 || params[0] != scryptPrefix {
		return 0, 0, 0, "", nil, false
	}

	var err error
	if n, err = strconv.Atoi(params[1]); err != nil || n < 2 || n > scryptMaxN || n&(n-1) != 0 {
		return 0, 0, 0, "", nil, false
	}
	if r, err = strconv.Atoi(params[2]); err != nil || r < 1 || r > 32 {
		return 0, 0, 0, "", nil, false
	}
	if p, err = strconv.Atoi(params[3]); err != nil || p < 1 || p > 16 {
		return 0, 0, 0, "", nil, false
	}

	digest, err = hex.DecodeString(parts[2])
	if err != nil || len(digest) == 0 {
		return 0, 0, 0, "", nil, false
	}

	return n, r, p, parts[1], digest, true
}
