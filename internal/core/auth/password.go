package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher hashes and verifies passwords with bcrypt. The digest
// embeds its own salt; comparison is constant-time.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher with the given bcrypt cost.
// Non-positive cost falls back to bcrypt.DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash derives a salted digest from plain. A hashing failure aborts the
// calling operation.
func (h *PasswordHasher) Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plain matches digest. A mismatch (or a garbage
// digest) is false, never an error, so callers treat it as a bad
// credential rather than a system failure.
func (h *PasswordHasher) Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
