// Package hasher implements password hashing with bcrypt. The cost is
// tunable through configuration to keep offline brute force expensive;
// the salt is embedded in the digest so verification needs no extra
// storage.
package hasher

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/ndanyliw/tasklist-server/internal/model"
)

var _ model.PasswordHasher = (*Bcrypt)(nil)

// Bcrypt hashes passwords with the configured work factor.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a Bcrypt hasher. Costs outside the valid bcrypt
// range fall back to the library default.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash produces a salted one-way digest of password.
func (b *Bcrypt) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether password matches digest. Malformed digests
// fail closed: the comparison inside bcrypt is constant-time relative
// to digest correctness.
func (b *Bcrypt) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
