package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher abstracts one-way password hashing so use cases stay
// algorithm-agnostic.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify reports whether password matches hash. A wrong password is
	// a false result, not an error.
	Verify(password, hash string) bool
}

// BcryptHasher implements PasswordHasher using bcrypt.
type BcryptHasher struct {
	cost int
}

// DefaultBcryptCost keeps a single hash in the tens of milliseconds on
// current hardware.
const DefaultBcryptCost = 12

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify relies on bcrypt's constant-time comparison; any mismatch or
// malformed hash reads as false.
func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
