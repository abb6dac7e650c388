package teacher

import "golang.org/x/crypto/bcrypt"

// PasswordHasher derives and checks bcrypt hashes. Each Hash call salts
// freshly, so equal inputs produce distinct hashes that both verify.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher at bcrypt's default cost (10).
func NewPasswordHasher() PasswordHasher {
	return PasswordHasher{cost: bcrypt.DefaultCost}
}

// Hash derives a salted one-way hash of the plaintext.
func (h PasswordHasher) Hash(plaintext string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Verify reports whether plaintext matches the stored hash. A malformed
// hash verifies as false rather than erroring.
func (h PasswordHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
