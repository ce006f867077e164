package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrInvalidPassword  = errors.New("invalid password")
)

const DefaultCost = bcrypt.DefaultCost

// Hasher lets tests trade bcrypt cost for speed.
type Hasher struct {
	Cost int
}

func NewHasher() Hasher {
	return Hasher{Cost: DefaultCost}
}

func (h Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrInvalidPassword
	}
	cost := h.Cost
	if cost == 0 {
		cost = DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", ErrHashingFailed
	}
	return string(hashed), nil
}

// Compare returns ErrComparisonFailed on a mismatch and the bcrypt error for a malformed hash.
func (h Hasher) Compare(hashed, password string) error {
	if hashed == "" || password == "" {
		return ErrInvalidPassword
	}
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrComparisonFailed
	}
	return err
}
