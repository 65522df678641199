package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// FederatedPasswordSentinel is stored in place of a bcrypt hash for accounts
// created through an external identity provider. It is not a valid bcrypt
// hash, so CheckPassword can never succeed against it, but login must still
// reject such accounts before attempting a compare so the failure is uniform.
const FederatedPasswordSentinel = "federated-login"

func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func CheckPassword(hashed, plain string) bool {
	if hashed == FederatedPasswordSentinel {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
