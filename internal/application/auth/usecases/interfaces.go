package usecases

import "context"

type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// PasswordHasher abstracts the bcrypt dependency for testability.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenService issues and validates the JWT pair carried by clients.
type TokenService interface {
	Generate(userSID, companySID, role string) (*TokenPair, error)
	ValidateRefresh(token string) (userSID string, err error)
}
