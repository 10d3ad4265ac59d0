package usecases

import "context"

type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// InviteMailer delivers the invite link to a new employee.
type InviteMailer interface {
	SendInviteEmail(to, name, token string) error
}

// PasswordHasher abstracts the bcrypt dependency for testability.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
