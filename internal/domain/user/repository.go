package user

import "context"

type Repository interface {
	Save(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	GetByID(ctx context.Context, userID uint) (*User, error)
	GetBySID(ctx context.Context, sid string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
