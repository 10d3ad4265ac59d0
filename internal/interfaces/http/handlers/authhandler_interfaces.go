package handlers

import (
	"context"

	"crewhub/internal/application/auth/usecases"
)

// Executor interfaces let tests swap the concrete use cases.

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd usecases.RegisterCommand) (*usecases.RegisterResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}

type RefreshTokenExecutor interface {
	Execute(ctx context.Context, cmd usecases.RefreshTokenCommand) (*usecases.TokenPair, error)
}
