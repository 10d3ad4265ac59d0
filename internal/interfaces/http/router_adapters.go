package http

import (
	authUC "crewhub/internal/application/auth/usecases"
	"crewhub/internal/infrastructure/auth"
)

// jwtServiceAdapter bridges the infrastructure JWT service to the token
// port the auth use cases expect. ValidateRefresh passes through via
// the embedded service.
type jwtServiceAdapter struct {
	*auth.JWTService
}

func (a *jwtServiceAdapter) Generate(userSID, companySID, role string) (*authUC.TokenPair, error) {
	pair, err := a.JWTService.Generate(userSID, companySID, role)
	if err != nil {
		return nil, err
	}
	return &authUC.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
