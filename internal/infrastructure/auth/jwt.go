package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"crewhub/internal/shared/biztime"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

type Claims struct {
	UserSID    string    `json:"user_sid"`
	CompanySID string    `json:"company_sid"`
	Role       string    `json:"role"`
	TokenType  TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
	refreshExpDays   int
}

func NewJWTService(secret string, accessExpMinutes, refreshExpDays int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
		refreshExpDays:   refreshExpDays,
	}
}

func (s *JWTService) Generate(userSID, companySID, role string) (*TokenPair, error) {
	now := biztime.NowUTC()

	accessToken, err := s.sign(userSID, companySID, role, TokenTypeAccess, now,
		now.Add(time.Duration(s.accessExpMinutes)*time.Minute))
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshToken, err := s.sign(userSID, companySID, role, TokenTypeRefresh, now,
		now.Add(time.Duration(s.refreshExpDays)*24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessExpMinutes * 60),
	}, nil
}

func (s *JWTService) sign(userSID, companySID, role string, tokenType TokenType, now, exp time.Time) (string, error) {
	claims := &Claims{
		UserSID:    userSID,
		CompanySID: companySID,
		Role:       role,
		TokenType:  tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// VerifyAccess verifies the token and rejects refresh tokens presented as
// access tokens.
func (s *JWTService) VerifyAccess(tokenString string) (*Claims, error) {
	claims, err := s.Verify(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeAccess {
		return nil, fmt.Errorf("token is not an access token")
	}
	return claims, nil
}

// ValidateRefresh verifies a refresh token and returns the subject user SID.
func (s *JWTService) ValidateRefresh(tokenString string) (string, error) {
	claims, err := s.Verify(tokenString)
	if err != nil {
		return "", fmt.Errorf("invalid refresh token: %w", err)
	}
	if claims.TokenType != TokenTypeRefresh {
		return "", fmt.Errorf("token is not a refresh token")
	}
	return claims.UserSID, nil
}

// AccessExpMinutes returns the access token expiration time in minutes.
func (s *JWTService) AccessExpMinutes() int {
	return s.accessExpMinutes
}
