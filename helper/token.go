package helper

import (
	"errors"
	"fmt"
	"time"

	"restaurant_manager/model"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenIssuer signs and verifies HS256 access tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (t *TokenIssuer) GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = tokenClaim.UserId
	claims["email"] = tokenClaim.Email
	claims["isAdmin"] = tokenClaim.IsAdmin
	claims["iat"] = t.now().Unix()
	claims["exp"] = t.now().Add(t.ttl).Unix()

	return token.SignedString(t.secret)
}

// ParseToken validates signature and expiry and returns the embedded claim.
func (t *TokenIssuer) ParseToken(tokenString string) (*model.TokenClaim, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	userId, ok := claims["userId"].(float64)
	if !ok || userId <= 0 {
		return nil, ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	isAdmin, _ := claims["isAdmin"].(bool)

	return &model.TokenClaim{
		UserId:  uint(userId),
		Email:   email,
		IsAdmin: isAdmin,
	}, nil
}

func (t *TokenIssuer) TTL() time.Duration {
	return t.ttl
}
