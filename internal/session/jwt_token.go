package session

import (
	"time"

	"github.com/dgrijalva/jwt-go"
)

const DefaultTokenTTL = 3 * time.Hour

type JWTGenerator struct {
	Secret []byte
	TTL    time.Duration
}

var _ TokenGenerator = (*JWTGenerator)(nil)

func NewJWTGenerator(secret string) *JWTGenerator {
	return &JWTGenerator{
		Secret: []byte(secret),
		TTL:    DefaultTokenTTL,
	}
}

func (g *JWTGenerator) Generate(name string, userID string) (tokenStr string, exp int64, err error) {
	now := time.Now()
	exp = now.Add(g.TTL).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user": map[string]interface{}{
			"name": name,
			"id":   userID,
		},
		"iat": now.Unix(),
		"exp": exp,
	})

	tokenStr, err = token.SignedString(g.Secret)
	if err != nil {
		return "", 0, ErrUnableGenerateToken
	}

	return tokenStr, exp, nil
}
