package session

import (
	"strings"

	"github.com/dgrijalva/jwt-go"
)

type JWTRepo struct {
	Generator TokenGenerator
	Secret    []byte
}

var _ SessionRepo = (*JWTRepo)(nil)

func NewJWTRepo(generator TokenGenerator, secret string) *JWTRepo {
	return &JWTRepo{
		Generator: generator,
		Secret:    []byte(secret),
	}
}

// Get accepts "Bearer <token>" or a bare token.
func (r *JWTRepo) Get(accessToken string) (*Session, error) {
	tokenParts := strings.Fields(accessToken)
	if len(tokenParts) == 0 {
		return nil, ErrBadToken
	}
	raw := tokenParts[len(tokenParts)-1]

	hashSecretGetter := func(token *jwt.Token) (interface{}, error) {
		method, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok || method.Alg() != "HS256" {
			return nil, ErrBadSigningMethod
		}

		return r.Secret, nil
	}

	token, err := jwt.Parse(raw, hashSecretGetter)
	if err != nil || !token.Valid {
		if vErr, ok := err.(*jwt.ValidationError); ok && vErr.Inner == ErrBadSigningMethod {
			return nil, ErrBadSigningMethod
		}

		return nil, ErrBadToken
	}

	payload, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrEmptyPayload
	}
	userInfo, ok := payload["user"].(map[string]interface{})
	if !ok {
		return nil, ErrEmptyUserInfo
	}

	id, _ := userInfo["id"].(string)
	name, _ := userInfo["name"].(string)
	if id == "" {
		return nil, ErrEmptyUserInfo
	}

	sess := &Session{
		UserID: id,
		Name:   name,
	}
	if exp, ok := payload["exp"].(float64); ok {
		sess.ExpirationDate = int64(exp)
	}

	return sess, nil
}

func (r *JWTRepo) Add(name string, userID string) (token string, err error) {
	token, _, err = r.Generator.Generate(name, userID)

	return token, err
}
