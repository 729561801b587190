package session

import (
	"context"
	"errors"
)

type ctxKey string

const sessionKey ctxKey = "session-key"

var (
	ErrBadSigningMethod    = errors.New("invalid signing method")
	ErrBadToken            = errors.New("bad token")
	ErrEmptyPayload        = errors.New("empty payload")
	ErrEmptyUserInfo       = errors.New("empty information about voter")
	ErrNoAuthentication    = errors.New("unauthorized")
	ErrUnableGenerateToken = errors.New("can`t create token for voter")
)

// Session identifies an anonymous voter: a generated id and a display name.
type Session struct {
	UserID         string
	Name           string
	ExpirationDate int64
}

type SessionRepo interface {
	Get(accessToken string) (*Session, error)
	Add(name string, userID string) (tokenStr string, err error)
}

type TokenGenerator interface {
	Generate(name string, userID string) (tokenStr string, exp int64, err error)
}

func GetSessionFromContext(ctx context.Context) (*Session, error) {
	sess, ok := ctx.Value(sessionKey).(*Session)
	if !ok || sess == nil {
		return nil, ErrNoAuthentication
	}

	return sess, nil
}

func CreateContextWithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}
