package storage

import (
	"errors"
)

//go:generate mockgen -source=storage.go -destination=mock/storage_mock.go -package=mock

const (
	KeyVotes        = "votes"
	KeyLikesByNews  = "likes_by_news"
	KeyCommentLikes = "comment_likes"
	KeyUILanguage   = "ui_language"
)

var (
	ErrNotFound   = errors.New("storage key not found")
	ErrBadDriver  = errors.New("unknown storage driver")
	ErrBadDialect = errors.New("unknown sql dialect")
	ErrNotJSON    = errors.New("storage value is not valid json")
)

// Storage holds whole JSON snapshots by key. Every write replaces the
// previous value.
type Storage interface {
	GetItem(key string) ([]byte, error)
	SetItem(key string, value []byte) error
	RemoveItem(key string) error
}
