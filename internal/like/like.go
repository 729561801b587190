package like

import (
	"errors"
	"time"
)

var ErrEmptyKey = errors.New("comment id and user id are required")

type CommentLike struct {
	CommentID string    `json:"commentId"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (l CommentLike) Same(commentID, userID string) bool {
	return l.CommentID == commentID && l.UserID == userID
}

func (l CommentLike) Valid() bool {
	return l.CommentID != "" && l.UserID != "" && !l.CreatedAt.IsZero()
}

// Dedup keeps the first like of every (comment, user) pair, preserving order.
func Dedup(likes []CommentLike) []CommentLike {
	seen := make(map[[2]string]struct{}, len(likes))
	res := make([]CommentLike, 0, len(likes))

	for _, l := range likes {
		key := [2]string{l.CommentID, l.UserID}
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		res = append(res, l)
	}

	return res
}
