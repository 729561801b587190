package handlers

import (
	"net/http"

	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/session"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/store"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/vote"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type CommentResponse struct {
	vote.Vote
	Likes     int  `json:"likes"`
	LikedByMe bool `json:"likedByMe"`
}

type CommentLikesResponse struct {
	CommentID string `json:"commentId"`
	Likes     int    `json:"likes"`
	LikedByMe bool   `json:"likedByMe"`
}

type CommentHandler struct {
	Store  Store
	Logger *logrus.Entry
}

func NewCommentHandler(s Store, log *logrus.Entry) *CommentHandler {
	return &CommentHandler{
		Store:  s,
		Logger: log,
	}
}

// viewer is the session user when present, else the ?userId= query value.
func viewer(r *http.Request) string {
	if sess, err := session.GetSessionFromContext(r.Context()); err == nil {
		return sess.UserID
	}

	return r.URL.Query().Get("userId")
}

func (h *CommentHandler) likesResponse(commentID, userID string) CommentLikesResponse {
	resp := CommentLikesResponse{
		CommentID: commentID,
		Likes:     h.Store.GetCommentLikesCount(commentID),
	}
	if userID != "" {
		resp.LikedByMe = h.Store.HasUserLikedComment(commentID, userID)
	}

	return resp
}

func (h *CommentHandler) GetByNews(w http.ResponseWriter, r *http.Request) {
	id, ok := existingNewsID(h.Store, h.Logger, w, r)
	if !ok {
		return
	}

	userID := viewer(r)
	comments := h.Store.GetComments(id)
	resp := make([]*CommentResponse, 0, len(comments))
	for _, c := range comments {
		likes := h.likesResponse(c.ID, userID)
		resp = append(resp, &CommentResponse{
			Vote:      c,
			Likes:     likes.Likes,
			LikedByMe: likes.LikedByMe,
		})
	}

	sendJSON(h.Logger, w, r, http.StatusOK, resp)
}

func (h *CommentHandler) GetLikes(w http.ResponseWriter, r *http.Request) {
	commentID := mux.Vars(r)["comment_id"]

	sendJSON(h.Logger, w, r, http.StatusOK, h.likesResponse(commentID, viewer(r)))
}

func (h *CommentHandler) Like(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.Store.AddCommentLike)
}

func (h *CommentHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.Store.RemoveCommentLike)
}

func (h *CommentHandler) toggle(w http.ResponseWriter, r *http.Request, change func(commentID, userID string) (bool, error)) {
	sess, err := session.GetSessionFromContext(r.Context())
	if err != nil {
		sendMessage(h.Logger, w, r, http.StatusUnauthorized, err.Error())
		return
	}

	commentID := mux.Vars(r)["comment_id"]
	if _, err := change(commentID, sess.UserID); err != nil {
		if !store.IsPersistError(err) {
			sendMessage(h.Logger, w, r, http.StatusBadRequest, err.Error())
			return
		}
		logPersist(h.Logger, r, err)
	}

	sendJSON(h.Logger, w, r, http.StatusOK, h.likesResponse(commentID, sess.UserID))
}
