package handlers

import (
	"net/http"
	"strings"

	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/session"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type IdentityRequest struct {
	Name string `json:"name"`
}

type IdentityResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

const anonymousName = "Anonymous"

type IdentityHandler struct {
	SessionRepo session.SessionRepo
	Logger      *logrus.Entry
}

func NewIdentityHandler(sr session.SessionRepo, log *logrus.Entry) *IdentityHandler {
	return &IdentityHandler{
		SessionRepo: sr,
		Logger:      log,
	}
}

func (h *IdentityHandler) Issue(w http.ResponseWriter, r *http.Request) {
	req := IdentityRequest{}
	if err := decodeOptional(r, &req); err != nil {
		sendMessage(h.Logger, w, r, http.StatusBadRequest, "bad json in request body")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = anonymousName
	}
	userID := uuid.NewString()

	token, err := h.SessionRepo.Add(name, userID)
	if err != nil {
		sendInternalError(h.Logger, w, r, "unable create token", err)
		return
	}

	sendJSON(h.Logger, w, r, http.StatusCreated, IdentityResponse{
		Token:  token,
		UserID: userID,
		Name:   name,
	})
}
