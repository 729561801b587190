package handlers

import (
	"net/http"

	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/progress"
	"github.com/sirupsen/logrus"
)

type ProgressHandler struct {
	Tracker *progress.Tracker
	Logger  *logrus.Entry
}

func NewProgressHandler(t *progress.Tracker, log *logrus.Entry) *ProgressHandler {
	return &ProgressHandler{
		Tracker: t,
		Logger:  log,
	}
}

func (h *ProgressHandler) Get(w http.ResponseWriter, r *http.Request) {
	sendJSON(h.Logger, w, r, http.StatusOK, h.Tracker.Snapshot())
}
