package handlers

import (
	"net/http"

	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/i18n"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/store"
	"github.com/sirupsen/logrus"
)

type StatusCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type StatisticsResponse struct {
	store.Statistics
	StatusLabels map[string]StatusCount `json:"statusLabels"`
}

type StatisticsHandler struct {
	Store      Store
	Translator Translator
	Logger     *logrus.Entry
}

func NewStatisticsHandler(s Store, t Translator, log *logrus.Entry) *StatisticsHandler {
	return &StatisticsHandler{
		Store:      s,
		Translator: t,
		Logger:     log,
	}
}

func (h *StatisticsHandler) Get(w http.ResponseWriter, r *http.Request) {
	st := h.Store.GetStatistics()

	labels := make(map[string]StatusCount, len(st.NewsByStatus))
	for status, count := range st.NewsByStatus {
		key := i18n.StatusKey(status)
		labels[key] = StatusCount{
			Label: h.Translator.Translate(key, nil),
			Count: count,
		}
	}

	sendJSON(h.Logger, w, r, http.StatusOK, StatisticsResponse{
		Statistics:   st,
		StatusLabels: labels,
	})
}
