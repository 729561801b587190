package handlers

import (
	"net/http"

	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/i18n"
	"github.com/sirupsen/logrus"
)

type LanguageRequest struct {
	Language string `json:"language"`
}

type LanguageResponse struct {
	Language string `json:"language"`
	Brand    string `json:"brand"`
}

type LanguageHandler struct {
	Translator Translator
	Logger     *logrus.Entry
}

func NewLanguageHandler(t Translator, log *logrus.Entry) *LanguageHandler {
	return &LanguageHandler{
		Translator: t,
		Logger:     log,
	}
}

func (h *LanguageHandler) response() LanguageResponse {
	return LanguageResponse{
		Language: h.Translator.Language(),
		Brand:    h.Translator.Translate("brand", nil),
	}
}

func (h *LanguageHandler) Get(w http.ResponseWriter, r *http.Request) {
	sendJSON(h.Logger, w, r, http.StatusOK, h.response())
}

func (h *LanguageHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req LanguageRequest
	if err := decodeJSON(r, &req); err != nil {
		sendMessage(h.Logger, w, r, http.StatusBadRequest, "bad json in request body")
		return
	}

	err := h.Translator.SetLanguage(req.Language)
	if err == i18n.ErrUnsupportedLanguage {
		sendMessage(h.Logger, w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}
	logPersist(h.Logger, r, err)

	sendJSON(h.Logger, w, r, http.StatusOK, h.response())
}
