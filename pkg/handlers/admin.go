package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/store"
	"github.com/sirupsen/logrus"
)

type BoostRequest struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

const (
	defaultBoostMin = 10
	defaultBoostMax = 30
)

type AdminHandler struct {
	Store      Store
	Translator Translator
	Logger     *logrus.Entry
}

func NewAdminHandler(s Store, t Translator, log *logrus.Entry) *AdminHandler {
	return &AdminHandler{
		Store:      s,
		Translator: t,
		Logger:     log,
	}
}

// decodeOptional leaves v untouched for an empty body.
func decodeOptional(r *http.Request, v interface{}) error {
	err := decodeJSON(r, v)
	if err == io.EOF {
		return nil
	}

	return err
}

func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	o := store.ResetOptions{}
	if err := decodeOptional(r, &o); err != nil {
		sendMessage(h.Logger, w, r, http.StatusBadRequest, "bad json in request body")
		return
	}

	// on a generation failure the store has already fallen back to defaults
	if err := h.Store.ResetMockData(o); err != nil {
		if !store.IsPersistError(err) {
			h.Logger.WithFields(requestFields(r, http.StatusOK)).Error("reset mock data failed: ", err)
		} else {
			logPersist(h.Logger, r, err)
		}
	}

	count := len(h.Store.News())
	sendJSON(h.Logger, w, r, http.StatusOK, CountResponse{
		Count:   count,
		Message: h.Translator.Translate("mockDataReset", map[string]string{"count": strconv.Itoa(count)}),
	})
}

func (h *AdminHandler) Boost(w http.ResponseWriter, r *http.Request) {
	req := BoostRequest{Min: defaultBoostMin, Max: defaultBoostMax}
	if err := decodeOptional(r, &req); err != nil {
		sendMessage(h.Logger, w, r, http.StatusBadRequest, "bad json in request body")
		return
	}
	if req.Min < 0 || req.Max < req.Min {
		sendMessage(h.Logger, w, r, http.StatusUnprocessableEntity, "min must be non negative and not greater than max")
		return
	}

	added, err := h.Store.BoostSeedVotes(req.Min, req.Max)
	logPersist(h.Logger, r, err)

	sendJSON(h.Logger, w, r, http.StatusOK, CountResponse{
		Count:   added,
		Message: h.Translator.Translate("votesBoosted", map[string]string{"count": strconv.Itoa(added)}),
	})
}

func (h *AdminHandler) Randomize(w http.ResponseWriter, r *http.Request) {
	o := store.DefaultEngagement()
	if err := decodeOptional(r, &o); err != nil {
		sendMessage(h.Logger, w, r, http.StatusBadRequest, "bad json in request body")
		return
	}
	if err := o.Validate(); err != nil {
		sendMessage(h.Logger, w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	logPersist(h.Logger, r, h.Store.RandomizeEngagement(o))

	sendJSON(h.Logger, w, r, http.StatusOK, h.Store.GetStatistics())
}
