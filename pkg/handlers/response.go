package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

type MessageResponse struct {
	Message string `json:"message"`
}

func requestFields(r *http.Request, statusCode int) logrus.Fields {
	return logrus.Fields{
		"method":      r.Method,
		"remote_addr": r.RemoteAddr,
		"url":         r.URL.Path,
		"status_code": statusCode,
	}
}

func sendJSON(logger *logrus.Entry, w http.ResponseWriter, r *http.Request, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.WithFields(requestFields(r, http.StatusInternalServerError)).Error("unable send json to client: ", err)
		return
	}

	logger.WithFields(requestFields(r, statusCode)).Info()
}

// sendMessage answers a client error with a json message.
func sendMessage(logger *logrus.Entry, w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	sendJSON(logger, w, r, statusCode, MessageResponse{Message: message})
}

func sendInternalError(logger *logrus.Entry, w http.ResponseWriter, r *http.Request, message string, err error) {
	logger.WithFields(requestFields(r, http.StatusInternalServerError)).Error(message, ": ", err)
	http.Error(w, message, http.StatusInternalServerError)
}

// logPersist records a snapshot that failed to save; the request itself
// still succeeds since the in-memory state is already updated.
func logPersist(logger *logrus.Entry, r *http.Request, err error) {
	if err == nil {
		return
	}

	logger.WithFields(logrus.Fields{
		"method": r.Method,
		"url":    r.URL.Path,
	}).Warn("unable persist store snapshot: ", err)
}

func decodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()

	return json.NewDecoder(r.Body).Decode(v)
}
