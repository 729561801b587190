package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/session"
	"github.com/sirupsen/logrus"
)

type Authentication struct {
	repo   session.SessionRepo
	logger *logrus.Entry
}

func NewAuthenticationMiddleware(sr session.SessionRepo, l *logrus.Entry) *Authentication {
	return &Authentication{
		repo:   sr,
		logger: l,
	}
}

func (a *Authentication) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accessToken := r.Header.Get("Authorization")

		sess, err := a.repo.Get(accessToken)
		if err != nil {
			statusCode := 0
			switch err {
			case session.ErrEmptyPayload, session.ErrEmptyUserInfo, session.ErrBadToken:
				statusCode = http.StatusUnauthorized
			case session.ErrBadSigningMethod:
				statusCode = http.StatusBadRequest
			default:
				http.Error(w, err.Error(), http.StatusInternalServerError)
				a.logger.WithFields(logrus.Fields{
					"method":      r.Method,
					"remote_addr": r.RemoteAddr,
					"url":         r.URL.Path,
					"status_code": http.StatusInternalServerError,
				}).Error(err)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(statusCode)
			err = json.NewEncoder(w).Encode(map[string]interface{}{
				"message": err.Error(),
			})
			if err != nil {
				a.logger.WithFields(logrus.Fields{
					"method":      r.Method,
					"remote_addr": r.RemoteAddr,
					"url":         r.URL.Path,
					"status_code": http.StatusInternalServerError,
				}).Error("unable send json to client: ", err)
				return
			}

			a.logger.WithFields(logrus.Fields{
				"method":      r.Method,
				"remote_addr": r.RemoteAddr,
				"url":         r.URL.Path,
				"status_code": statusCode,
			}).Info()

			return
		}

		ctx := session.CreateContextWithSession(r.Context(), sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Identify attaches the session when a valid token is sent and lets the
// request through unchanged otherwise.
func (a *Authentication) Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accessToken := r.Header.Get("Authorization")
		if accessToken == "" {
			next.ServeHTTP(w, r)
			return
		}

		sess, err := a.repo.Get(accessToken)
		if err != nil {
			a.logger.WithFields(logrus.Fields{
				"method":      r.Method,
				"remote_addr": r.RemoteAddr,
				"url":         r.URL.Path,
			}).Debug("ignoring invalid token: ", err)
			next.ServeHTTP(w, r)
			return
		}

		ctx := session.CreateContextWithSession(r.Context(), sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
