package events

import (
	"encoding/json"
	"time"

	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/store"
	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

const (
	DefaultSubject = "antifakenews.events"
	messageSource  = "antifakenews"
	messageVersion = "1.0"
)

type NATSConfig struct {
	URL     string
	Subject string
}

// Message is the envelope published for every store event.
type Message struct {
	Event     store.Event `json:"event"`
	Timestamp time.Time   `json:"timestamp"`
	Source    string      `json:"source"`
	Version   string      `json:"version"`
}

type NATSPublisher struct {
	conn    *nats.Conn
	subject string
	logger  *logrus.Entry
}

func NewNATSPublisher(config *NATSConfig, logger *logrus.Entry) (*NATSPublisher, error) {
	nc, err := nats.Connect(config.URL, nats.Name(messageSource))
	if err != nil {
		return nil, err
	}

	subject := config.Subject
	if subject == "" {
		subject = DefaultSubject
	}

	return &NATSPublisher{
		conn:    nc,
		subject: subject,
		logger:  logger,
	}, nil
}

func Encode(e store.Event) ([]byte, error) {
	return json.Marshal(Message{
		Event:     e,
		Timestamp: time.Now(),
		Source:    messageSource,
		Version:   messageVersion,
	})
}

// Notify has the store.Listener signature.
func (p *NATSPublisher) Notify(e store.Event) {
	data, err := Encode(e)
	if err != nil {
		p.logger.WithField("event", e.Type).Error("unable encode event: ", err)
		return
	}

	if err := p.conn.Publish(p.subject+"."+string(e.Type), data); err != nil {
		p.logger.WithField("event", e.Type).Warn("unable publish event to nats: ", err)
	}
}

func (p *NATSPublisher) Close() {
	if p.conn != nil {
		p.conn.Drain()
	}
}
