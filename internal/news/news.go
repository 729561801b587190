package news

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

const DefaultLanguage = "en"

var (
	ErrNotExist  = errors.New("news with specified id not exist")
	ErrInvalidID = errors.New("news id is invalid")
	ErrEmptyText = errors.New("title, summary, content and reporter are required")
)

type Translation struct {
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Content  string `json:"content"`
	Reporter string `json:"reporter,omitempty"`
	Source   string `json:"source,omitempty"`
}

type News struct {
	ID           int                    `json:"id"`
	Title        string                 `json:"title"`
	Summary      string                 `json:"summary"`
	Content      string                 `json:"content"`
	Reporter     string                 `json:"reporter"`
	CreatedAt    time.Time              `json:"createdAt"`
	ImageURL     string                 `json:"imageUrl,omitempty"`
	Source       string                 `json:"source,omitempty"`
	Link         string                 `json:"link,omitempty"`
	Translations map[string]Translation `json:"translations,omitempty"`

	Seed     bool `json:"-"`
	Imported bool `json:"-"`
}

// Fields is the caller-supplied part of a News; id and timestamp are assigned
// by the store.
type Fields struct {
	Title        string                 `json:"title"`
	Summary      string                 `json:"summary"`
	Content      string                 `json:"content"`
	Reporter     string                 `json:"reporter"`
	ImageURL     string                 `json:"imageUrl,omitempty"`
	Source       string                 `json:"source,omitempty"`
	Link         string                 `json:"link,omitempty"`
	Translations map[string]Translation `json:"translations,omitempty"`
}

func (f Fields) Trimmed() Fields {
	f.Title = strings.TrimSpace(f.Title)
	f.Summary = strings.TrimSpace(f.Summary)
	f.Content = strings.TrimSpace(f.Content)
	f.Reporter = strings.TrimSpace(f.Reporter)
	f.ImageURL = strings.TrimSpace(f.ImageURL)

	return f
}

func (f Fields) Validate() error {
	if f.Title == "" || f.Summary == "" || f.Content == "" || f.Reporter == "" {
		return ErrEmptyText
	}

	return nil
}

// Localize returns the English projection of n. Items without an English
// bundle get placeholder text derived from their id.
func (n News) Localize() News {
	en, ok := n.Translations[DefaultLanguage]
	if ok && en.Title != "" {
		n.Title = en.Title
		n.Summary = en.Summary
		n.Content = en.Content
		if en.Reporter != "" {
			n.Reporter = en.Reporter
		}
		if en.Source != "" {
			n.Source = en.Source
		}

		return n
	}

	id := strconv.Itoa(n.ID)
	n.Title = "News Report " + id
	n.Summary = "Summary for news " + id
	n.Content = "Content for news " + id

	return n
}

func ParseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}

	return id, nil
}
