package importer

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/news"
	"github.com/sirupsen/logrus"
)

var ErrNoContent = errors.New("no importable content found")

// Item is one news entry of an import payload.
type Item struct {
	news.Fields
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

func (i Item) Valid() bool {
	return strings.TrimSpace(i.Title) != ""
}

type AddFunc func(f news.Fields, createdAt *time.Time) error

// Apply calls add for every valid item whose link is not yet known and
// returns how many were added and how many were skipped as duplicates.
func Apply(items []Item, add AddFunc, existingLinks map[string]bool) (added int, skipped int, err error) {
	seen := make(map[string]bool, len(existingLinks))
	for link := range existingLinks {
		seen[link] = true
	}

	for _, item := range items {
		if !item.Valid() {
			continue
		}
		if item.Link != "" && seen[item.Link] {
			skipped++
			continue
		}

		if err := add(item.Fields, item.CreatedAt); err != nil {
			return added, skipped, err
		}
		if item.Link != "" {
			seen[item.Link] = true
		}
		added++
	}

	return added, skipped, nil
}

// FileImporter reads a JSON array of items from disk.
type FileImporter struct {
	Path   string
	Logger *logrus.Entry
}

func NewFileImporter(path string, logger *logrus.Entry) *FileImporter {
	return &FileImporter{
		Path:   path,
		Logger: logger,
	}
}

func (i *FileImporter) Read() ([]Item, error) {
	data, err := os.ReadFile(i.Path)
	if err != nil {
		return nil, err
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoContent
	}

	return items, nil
}

func (i *FileImporter) Import(add func(f news.Fields, createdAt *time.Time) error, existingLinks map[string]bool) (int, error) {
	items, err := i.Read()
	if err != nil {
		return 0, err
	}

	added, skipped, err := Apply(items, add, existingLinks)
	i.Logger.WithFields(logrus.Fields{
		"path":    i.Path,
		"added":   added,
		"skipped": skipped,
	}).Info("news imported from file")

	return added, err
}
