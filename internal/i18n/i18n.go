package i18n

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/storage"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/vote"
	"github.com/sirupsen/logrus"
)

const (
	English = "en"
	Chinese = "zh"
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

var dict = map[string]map[string]string{
	English: {
		"brand":            "Social Anti-Fake News",
		"fake":             "Fake",
		"not_fake":         "Not Fake",
		"status_fake":      "Fake",
		"status_not_fake":  "Not Fake",
		"status_undecided": "Undecided",
		"importSuccess":    "Successfully imported {count} news",
		"importSkipped":    "Skipped {count} duplicate news",
		"noContentFound":   "No importable content found",
		"importedCleared":  "Removed {count} imported news",
		"allNewsRemoved":   "All news removed",
		"mockDataReset":    "Mock data reset, {count} news available",
		"votesBoosted":     "Added {count} votes to seed news",
		"voteRecorded":     "Your vote has been recorded",
	},
	Chinese: {
		"brand":            "Social Anti-Fake News",
		"fake":             "假新闻",
		"not_fake":         "非假新闻",
		"status_fake":      "假",
		"status_not_fake":  "非假",
		"status_undecided": "未定",
		"importSuccess":    "成功导入{count}条新闻",
		"importSkipped":    "跳过{count}条重复新闻",
		"noContentFound":   "未找到可导入的内容",
		"importedCleared":  "已删除{count}条导入新闻",
		"allNewsRemoved":   "已删除所有新闻",
		"mockDataReset":    "模拟数据已重置，共{count}条新闻",
		"votesBoosted":     "已为种子新闻补充{count}个投票",
		"voteRecorded":     "投票已记录",
	},
}

type Translator struct {
	storage  storage.Storage
	logger   *logrus.Entry
	fallback string
	lang     string
	mu       *sync.RWMutex
}

func NewTranslator(st storage.Storage, logger *logrus.Entry, defaultLang string) *Translator {
	if _, ok := dict[defaultLang]; !ok {
		defaultLang = English
	}

	return &Translator{
		storage:  st,
		logger:   logger,
		fallback: defaultLang,
		lang:     defaultLang,
		mu:       &sync.RWMutex{},
	}
}

func Supported(code string) bool {
	_, ok := dict[code]
	return ok
}

func (t *Translator) Language() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.lang
}

// Translate looks key up in the current language and substitutes {name}
// placeholders from params. Unknown keys are returned as is.
func (t *Translator) Translate(key string, params map[string]string) string {
	t.mu.RLock()
	text, ok := dict[t.lang][key]
	t.mu.RUnlock()
	if !ok {
		return key
	}

	for name, value := range params {
		text = strings.ReplaceAll(text, "{"+name+"}", value)
	}

	return text
}

func (t *Translator) SetLanguage(code string) error {
	if !Supported(code) {
		return ErrUnsupportedLanguage
	}

	t.mu.Lock()
	t.lang = code
	t.mu.Unlock()

	data, err := json.Marshal(code)
	if err != nil {
		return err
	}

	return t.storage.SetItem(storage.KeyUILanguage, data)
}

// Reset drops the persisted language and returns to the configured default.
func (t *Translator) Reset() {
	if err := t.storage.RemoveItem(storage.KeyUILanguage); err != nil {
		t.logger.Warn("unable clear persisted language: ", err)
	}

	t.mu.Lock()
	t.lang = t.fallback
	t.mu.Unlock()
}

func StatusKey(s vote.Status) string {
	switch s {
	case vote.StatusFake:
		return "status_fake"
	case vote.StatusNotFake:
		return "status_not_fake"
	}

	return "status_undecided"
}
