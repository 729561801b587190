package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/like"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/mockdata"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/news"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/storage"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/vote"
	"github.com/sirupsen/logrus"
)

const (
	DefaultSeedCount    = 30
	MinSeedNews         = 60
	InitialVotesPerNews = 8
	ResetVotesPerNews   = 12
	MockLikeMin         = 5
	MockLikeMax         = 30
)

// PersistError reports a snapshot that could not be written. The in-memory
// state it describes has already been applied.
type PersistError struct {
	Key string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Key, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

// Importer feeds externally sourced news into the store through add.
type Importer interface {
	Import(add func(f news.Fields, createdAt *time.Time) error, existingLinks map[string]bool) (int, error)
}

type Options struct {
	SeedCount    int
	PrimeOnStart bool
	ResetOnStart bool
	AutoImport   bool
	Importer     Importer
	Now          func() time.Time
}

type Store struct {
	news         []news.News
	votes        []vote.Vote
	likes        map[int]int
	commentLikes []like.CommentLike

	storage   storage.Storage
	generator *mockdata.Generator
	logger    *logrus.Entry
	opts      Options
	now       func() time.Time
	mu        *sync.RWMutex

	listeners []Listener
	lmu       *sync.RWMutex
}

func New(st storage.Storage, gen *mockdata.Generator, logger *logrus.Entry, opts Options) *Store {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := &Store{
		storage:   st,
		generator: gen,
		logger:    logger,
		opts:      opts,
		now:       opts.Now,
		mu:        &sync.RWMutex{},
		lmu:       &sync.RWMutex{},
	}
	s.generator.Now = opts.Now

	s.hydrate()

	if opts.PrimeOnStart {
		s.prime()
	}
	if opts.ResetOnStart {
		if err := s.ResetMockData(ResetOptions{RegenerateNews: true}); err != nil {
			s.logger.Warn("reset mock data at start: ", err)
		}
	}
	if opts.AutoImport {
		s.autoImport()
	}

	return s
}

func (s *Store) hydrate() {
	list, err := s.generator.SeedNews(s.opts.SeedCount)
	if err != nil {
		s.logger.WithField("seed_count", s.opts.SeedCount).Warn("invalid seed count, using default: ", err)
		list, _ = s.generator.SeedNews(DefaultSeedCount)
	}
	s.news = list

	s.votes = s.loadVotes()
	s.likes = s.loadLikes()
	s.commentLikes = s.loadCommentLikes()
}

// load reads key into dst. It reports whether generated data should be
// written back: true when the key is absent or malformed, false after a
// storage read failure.
func (s *Store) load(key string, dst interface{}) (ok bool, writeBack bool) {
	raw, err := s.storage.GetItem(key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, true
		}

		s.logger.WithField("key", key).Warn("unable read from storage, using mock data: ", err)
		return false, false
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		s.logger.WithField("key", key).Warn("malformed persisted data, using mock data: ", err)
		return false, true
	}

	return true, false
}

func (s *Store) loadVotes() []vote.Vote {
	var parsed []vote.Vote
	ok, writeBack := s.load(storage.KeyVotes, &parsed)
	if ok {
		votes := make([]vote.Vote, 0, len(parsed))
		for _, v := range parsed {
			if v.NewsID <= 0 || !v.Choice.Tallied() {
				continue
			}
			votes = append(votes, v)
		}

		return votes
	}

	votes := s.generator.Votes(s.newsIDs(), InitialVotesPerNews)
	if writeBack {
		s.logPersist(s.persist(storage.KeyVotes, votes))
	}

	return votes
}

func (s *Store) loadLikes() map[int]int {
	var parsed map[int]int
	ok, writeBack := s.load(storage.KeyLikesByNews, &parsed)
	if ok && parsed != nil {
		likes := make(map[int]int, len(parsed))
		for id, count := range parsed {
			if count > 0 {
				likes[id] = count
			}
		}

		return likes
	}
	if ok {
		writeBack = true
	}

	likes := s.mockLikes()
	if writeBack {
		s.logPersist(s.persist(storage.KeyLikesByNews, likes))
	}

	return likes
}

func (s *Store) loadCommentLikes() []like.CommentLike {
	var parsed []like.CommentLike
	ok, writeBack := s.load(storage.KeyCommentLikes, &parsed)
	if ok {
		likes := make([]like.CommentLike, 0, len(parsed))
		for _, l := range parsed {
			if l.Valid() {
				likes = append(likes, l)
			}
		}

		return like.Dedup(likes)
	}

	likes := s.generator.CommentLikes(s.commentIDs())
	if writeBack {
		s.logPersist(s.persist(storage.KeyCommentLikes, likes))
	}

	return likes
}

// prime replaces votes and likes with seed majorities plus generous
// randomized engagement.
func (s *Store) prime() {
	s.mu.Lock()
	s.votes = make([]vote.Vote, 0)
	s.likes = make(map[int]int)
	s.mu.Unlock()

	s.logPersist(s.PrimeSeedStatuses())
	s.logPersist(s.RandomizeEngagement(EngagementOptions{
		LikeMin:     10,
		LikeMax:     80,
		VoteMin:     15,
		VoteMax:     40,
		CommentRate: 0.5,
		ImageRate:   0.2,
	}))
}

func (s *Store) autoImport() {
	if s.opts.Importer == nil {
		s.logger.Info("auto import enabled but no importer configured")
		return
	}

	add := func(f news.Fields, createdAt *time.Time) error {
		s.AddNewsImported(f, createdAt)
		return nil
	}

	n, err := s.opts.Importer.Import(add, s.ExistingLinks())
	if err != nil {
		s.logger.Warn("auto import failed: ", err)
		return
	}

	s.logger.WithField("count", n).Info("auto import finished")
}

func (s *Store) persist(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err == nil {
		err = s.storage.SetItem(key, data)
	}
	if err != nil {
		return &PersistError{Key: key, Err: err}
	}

	return nil
}

func (s *Store) persistVotes() error {
	return s.persist(storage.KeyVotes, s.votes)
}

func (s *Store) persistLikes() error {
	return s.persist(storage.KeyLikesByNews, s.likes)
}

func (s *Store) persistCommentLikes() error {
	return s.persist(storage.KeyCommentLikes, s.commentLikes)
}

func (s *Store) persistAll() error {
	return errors.Join(s.persistVotes(), s.persistLikes(), s.persistCommentLikes())
}

func (s *Store) logPersist(err error) {
	if err != nil {
		s.logger.Warn("unable persist store snapshot: ", err)
	}
}

func (s *Store) mockLikes() map[int]int {
	likes := make(map[int]int, len(s.news))
	for _, n := range s.news {
		likes[n.ID] = s.generator.Between(MockLikeMin, MockLikeMax)
	}

	return likes
}

func (s *Store) newsIDs() []int {
	ids := make([]int, 0, len(s.news))
	for _, n := range s.news {
		ids = append(ids, n.ID)
	}

	return ids
}

// commentIDs lists votes carrying comment text; image-only comments are not
// seeded with likes.
func (s *Store) commentIDs() []string {
	ids := make([]string, 0, len(s.votes)/2)
	for _, v := range s.votes {
		if v.Comment != "" {
			ids = append(ids, v.ID)
		}
	}

	return ids
}
