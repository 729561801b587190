package store

import (
	"time"

	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/vote"
)

type EventType string

const (
	EventNewsAdded            EventType = "news_added"
	EventNewsImported         EventType = "news_imported"
	EventVoteAdded            EventType = "vote_added"
	EventImportedCleared      EventType = "imported_cleared"
	EventAllNewsRemoved       EventType = "all_news_removed"
	EventLikeAdded            EventType = "like_added"
	EventLikeRemoved          EventType = "like_removed"
	EventCommentLikeAdded     EventType = "comment_like_added"
	EventCommentLikeRemoved   EventType = "comment_like_removed"
	EventSeedVotesBoosted     EventType = "seed_votes_boosted"
	EventSeedStatusesPrimed   EventType = "seed_statuses_primed"
	EventEngagementRandomized EventType = "engagement_randomized"
	EventMockDataReset        EventType = "mock_data_reset"
)

type Event struct {
	Type      EventType   `json:"type"`
	NewsID    int         `json:"newsId,omitempty"`
	CommentID string      `json:"commentId,omitempty"`
	Choice    vote.Choice `json:"choice,omitempty"`
	Count     int         `json:"count,omitempty"`
	At        time.Time   `json:"at"`
}

// Listener is called synchronously after a mutation released the store lock,
// so it may read from the store but should return quickly.
type Listener func(e Event)

func (s *Store) Subscribe(l Listener) {
	s.lmu.Lock()
	defer s.lmu.Unlock()

	s.listeners = append(s.listeners, l)
}

func (s *Store) notify(events ...Event) {
	s.lmu.RLock()
	listeners := s.listeners
	s.lmu.RUnlock()

	for _, e := range events {
		for _, l := range listeners {
			l(e)
		}
	}
}
