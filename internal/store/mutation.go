package store

import (
	"errors"
	"strings"
	"time"

	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/like"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/mockdata"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/news"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/vote"
)

type VoteInput struct {
	NewsID   int
	Choice   vote.Choice
	Comment  string
	ImageURL string
	Voter    string
}

// AddNews trims the text fields and prepends a new item with the next id.
func (s *Store) AddNews(f news.Fields) news.News {
	f = f.Trimmed()

	s.mu.Lock()
	n := news.News{
		ID:           mockdata.NextID(s.news),
		Title:        f.Title,
		Summary:      f.Summary,
		Content:      f.Content,
		Reporter:     f.Reporter,
		CreatedAt:    s.now(),
		ImageURL:     f.ImageURL,
		Source:       f.Source,
		Link:         f.Link,
		Translations: f.Translations,
	}
	s.news = append([]news.News{n}, s.news...)
	s.mu.Unlock()

	s.notify(Event{Type: EventNewsAdded, NewsID: n.ID, At: n.CreatedAt})
	return n
}

// AddNewsImported keeps the fields as given and uses createdAt when present.
func (s *Store) AddNewsImported(f news.Fields, createdAt *time.Time) news.News {
	s.mu.Lock()
	n := news.News{
		ID:           mockdata.NextID(s.news),
		Title:        f.Title,
		Summary:      f.Summary,
		Content:      f.Content,
		Reporter:     f.Reporter,
		CreatedAt:    s.now(),
		ImageURL:     f.ImageURL,
		Source:       f.Source,
		Link:         f.Link,
		Translations: f.Translations,
		Imported:     true,
	}
	if createdAt != nil && !createdAt.IsZero() {
		n.CreatedAt = *createdAt
	}
	s.news = append([]news.News{n}, s.news...)
	s.mu.Unlock()

	s.notify(Event{Type: EventNewsImported, NewsID: n.ID, At: s.now()})
	return n
}

func (s *Store) newVote(in VoteInput) vote.Vote {
	return vote.Vote{
		ID:        mockdata.NewVoteID(),
		NewsID:    in.NewsID,
		Choice:    in.Choice,
		Comment:   strings.TrimSpace(in.Comment),
		ImageURL:  strings.TrimSpace(in.ImageURL),
		Voter:     strings.TrimSpace(in.Voter),
		CreatedAt: s.now(),
	}
}

// prependVotes puts added in front of the list as if each had been
// prepended one at a time.
func (s *Store) prependVotes(added []vote.Vote) {
	votes := make([]vote.Vote, 0, len(added)+len(s.votes))
	for i := len(added) - 1; i >= 0; i-- {
		votes = append(votes, added[i])
	}
	s.votes = append(votes, s.votes...)
}

// AddVote does not check that the news exists.
func (s *Store) AddVote(in VoteInput) (vote.Vote, error) {
	s.mu.Lock()
	v := s.newVote(in)
	s.prependVotes([]vote.Vote{v})
	err := s.persistVotes()
	s.mu.Unlock()

	s.notify(Event{Type: EventVoteAdded, NewsID: v.NewsID, Choice: v.Choice, At: v.CreatedAt})
	return v, err
}

// ClearImported removes imported news together with their votes and returns
// how many news items were removed.
func (s *Store) ClearImported() (int, error) {
	s.mu.Lock()
	removed := make(map[int]struct{})
	keep := make([]news.News, 0, len(s.news))
	for _, n := range s.news {
		if n.Imported {
			removed[n.ID] = struct{}{}
			continue
		}
		keep = append(keep, n)
	}
	s.news = keep

	votes := make([]vote.Vote, 0, len(s.votes))
	for _, v := range s.votes {
		if _, ok := removed[v.NewsID]; ok {
			continue
		}
		votes = append(votes, v)
	}
	s.votes = votes
	err := s.persistVotes()
	s.mu.Unlock()

	s.notify(Event{Type: EventImportedCleared, Count: len(removed), At: s.now()})
	return len(removed), err
}

// RemoveAllNews empties every collection. The empty state is kept even when
// persisting it fails.
func (s *Store) RemoveAllNews() error {
	s.mu.Lock()
	s.news = make([]news.News, 0)
	s.votes = make([]vote.Vote, 0)
	s.likes = make(map[int]int)
	s.commentLikes = make([]like.CommentLike, 0)
	err := s.persistAll()
	s.mu.Unlock()

	s.notify(Event{Type: EventAllNewsRemoved, At: s.now()})
	return err
}

func (s *Store) AddLike(newsID int) error {
	s.mu.Lock()
	s.likes[newsID]++
	count := s.likes[newsID]
	err := s.persistLikes()
	s.mu.Unlock()

	s.notify(Event{Type: EventLikeAdded, NewsID: newsID, Count: count, At: s.now()})
	return err
}

// LikeNews is kept for clients of the older like endpoint.
func (s *Store) LikeNews(newsID int) error {
	return s.AddLike(newsID)
}

// RemoveLike is a no-op for a counter that is already zero. A counter that
// reaches zero is deleted.
func (s *Store) RemoveLike(newsID int) error {
	s.mu.Lock()
	if s.likes[newsID] <= 0 {
		s.mu.Unlock()
		return nil
	}

	s.likes[newsID]--
	count := s.likes[newsID]
	if count == 0 {
		delete(s.likes, newsID)
	}
	err := s.persistLikes()
	s.mu.Unlock()

	s.notify(Event{Type: EventLikeRemoved, NewsID: newsID, Count: count, At: s.now()})
	return err
}

// AddCommentLike reports whether a like was added; a repeated like from the
// same user is ignored.
func (s *Store) AddCommentLike(commentID, userID string) (bool, error) {
	if commentID == "" || userID == "" {
		return false, like.ErrEmptyKey
	}

	s.mu.Lock()
	for _, l := range s.commentLikes {
		if l.Same(commentID, userID) {
			s.mu.Unlock()
			return false, nil
		}
	}

	s.commentLikes = append(s.commentLikes, like.CommentLike{
		CommentID: commentID,
		UserID:    userID,
		CreatedAt: s.now(),
	})
	err := s.persistCommentLikes()
	s.mu.Unlock()

	s.notify(Event{Type: EventCommentLikeAdded, CommentID: commentID, At: s.now()})
	return true, err
}

func (s *Store) RemoveCommentLike(commentID, userID string) (bool, error) {
	s.mu.Lock()
	idx := -1
	for i, l := range s.commentLikes {
		if l.Same(commentID, userID) {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return false, nil
	}

	likes := make([]like.CommentLike, 0, len(s.commentLikes)-1)
	likes = append(likes, s.commentLikes[:idx]...)
	s.commentLikes = append(likes, s.commentLikes[idx+1:]...)
	err := s.persistCommentLikes()
	s.mu.Unlock()

	s.notify(Event{Type: EventCommentLikeRemoved, CommentID: commentID, At: s.now()})
	return true, err
}

// IsPersistError reports whether err only describes failed snapshot writes.
func IsPersistError(err error) bool {
	var perr *PersistError
	return errors.As(err, &perr)
}
