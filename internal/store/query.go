package store

import (
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/like"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/news"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/vote"
)

// News returns the list most recent first.
func (s *Store) News() []news.News {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]news.News(nil), s.news...)
}

func (s *Store) GetNews(id int) (news.News, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, n := range s.news {
		if n.ID == id {
			return n, nil
		}
	}

	return news.News{}, news.ErrNotExist
}

func (s *Store) Votes() []vote.Vote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]vote.Vote(nil), s.votes...)
}

func (s *Store) CommentLikes() []like.CommentLike {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]like.CommentLike(nil), s.commentLikes...)
}

func (s *Store) voteCountsLocked(newsID int) vote.Counts {
	c := vote.Counts{}
	for _, v := range s.votes {
		if v.NewsID != newsID {
			continue
		}

		switch v.Choice {
		case vote.Fake:
			c.Fake++
		case vote.NotFake:
			c.NotFake++
		case vote.Undecided:
			c.Undecided++
		}
	}

	return c
}

func (s *Store) GetVoteCounts(newsID int) vote.Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.voteCountsLocked(newsID)
}

func (s *Store) GetStatus(newsID int) vote.Status {
	return s.GetVoteCounts(newsID).Status()
}

func (s *Store) commentsLocked(newsID int) []vote.Vote {
	comments := make([]vote.Vote, 0)
	for _, v := range s.votes {
		if v.NewsID == newsID && v.IsComment() {
			comments = append(comments, v)
		}
	}

	return comments
}

// GetComments returns the votes of newsID that carry a comment or an image,
// most recent first.
func (s *Store) GetComments(newsID int) []vote.Vote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.commentsLocked(newsID)
}

func (s *Store) GetLikes(newsID int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.likes[newsID]
}

func (s *Store) GetCommentLikesCount(commentID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, l := range s.commentLikes {
		if l.CommentID == commentID {
			count++
		}
	}

	return count
}

func (s *Store) HasUserLikedComment(commentID, userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, l := range s.commentLikes {
		if l.Same(commentID, userID) {
			return true
		}
	}

	return false
}

func (s *Store) Localize(n news.News) news.News {
	return n.Localize()
}

// ExistingLinks is the set of links already present, used to skip duplicate
// imports.
func (s *Store) ExistingLinks() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	links := make(map[string]bool, len(s.news))
	for _, n := range s.news {
		if n.Link != "" {
			links[n.Link] = true
		}
	}

	return links
}
