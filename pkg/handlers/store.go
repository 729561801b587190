package handlers

import (
	"time"

	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/news"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/store"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/vote"
)

// Store is the part of store.Store the http layer depends on.
type Store interface {
	News() []news.News
	GetNews(id int) (news.News, error)
	AddNews(f news.Fields) news.News
	AddNewsImported(f news.Fields, createdAt *time.Time) news.News
	ExistingLinks() map[string]bool
	ClearImported() (int, error)
	RemoveAllNews() error
	Localize(n news.News) news.News

	AddVote(in store.VoteInput) (vote.Vote, error)
	GetVoteCounts(newsID int) vote.Counts
	GetStatus(newsID int) vote.Status
	GetComments(newsID int) []vote.Vote

	GetLikes(newsID int) int
	AddLike(newsID int) error
	RemoveLike(newsID int) error

	GetCommentLikesCount(commentID string) int
	HasUserLikedComment(commentID, userID string) bool
	AddCommentLike(commentID, userID string) (bool, error)
	RemoveCommentLike(commentID, userID string) (bool, error)

	GetStatistics() store.Statistics
	BoostSeedVotes(min, max int) (int, error)
	RandomizeEngagement(o store.EngagementOptions) error
	ResetMockData(o store.ResetOptions) error
}

var _ Store = (*store.Store)(nil)

type Translator interface {
	Translate(key string, params map[string]string) string
	Language() string
	SetLanguage(code string) error
}
