package store

import (
	"errors"
	"fmt"

	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/like"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/mockdata"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/storage"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/vote"
)

type EngagementOptions struct {
	LikeMin     int     `json:"likeMin"`
	LikeMax     int     `json:"likeMax"`
	VoteMin     int     `json:"voteMin"`
	VoteMax     int     `json:"voteMax"`
	CommentRate float64 `json:"commentRate"`
	ImageRate   float64 `json:"imageRate"`
}

func DefaultEngagement() EngagementOptions {
	return EngagementOptions{
		LikeMin:     5,
		LikeMax:     60,
		VoteMin:     8,
		VoteMax:     24,
		CommentRate: 0.35,
		ImageRate:   0.12,
	}
}

var ErrBadEngagement = errors.New("engagement ranges must be non negative with min <= max and rates within [0, 1]")

func (o EngagementOptions) Validate() error {
	if o.LikeMin < 0 || o.LikeMax < o.LikeMin || o.VoteMin < 0 || o.VoteMax < o.VoteMin {
		return ErrBadEngagement
	}
	if o.CommentRate < 0 || o.CommentRate > 1 || o.ImageRate < 0 || o.ImageRate > 1 {
		return ErrBadEngagement
	}

	return nil
}

type ResetOptions struct {
	RegenerateNews bool `json:"regenerateNews"`
}

// BoostSeedVotes tops up the fake + not fake total of every seed news item to
// a random target in [min, max]. Existing votes are never removed.
func (s *Store) BoostSeedVotes(min, max int) (int, error) {
	s.mu.Lock()
	added := make([]vote.Vote, 0)
	for _, n := range s.news {
		if !n.Seed {
			continue
		}

		c := s.voteCountsLocked(n.ID)
		target := s.generator.Between(min, max)
		for i := c.Fake + c.NotFake; i < target; i++ {
			added = append(added, s.newVote(VoteInput{NewsID: n.ID, Choice: s.generator.Choice()}))
		}
	}

	var err error
	if len(added) > 0 {
		s.prependVotes(added)
		err = s.persistVotes()
	}
	s.mu.Unlock()

	s.notify(Event{Type: EventSeedVotesBoosted, Count: len(added), At: s.now()})
	return len(added), err
}

// PrimeSeedStatuses gives the first half of the list a fake majority and the
// remaining seed items a not fake majority.
func (s *Store) PrimeSeedStatuses() error {
	s.mu.Lock()
	half := len(s.news) / 2
	added := make([]vote.Vote, 0, len(s.news)*7)
	for i, n := range s.news {
		if !n.Seed {
			continue
		}

		fake, notFake := 2, 5
		if i < half {
			fake, notFake = 5, 2
		}
		for j := 0; j < fake; j++ {
			added = append(added, s.newVote(VoteInput{NewsID: n.ID, Choice: vote.Fake}))
		}
		for j := 0; j < notFake; j++ {
			added = append(added, s.newVote(VoteInput{NewsID: n.ID, Choice: vote.NotFake}))
		}
	}
	s.prependVotes(added)
	err := s.persistVotes()
	s.mu.Unlock()

	s.notify(Event{Type: EventSeedStatusesPrimed, Count: len(added), At: s.now()})
	return err
}

// RandomizeEngagement adds random likes and votes to every news item and
// persists once at the end.
func (s *Store) RandomizeEngagement(o EngagementOptions) error {
	s.mu.Lock()
	added := make([]vote.Vote, 0)
	for _, n := range s.news {
		// likes only ever grow here
		if inc := s.generator.Between(o.LikeMin, o.LikeMax); inc > 0 {
			s.likes[n.ID] += inc
		}

		count := s.generator.Between(o.VoteMin, o.VoteMax)
		for i := 0; i < count; i++ {
			in := VoteInput{NewsID: n.ID, Choice: s.generator.Choice()}
			if s.generator.Chance(o.CommentRate) {
				in.Comment = s.generator.Pick(mockdata.EngagementPhrases)
			}
			if s.generator.Chance(o.ImageRate) {
				in.ImageURL = fmt.Sprintf("https://picsum.photos/seed/cmt-%d-%d/400/240", n.ID, i)
			}
			if s.generator.Chance(0.4) {
				in.Voter = fmt.Sprintf("User%d", s.generator.Between(1000, 9999))
			}
			added = append(added, s.newVote(in))
		}
	}
	s.prependVotes(added)
	err := errors.Join(s.persistLikes(), s.persistVotes())
	s.mu.Unlock()

	s.notify(Event{Type: EventEngagementRandomized, Count: len(added), At: s.now()})
	return err
}

// ResetMockData rebuilds votes, likes and comment likes from scratch and
// optionally regenerates the news list. At least MinSeedNews items are
// guaranteed afterwards. When generation fails the store falls back to a
// default news list with no votes or likes.
func (s *Store) ResetMockData(o ResetOptions) error {
	s.mu.Lock()
	err := s.resetLocked(o)
	if err != nil && !IsPersistError(err) {
		s.logger.WithField("regenerate_news", o.RegenerateNews).Error("reset mock data failed, recovering: ", err)
		s.recoverLocked(o)
	}
	count := len(s.news)
	s.mu.Unlock()

	s.notify(Event{Type: EventMockDataReset, Count: count, At: s.now()})
	return err
}

func (s *Store) resetLocked(o ResetOptions) error {
	if o.RegenerateNews {
		list, err := s.generator.SeedNews(s.opts.SeedCount)
		if err != nil {
			return fmt.Errorf("regenerate news: %w", err)
		}
		s.news = list
	}

	var errs []error
	for _, key := range []string{storage.KeyVotes, storage.KeyLikesByNews, storage.KeyCommentLikes} {
		if err := s.storage.RemoveItem(key); err != nil {
			errs = append(errs, &PersistError{Key: key, Err: err})
		}
	}

	s.votes = make([]vote.Vote, 0)
	s.likes = make(map[int]int)
	s.commentLikes = make([]like.CommentLike, 0)

	if len(s.news) < MinSeedNews {
		count := s.opts.SeedCount
		if count < MinSeedNews {
			count = MinSeedNews
		}

		list, err := s.generator.SeedNews(count)
		if err != nil {
			return fmt.Errorf("top up news: %w", err)
		}
		s.news = list
	}

	s.votes = s.generator.Votes(s.newsIDs(), ResetVotesPerNews)
	s.likes = s.mockLikes()
	s.commentLikes = s.generator.CommentLikes(s.commentIDs())

	errs = append(errs, s.persistAll())

	return errors.Join(errs...)
}

func (s *Store) recoverLocked(o ResetOptions) {
	if o.RegenerateNews {
		list, err := s.generator.SeedNews(DefaultSeedCount)
		if err != nil {
			s.logger.Error("unable recover news list: ", err)
		} else {
			s.news = list
		}
	}

	s.votes = make([]vote.Vote, 0)
	s.likes = make(map[int]int)
	s.logPersist(errors.Join(s.persistVotes(), s.persistLikes()))
}
