package mockdata

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/like"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/news"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/vote"
	"github.com/google/uuid"
)

const (
	week           = 7 * 24 * time.Hour
	syntheticUsers = 1000
	maxCommentLike = 10
)

var ErrInvalidCount = errors.New("news count must be positive")

// Generator builds synthetic news, votes and comment likes. It is not safe for
// concurrent use; the store calls it under its own lock.
type Generator struct {
	rnd *rand.Rand
	Now func() time.Time
}

func New(src rand.Source) *Generator {
	return &Generator{
		rnd: rand.New(src),
		Now: time.Now,
	}
}

// Between returns a random integer in [min, max].
func (g *Generator) Between(min, max int) int {
	if max <= min {
		return min
	}

	return g.rnd.Intn(max-min+1) + min
}

// Chance reports true with probability p.
func (g *Generator) Chance(p float64) bool {
	return g.rnd.Float64() < p
}

func (g *Generator) Pick(list []string) string {
	return list[g.rnd.Intn(len(list))]
}

func (g *Generator) Choice() vote.Choice {
	if g.rnd.Float64() < 0.5 {
		return vote.Fake
	}

	return vote.NotFake
}

func (g *Generator) category() category {
	r := g.rnd.Float64()
	cumulative := 0.0
	for _, c := range categories {
		cumulative += c.weight
		if r < cumulative {
			return c
		}
	}

	return categories[0]
}

func (g *Generator) imageURL(c category, id int) string {
	tag := g.Pick(c.images)
	seed := fmt.Sprintf("%s-%s-%d-%d", c.name, tag, id, g.rnd.Intn(1000))

	return fmt.Sprintf("https://picsum.photos/seed/%s/960/540", seed)
}

func (g *Generator) source(c category) string {
	if c.name == "politics" && g.rnd.Float64() > 0.4 {
		return g.Pick(internationalSources)
	}

	return g.Pick(domesticSources)
}

// SeedNews returns count items with ids 1..count, newest first: item i is
// back-dated by i hours.
func (g *Generator) SeedNews(count int) ([]news.News, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}

	now := g.Now()
	list := make([]news.News, 0, count)

	for i := 0; i < count; i++ {
		id := i + 1
		c := g.category()
		subject := g.Pick(c.subjects)
		action := g.Pick(c.actions)

		title := subject + " " + action
		summary := title + ". This development has significant implications for various sectors."
		content := c.content(subject, action)
		reporter := "Reporter " + string(rune('A'+i%26))
		source := g.source(c)

		list = append(list, news.News{
			ID:        id,
			Title:     title,
			Summary:   summary,
			Content:   content,
			Reporter:  reporter,
			CreatedAt: now.Add(-time.Duration(i) * time.Hour),
			ImageURL:  g.imageURL(c, id),
			Source:    source,
			Link:      fmt.Sprintf("https://example.com/news/%d", id),
			Translations: map[string]news.Translation{
				news.DefaultLanguage: {
					Title:    title,
					Summary:  summary,
					Content:  content,
					Reporter: reporter,
					Source:   source,
				},
			},
			Seed: true,
		})
	}

	return list, nil
}

// Votes emits between 1 and votesPerNews votes for every news id, dated
// within the last week.
func (g *Generator) Votes(newsIDs []int, votesPerNews int) []vote.Vote {
	if votesPerNews <= 0 {
		return []vote.Vote{}
	}

	now := g.Now()
	votes := make([]vote.Vote, 0, len(newsIDs)*votesPerNews/2)

	for _, newsID := range newsIDs {
		n := g.rnd.Intn(votesPerNews) + 1
		for i := 0; i < n; i++ {
			v := vote.Vote{
				ID:        NewVoteID(),
				NewsID:    newsID,
				Choice:    g.Choice(),
				Voter:     fmt.Sprintf("User%d", g.rnd.Intn(syntheticUsers)),
				CreatedAt: now.Add(-time.Duration(g.rnd.Int63n(int64(week)))),
			}
			if g.rnd.Float64() > 0.5 {
				v.Comment = g.Pick(voteComments)
			}

			votes = append(votes, v)
		}
	}

	return votes
}

// CommentLikes gives every comment a coin flip for 1..10 likes from distinct
// synthetic users.
func (g *Generator) CommentLikes(commentIDs []string) []like.CommentLike {
	now := g.Now()
	likes := make([]like.CommentLike, 0, len(commentIDs)*2)

	for _, commentID := range commentIDs {
		if g.rnd.Float64() <= 0.5 {
			continue
		}

		n := g.rnd.Intn(maxCommentLike) + 1
		users := g.rnd.Perm(syntheticUsers)[:n]
		for _, u := range users {
			likes = append(likes, like.CommentLike{
				CommentID: commentID,
				UserID:    fmt.Sprintf("User%d", u),
				CreatedAt: now.Add(-time.Duration(g.rnd.Int63n(int64(week)))),
			})
		}
	}

	return likes
}

// NextID is max(existing ids)+1, or 1 for an empty list.
func NextID(list []news.News) int {
	max := 0
	for _, n := range list {
		if n.ID > max {
			max = n.ID
		}
	}

	return max + 1
}

// NewVoteID returns a time-ordered random token (UUIDv7).
func NewVoteID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
