package store

import (
	"sort"

	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/vote"
)

const hotNewsLimit = 5

type HotNews struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Likes    int    `json:"likes"`
	Comments int    `json:"comments"`
}

type Statistics struct {
	TotalNews         int                 `json:"totalNews"`
	TotalVotes        int                 `json:"totalVotes"`
	TotalComments     int                 `json:"totalComments"`
	TotalNewsLikes    int                 `json:"totalNewsLikes"`
	TotalCommentLikes int                 `json:"totalCommentLikes"`
	NewsByStatus      map[vote.Status]int `json:"newsByStatus"`
	HotNews           []HotNews           `json:"hotNews"`
	CommentLikeRatio  float64             `json:"commentLikeRatio"`
}

func (s *Store) GetStatistics() Statistics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Statistics{
		TotalNews:         len(s.news),
		TotalVotes:        len(s.votes),
		TotalCommentLikes: len(s.commentLikes),
		NewsByStatus: map[vote.Status]int{
			vote.StatusFake:      0,
			vote.StatusNotFake:   0,
			vote.StatusUndecided: 0,
		},
	}

	for _, v := range s.votes {
		if v.IsComment() {
			st.TotalComments++
		}
	}
	for _, count := range s.likes {
		st.TotalNewsLikes += count
	}

	hot := make([]HotNews, 0, len(s.news))
	for _, n := range s.news {
		st.NewsByStatus[s.voteCountsLocked(n.ID).Status()]++
		hot = append(hot, HotNews{
			ID:       n.ID,
			Title:    n.Title,
			Likes:    s.likes[n.ID],
			Comments: len(s.commentsLocked(n.ID)),
		})
	}

	sort.SliceStable(hot, func(i, j int) bool {
		return hot[i].Likes > hot[j].Likes
	})
	if len(hot) > hotNewsLimit {
		hot = hot[:hotNewsLimit]
	}
	st.HotNews = hot

	if st.TotalComments > 0 {
		st.CommentLikeRatio = float64(st.TotalCommentLikes) / float64(st.TotalComments)
	}

	return st
}
