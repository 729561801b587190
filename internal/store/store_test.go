package store_test

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/like"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/mockdata"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/news"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/storage"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/storage/mock"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/store"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/vote"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Entry {
	contextLogger := logrus.WithFields(logrus.Fields{
		"logger": "LOGRUS",
	})
	contextLogger.Logger.Out = ioutil.Discard

	return contextLogger
}

func newStore(t *testing.T, st storage.Storage, opts store.Options) *store.Store {
	t.Helper()

	return store.New(st, mockdata.New(rand.NewSource(1)), testLogger(), opts)
}

func fields(title string) news.Fields {
	return news.Fields{
		Title:    title,
		Summary:  "summary",
		Content:  "content",
		Reporter: "reporter",
	}
}

// twoNews empties the store and adds news 1 and 2.
func twoNews(t *testing.T, s *store.Store) {
	t.Helper()

	if err := s.RemoveAllNews(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.AddNews(fields("first"))
	s.AddNews(fields("second"))
}

func addVotes(t *testing.T, s *store.Store, newsID int, choice vote.Choice, n int) {
	t.Helper()

	for i := 0; i < n; i++ {
		if _, err := s.AddVote(store.VoteInput{NewsID: newsID, Choice: choice}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
}

func TestNewSeedsStoreAndPersists(t *testing.T) {
	st := storage.NewMemoryRepo()
	s := newStore(t, st, store.Options{SeedCount: 30})

	list := s.News()
	if len(list) != 30 {
		t.Errorf("wrong result, expected %d news, got %d", 30, len(list))
		return
	}
	for i := 1; i < len(list); i++ {
		if list[i].CreatedAt.After(list[i-1].CreatedAt) {
			t.Errorf("wrong result, news %d is newer than news %d", list[i].ID, list[i-1].ID)
		}
	}

	for _, key := range []string{storage.KeyVotes, storage.KeyLikesByNews, storage.KeyCommentLikes} {
		if _, err := st.GetItem(key); err != nil {
			t.Errorf("wrong result, key %s was not written back: %v", key, err)
		}
	}

	for _, n := range list {
		likes := s.GetLikes(n.ID)
		if likes < store.MockLikeMin || likes > store.MockLikeMax {
			t.Errorf("wrong result, news %d got %d likes", n.ID, likes)
		}
		total := s.GetVoteCounts(n.ID).Total()
		if total < 1 || total > store.InitialVotesPerNews {
			t.Errorf("wrong result, news %d got %d votes", n.ID, total)
		}
	}
}

func TestNewLoadsPersistedSnapshots(t *testing.T) {
	st := storage.NewMemoryRepo()
	votes := []vote.Vote{
		{ID: "a", NewsID: 1, Choice: vote.Fake},
		{ID: "b", NewsID: 1, Choice: vote.Fake},
		{ID: "c", NewsID: 2, Choice: vote.NotFake, Comment: "source?"},
		{ID: "d", NewsID: 0, Choice: vote.Fake},
		{ID: "e", NewsID: 3, Choice: "maybe"},
	}
	likes := map[int]int{1: 4, 2: 0, 3: -2}
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	commentLikes := []like.CommentLike{
		{CommentID: "c", UserID: "u1", CreatedAt: at},
		{CommentID: "c", UserID: "u1", CreatedAt: at.Add(time.Hour)},
		{CommentID: "", UserID: "u2", CreatedAt: at},
		{CommentID: "c", UserID: "u3"},
	}
	for key, value := range map[string]interface{}{
		storage.KeyVotes:        votes,
		storage.KeyLikesByNews:  likes,
		storage.KeyCommentLikes: commentLikes,
	} {
		data, _ := json.Marshal(value)
		if err := st.SetItem(key, data); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	s := newStore(t, st, store.Options{SeedCount: 5})

	if got := len(s.Votes()); got != 3 {
		t.Errorf("wrong result, expected %d votes, got %d", 3, got)
	}
	if got := s.GetStatus(1); got != vote.StatusFake {
		t.Errorf("wrong result, expected %s, got %s", vote.StatusFake, got)
	}
	if got := s.GetLikes(1); got != 4 {
		t.Errorf("wrong result, expected %d likes, got %d", 4, got)
	}
	if got := s.GetLikes(3); got != 0 {
		t.Errorf("wrong result, expected negative likes to be dropped, got %d", got)
	}
	if got := s.GetCommentLikesCount("c"); got != 1 {
		t.Errorf("wrong result, expected %d comment likes, got %d", 1, got)
	}
}

func TestNewMalformedVotesFallBack(t *testing.T) {
	st := storage.NewMemoryRepo()
	if err := st.SetItem(storage.KeyVotes, []byte("{not json")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := newStore(t, st, store.Options{SeedCount: 10})
	if len(s.Votes()) == 0 {
		t.Errorf("wrong result, expected generated votes")
		return
	}

	raw, _ := st.GetItem(storage.KeyVotes)
	var persisted []vote.Vote
	if err := json.Unmarshal(raw, &persisted); err != nil {
		t.Errorf("wrong result, generated votes were not written back: %v", err)
		return
	}
	if len(persisted) != len(s.Votes()) {
		t.Errorf("wrong result, expected %d persisted votes, got %d", len(s.Votes()), len(persisted))
	}
}

func TestNewInvalidSeedCountUsesDefault(t *testing.T) {
	s := newStore(t, storage.NewMemoryRepo(), store.Options{SeedCount: -1})

	if got := len(s.News()); got != store.DefaultSeedCount {
		t.Errorf("wrong result, expected %d news, got %d", store.DefaultSeedCount, got)
	}
}

func TestAddNewsAssignsNextID(t *testing.T) {
	s := newStore(t, storage.NewMemoryRepo(), store.Options{SeedCount: 3})

	n := s.AddNews(news.Fields{
		Title:    "  Title  ",
		Summary:  " Summary ",
		Content:  "Content",
		Reporter: " Reporter ",
	})
	if n.ID != 4 {
		t.Errorf("wrong result, expected id %d, got %d", 4, n.ID)
	}
	if n.Title != "Title" || n.Summary != "Summary" || n.Reporter != "Reporter" {
		t.Errorf("wrong result, fields were not trimmed: %#v", n)
	}
	if n.Imported || n.Seed {
		t.Errorf("wrong result, unexpected flags on %#v", n)
	}

	list := s.News()
	if list[0].ID != n.ID {
		t.Errorf("wrong result, expected news %d first, got %d", n.ID, list[0].ID)
	}
}

func TestAddNewsEmptyStoreStartsAtOne(t *testing.T) {
	s := newStore(t, storage.NewMemoryRepo(), store.Options{SeedCount: 3})
	twoNews(t, s)

	list := s.News()
	if list[0].ID != 2 || list[1].ID != 1 {
		t.Errorf("wrong result, expected ids [2 1], got [%d %d]", list[0].ID, list[1].ID)
	}
}

func TestAddNewsImportedKeepsTimestamp(t *testing.T) {
	s := newStore(t, storage.NewMemoryRepo(), store.Options{SeedCount: 3})
	published := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	n := s.AddNewsImported(fields("imported"), &published)
	if !n.Imported {
		t.Errorf("wrong result, expected imported flag")
	}
	if !n.CreatedAt.Equal(published) {
		t.Errorf("wrong result, expected %v, got %v", published, n.CreatedAt)
	}

	other := s.AddNewsImported(fields("no date"), nil)
	if other.CreatedAt.IsZero() {
		t.Errorf("wrong result, expected current time for missing timestamp")
	}
	if s.News()[0].ID != other.ID {
		t.Errorf("wrong result, imported news was not prepended")
	}
}

func TestVoteCountsMatchVotes(t *testing.T) {
	s := newStore(t, storage.NewMemoryRepo(), store.Options{SeedCount: 3})
	twoNews(t, s)

	addVotes(t, s, 1, vote.Fake, 4)
	addVotes(t, s, 1, vote.NotFake, 3)

	counts := s.GetVoteCounts(1)
	expected := vote.Counts{Fake: 4, NotFake: 3}
	if !reflect.DeepEqual(counts, expected) {
		t.Errorf("wrong result, expected %#v, got %#v", expected, counts)
	}

	n := 0
	for _, v := range s.Votes() {
		if v.NewsID == 1 {
			n++
		}
	}
	if counts.Total() != n {
		t.Errorf("wrong result, expected total %d, got %d", n, counts.Total())
	}
}

func TestStatusScenario(t *testing.T) {
	s := newStore(t, storage.NewMemoryRepo(), store.Options{SeedCount: 3})
	twoNews(t, s)

	addVotes(t, s, 1, vote.Fake, 3)
	addVotes(t, s, 1, vote.NotFake, 1)
	addVotes(t, s, 2, vote.Fake, 1)
	addVotes(t, s, 2, vote.NotFake, 1)

	if got := s.GetStatus(1); got != vote.StatusFake {
		t.Errorf("wrong result, expected %s, got %s", vote.StatusFake, got)
	}
	if got := s.GetStatus(2); got != vote.StatusUndecided {
		t.Errorf("wrong result, expected %s, got %s", vote.StatusUndecided, got)
	}
	if got := s.GetStatus(99); got != vote.StatusUndecided {
		t.Errorf("wrong result, expected %s for news without votes, got %s", vote.StatusUndecided, got)
	}
}

func TestAddVoteTrimsAndPrepends(t *testing.T) {
	st := storage.NewMemoryRepo()
	s := newStore(t, st, store.Options{SeedCount: 3})
	twoNews(t, s)

	first, _ := s.AddVote(store.VoteInput{NewsID: 1, Choice: vote.Fake, Comment: "   "})
	second, _ := s.AddVote(store.VoteInput{NewsID: 1, Choice: vote.NotFake, Comment: " looks edited ", Voter: " Ann "})

	if first.ID == "" || first.ID == second.ID {
		t.Errorf("wrong result, expected unique vote ids, got %q and %q", first.ID, second.ID)
	}
	if first.Comment != "" {
		t.Errorf("wrong result, expected blank comment to be dropped, got %q", first.Comment)
	}
	if second.Comment != "looks edited" || second.Voter != "Ann" {
		t.Errorf("wrong result, fields were not trimmed: %#v", second)
	}

	comments := s.GetComments(1)
	if len(comments) != 1 || comments[0].ID != second.ID {
		t.Errorf("wrong result, expected only the commented vote, got %#v", comments)
	}
	if s.Votes()[0].ID != second.ID {
		t.Errorf("wrong result, latest vote is not first")
	}

	raw, _ := st.GetItem(storage.KeyVotes)
	var persisted []vote.Vote
	_ = json.Unmarshal(raw, &persisted)
	if len(persisted) != 2 {
		t.Errorf("wrong result, expected %d persisted votes, got %d", 2, len(persisted))
	}
}

func TestLikeCounter(t *testing.T) {
	st := storage.NewMemoryRepo()
	s := newStore(t, st, store.Options{SeedCount: 3})
	twoNews(t, s)

	if err := s.AddLike(1); err != nil {
		t.Errorf("wrong result, got error: %v", err)
	}
	if got := s.GetLikes(1); got != 1 {
		t.Errorf("wrong result, expected %d, got %d", 1, got)
	}

	if err := s.RemoveLike(1); err != nil {
		t.Errorf("wrong result, got error: %v", err)
	}
	if err := s.RemoveLike(1); err != nil {
		t.Errorf("wrong result, got error: %v", err)
	}
	if got := s.GetLikes(1); got != 0 {
		t.Errorf("wrong result, expected %d, got %d", 0, got)
	}

	raw, _ := st.GetItem(storage.KeyLikesByNews)
	var persisted map[string]int
	_ = json.Unmarshal(raw, &persisted)
	if _, ok := persisted["1"]; ok {
		t.Errorf("wrong result, expected key to be removed at zero, got %s", raw)
	}

	if err := s.LikeNews(2); err != nil {
		t.Errorf("wrong result, got error: %v", err)
	}
	if got := s.GetLikes(2); got != 1 {
		t.Errorf("wrong result, expected %d, got %d", 1, got)
	}
}

func TestCommentLikeIdempotent(t *testing.T) {
	s := newStore(t, storage.NewMemoryRepo(), store.Options{SeedCount: 3})
	twoNews(t, s)

	added, err := s.AddCommentLike("c1", "u1")
	if err != nil || !added {
		t.Errorf("wrong result, expected like to be added, got %v %v", added, err)
	}
	added, err = s.AddCommentLike("c1", "u1")
	if err != nil || added {
		t.Errorf("wrong result, expected duplicate to be ignored, got %v %v", added, err)
	}
	if got := s.GetCommentLikesCount("c1"); got != 1 {
		t.Errorf("wrong result, expected %d, got %d", 1, got)
	}
	if !s.HasUserLikedComment("c1", "u1") || s.HasUserLikedComment("c1", "u2") {
		t.Errorf("wrong result, unexpected liked state")
	}

	if _, err := s.AddCommentLike("", "u1"); err != like.ErrEmptyKey {
		t.Errorf("wrong result, expected error %v, got %v", like.ErrEmptyKey, err)
	}

	removed, err := s.RemoveCommentLike("c1", "u1")
	if err != nil || !removed {
		t.Errorf("wrong result, expected like to be removed, got %v %v", removed, err)
	}
	removed, _ = s.RemoveCommentLike("c1", "u1")
	if removed {
		t.Errorf("wrong result, expected second remove to be a no-op")
	}
	if got := s.GetCommentLikesCount("c1"); got != 0 {
		t.Errorf("wrong result, expected %d, got %d", 0, got)
	}
}

func TestClearImported(t *testing.T) {
	s := newStore(t, storage.NewMemoryRepo(), store.Options{SeedCount: 3})
	before := len(s.Votes())

	imported := s.AddNewsImported(fields("imported"), nil)
	addVotes(t, s, imported.ID, vote.Fake, 3)
	addVotes(t, s, 1, vote.NotFake, 2)

	removed, err := s.ClearImported()
	if err != nil {
		t.Errorf("wrong result, got error: %v", err)
	}
	if removed != 1 {
		t.Errorf("wrong result, expected %d removed, got %d", 1, removed)
	}
	if _, err := s.GetNews(imported.ID); err != news.ErrNotExist {
		t.Errorf("wrong result, expected error %v, got %v", news.ErrNotExist, err)
	}
	if got := len(s.News()); got != 3 {
		t.Errorf("wrong result, expected %d seed news, got %d", 3, got)
	}
	if got := len(s.Votes()); got != before+2 {
		t.Errorf("wrong result, expected %d votes, got %d", before+2, got)
	}
	if got := s.GetVoteCounts(imported.ID).Total(); got != 0 {
		t.Errorf("wrong result, expected imported votes removed, got %d", got)
	}
}

func TestRemoveAllNewsThenQuery(t *testing.T) {
	s := newStore(t, storage.NewMemoryRepo(), store.Options{SeedCount: 10})

	if err := s.RemoveAllNews(); err != nil {
		t.Errorf("wrong result, got error: %v", err)
	}

	if got := s.GetLikes(1); got != 0 {
		t.Errorf("wrong result, expected %d, got %d", 0, got)
	}
	if got := s.GetComments(1); len(got) != 0 {
		t.Errorf("wrong result, expected no comments, got %d", len(got))
	}

	st := s.GetStatistics()
	expected := store.Statistics{
		NewsByStatus: map[vote.Status]int{
			vote.StatusFake:      0,
			vote.StatusNotFake:   0,
			vote.StatusUndecided: 0,
		},
		HotNews: []store.HotNews{},
	}
	if !reflect.DeepEqual(st, expected) {
		t.Errorf("wrong result, expected %#v, got %#v", expected, st)
	}
}

func TestStatistics(t *testing.T) {
	s := newStore(t, storage.NewMemoryRepo(), store.Options{SeedCount: 3})
	twoNews(t, s)

	addVotes(t, s, 1, vote.Fake, 2)
	v, _ := s.AddVote(store.VoteInput{NewsID: 2, Choice: vote.NotFake, Comment: "source is reliable"})
	_, _ = s.AddVote(store.VoteInput{NewsID: 2, Choice: vote.NotFake, ImageURL: "https://example.com/a.png"})
	_ = s.AddLike(2)
	_ = s.AddLike(2)
	_ = s.AddLike(1)
	_, _ = s.AddCommentLike(v.ID, "u1")
	_, _ = s.AddCommentLike(v.ID, "u2")
	_, _ = s.AddCommentLike(v.ID, "u3")

	st := s.GetStatistics()
	if st.TotalNews != 2 || st.TotalVotes != 4 || st.TotalComments != 2 {
		t.Errorf("wrong result, unexpected totals %#v", st)
	}
	if st.TotalNewsLikes != 3 || st.TotalCommentLikes != 3 {
		t.Errorf("wrong result, unexpected like totals %#v", st)
	}
	if st.CommentLikeRatio != 1.5 {
		t.Errorf("wrong result, expected ratio %v, got %v", 1.5, st.CommentLikeRatio)
	}
	if st.NewsByStatus[vote.StatusFake] != 1 || st.NewsByStatus[vote.StatusNotFake] != 1 {
		t.Errorf("wrong result, unexpected histogram %#v", st.NewsByStatus)
	}

	expectedHot := []store.HotNews{
		{ID: 2, Title: "second", Likes: 2, Comments: 2},
		{ID: 1, Title: "first", Likes: 1, Comments: 0},
	}
	if !reflect.DeepEqual(st.HotNews, expectedHot) {
		t.Errorf("wrong result, expected %#v, got %#v", expectedHot, st.HotNews)
	}
}

func TestStatisticsNoCommentsRatio(t *testing.T) {
	s := newStore(t, storage.NewMemoryRepo(), store.Options{SeedCount: 3})
	twoNews(t, s)
	addVotes(t, s, 1, vote.Fake, 2)

	if got := s.GetStatistics().CommentLikeRatio; got != 0 {
		t.Errorf("wrong result, expected ratio 0, got %v", got)
	}
}

func TestHotNewsStableTopFive(t *testing.T) {
	s := newStore(t, storage.NewMemoryRepo(), store.Options{SeedCount: 3})
	if err := s.RemoveAllNews(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 7; i++ {
		s.AddNews(fields("news"))
	}
	// list order is 7..1; only news 3 gets extra likes
	_ = s.AddLike(3)

	hot := s.GetStatistics().HotNews
	ids := make([]int, 0, len(hot))
	for _, h := range hot {
		ids = append(ids, h.ID)
	}
	expected := []int{3, 7, 6, 5, 4}
	if !reflect.DeepEqual(ids, expected) {
		t.Errorf("wrong result, expected %v, got %v", expected, ids)
	}
}

func TestBoostSeedVotes(t *testing.T) {
	s := newStore(t, storage.NewMemoryRepo(), store.Options{SeedCount: 5})
	imported := s.AddNewsImported(fields("imported"), nil)

	added, err := s.BoostSeedVotes(20, 25)
	if err != nil {
		t.Errorf("wrong result, got error: %v", err)
	}
	if added == 0 {
		t.Errorf("wrong result, expected votes to be added")
	}

	for _, n := range s.News() {
		c := s.GetVoteCounts(n.ID)
		if n.ID == imported.ID {
			if c.Total() != 0 {
				t.Errorf("wrong result, imported news got %d votes", c.Total())
			}
			continue
		}
		if total := c.Fake + c.NotFake; total < 20 || total > 25 {
			t.Errorf("wrong result, news %d has %d votes", n.ID, total)
		}
	}

	before := len(s.Votes())
	added, _ = s.BoostSeedVotes(1, 2)
	if added != 0 || len(s.Votes()) != before {
		t.Errorf("wrong result, boost below current totals must not change votes")
	}
}

func TestPrimeSeedStatuses(t *testing.T) {
	st := storage.NewMemoryRepo()
	if err := st.SetItem(storage.KeyVotes, []byte("[]")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := newStore(t, st, store.Options{SeedCount: 4})

	if err := s.PrimeSeedStatuses(); err != nil {
		t.Errorf("wrong result, got error: %v", err)
	}

	expected := []vote.Status{vote.StatusFake, vote.StatusFake, vote.StatusNotFake, vote.StatusNotFake}
	for i, n := range s.News() {
		if got := s.GetStatus(n.ID); got != expected[i] {
			t.Errorf("wrong result, news %d expected %s, got %s", n.ID, expected[i], got)
		}
		if got := s.GetVoteCounts(n.ID).Total(); got != 7 {
			t.Errorf("wrong result, news %d expected %d votes, got %d", n.ID, 7, got)
		}
	}
}

func TestPrimeOnStart(t *testing.T) {
	s := newStore(t, storage.NewMemoryRepo(), store.Options{SeedCount: 4, PrimeOnStart: true})

	// randomized engagement is added on top of the primed majorities
	if got := len(s.Votes()); got < 4*(7+15) {
		t.Errorf("wrong result, expected at least %d votes, got %d", 4*(7+15), got)
	}
	for _, n := range s.News() {
		if got := s.GetLikes(n.ID); got < 10 {
			t.Errorf("wrong result, news %d expected at least %d likes, got %d", n.ID, 10, got)
		}
	}
}

func TestRandomizeEngagement(t *testing.T) {
	st := storage.NewMemoryRepo()
	s := newStore(t, st, store.Options{SeedCount: 3})
	twoNews(t, s)

	err := s.RandomizeEngagement(store.EngagementOptions{
		LikeMin:     2,
		LikeMax:     2,
		VoteMin:     3,
		VoteMax:     3,
		CommentRate: 1,
		ImageRate:   0,
	})
	if err != nil {
		t.Errorf("wrong result, got error: %v", err)
	}

	for _, id := range []int{1, 2} {
		if got := s.GetLikes(id); got != 2 {
			t.Errorf("wrong result, expected %d likes, got %d", 2, got)
		}
		if got := s.GetVoteCounts(id).Total(); got != 3 {
			t.Errorf("wrong result, expected %d votes, got %d", 3, got)
		}
		if got := len(s.GetComments(id)); got != 3 {
			t.Errorf("wrong result, expected %d comments, got %d", 3, got)
		}
	}
	for _, v := range s.Votes() {
		if v.ImageURL != "" {
			t.Errorf("wrong result, expected no images, got %q", v.ImageURL)
		}
	}
}

func TestRandomizeEngagementNeverRemovesLikes(t *testing.T) {
	s := newStore(t, storage.NewMemoryRepo(), store.Options{SeedCount: 5})

	before := make(map[int]int)
	for _, n := range s.News() {
		before[n.ID] = s.GetLikes(n.ID)
	}

	err := s.RandomizeEngagement(store.EngagementOptions{LikeMin: -1000, LikeMax: -1000})
	if err != nil {
		t.Errorf("wrong result, got error: %v", err)
	}

	for id, likes := range before {
		if got := s.GetLikes(id); got != likes {
			t.Errorf("wrong result, news %d expected %d likes, got %d", id, likes, got)
		}
	}
}

func TestEngagementOptionsValidate(t *testing.T) {
	cases := []struct {
		options  store.EngagementOptions
		expected error
	}{
		{store.DefaultEngagement(), nil},
		{store.EngagementOptions{LikeMin: -1, LikeMax: 5}, store.ErrBadEngagement},
		{store.EngagementOptions{LikeMin: 5, LikeMax: 1}, store.ErrBadEngagement},
		{store.EngagementOptions{VoteMin: -1, VoteMax: 0}, store.ErrBadEngagement},
		{store.EngagementOptions{CommentRate: 1.5}, store.ErrBadEngagement},
		{store.EngagementOptions{ImageRate: -0.1}, store.ErrBadEngagement},
	}

	for _, c := range cases {
		if err := c.options.Validate(); err != c.expected {
			t.Errorf("wrong result for %#v, expected %v, got %v", c.options, c.expected, err)
		}
	}
}

func TestResetMockDataKeepsNews(t *testing.T) {
	s := newStore(t, storage.NewMemoryRepo(), store.Options{SeedCount: 60})
	s.AddNews(fields("Added by a reader"))
	before := s.News()
	_, _ = s.AddCommentLike("stale", "u1")

	if err := s.ResetMockData(store.ResetOptions{RegenerateNews: false}); err != nil {
		t.Errorf("wrong result, got error: %v", err)
	}

	if !reflect.DeepEqual(s.News(), before) {
		t.Errorf("wrong result, news list changed on reset without regeneration")
	}
	if s.HasUserLikedComment("stale", "u1") {
		t.Errorf("wrong result, comment likes were not rebuilt")
	}
	for _, n := range before {
		total := s.GetVoteCounts(n.ID).Total()
		if total < 1 || total > store.ResetVotesPerNews {
			t.Errorf("wrong result, news %d got %d votes", n.ID, total)
		}
		likes := s.GetLikes(n.ID)
		if likes < store.MockLikeMin || likes > store.MockLikeMax {
			t.Errorf("wrong result, news %d got %d likes", n.ID, likes)
		}
	}
}

func TestResetMockDataGuaranteesMinimum(t *testing.T) {
	s := newStore(t, storage.NewMemoryRepo(), store.Options{SeedCount: 30})

	if err := s.ResetMockData(store.ResetOptions{RegenerateNews: true}); err != nil {
		t.Errorf("wrong result, got error: %v", err)
	}
	if got := len(s.News()); got < store.MinSeedNews {
		t.Errorf("wrong result, expected at least %d news, got %d", store.MinSeedNews, got)
	}

	if err := s.RemoveAllNews(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.ResetMockData(store.ResetOptions{}); err != nil {
		t.Errorf("wrong result, got error: %v", err)
	}
	if got := len(s.News()); got != store.MinSeedNews {
		t.Errorf("wrong result, expected %d news, got %d", store.MinSeedNews, got)
	}
}

func TestResetMockDataRecovers(t *testing.T) {
	s := newStore(t, storage.NewMemoryRepo(), store.Options{SeedCount: -1})

	err := s.ResetMockData(store.ResetOptions{RegenerateNews: true})
	if !errors.Is(err, mockdata.ErrInvalidCount) {
		t.Errorf("wrong result, expected error %v, got %v", mockdata.ErrInvalidCount, err)
	}
	if got := len(s.News()); got != store.DefaultSeedCount {
		t.Errorf("wrong result, expected %d recovered news, got %d", store.DefaultSeedCount, got)
	}
	if len(s.Votes()) != 0 {
		t.Errorf("wrong result, expected votes to be cleared on recovery")
	}
}

func TestPersistFailureKeepsState(t *testing.T) {
	controller := gomock.NewController(t)
	defer controller.Finish()

	st := mock.NewMockStorage(controller)
	st.EXPECT().GetItem(gomock.Any()).Return(nil, storage.ErrNotFound).AnyTimes()
	st.EXPECT().SetItem(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	s := newStore(t, st, store.Options{SeedCount: 3})

	writeErr := errors.New("quota exceeded")
	st.EXPECT().SetItem(storage.KeyVotes, gomock.Any()).Return(writeErr)

	v, err := s.AddVote(store.VoteInput{NewsID: 1, Choice: vote.Fake})
	if !store.IsPersistError(err) {
		t.Errorf("wrong result, expected persist error, got %v", err)
	}
	if !errors.Is(err, writeErr) {
		t.Errorf("wrong result, expected wrapped %v, got %v", writeErr, err)
	}

	var perr *store.PersistError
	if errors.As(err, &perr) && perr.Key != storage.KeyVotes {
		t.Errorf("wrong result, expected key %s, got %s", storage.KeyVotes, perr.Key)
	}
	if s.Votes()[0].ID != v.ID {
		t.Errorf("wrong result, vote is missing from memory after failed write")
	}
}

func TestReadFailureSkipsWriteBack(t *testing.T) {
	controller := gomock.NewController(t)
	defer controller.Finish()

	st := mock.NewMockStorage(controller)
	st.EXPECT().GetItem(gomock.Any()).Return(nil, errors.New("storage disabled")).Times(3)

	s := newStore(t, st, store.Options{SeedCount: 3})
	if len(s.News()) != 3 || len(s.Votes()) == 0 {
		t.Errorf("wrong result, expected in-memory defaults")
	}
}

func TestSubscribeReceivesEvents(t *testing.T) {
	s := newStore(t, storage.NewMemoryRepo(), store.Options{SeedCount: 3})

	var received []store.Event
	s.Subscribe(func(e store.Event) {
		// listeners run after the lock is released
		_ = s.GetLikes(e.NewsID)
		received = append(received, e)
	})

	n := s.AddNews(fields("breaking"))
	_, _ = s.AddVote(store.VoteInput{NewsID: n.ID, Choice: vote.NotFake})
	_ = s.AddLike(n.ID)

	expected := []store.EventType{store.EventNewsAdded, store.EventVoteAdded, store.EventLikeAdded}
	if len(received) != len(expected) {
		t.Fatalf("wrong result, expected %d events, got %d", len(expected), len(received))
	}
	for i, e := range received {
		if e.Type != expected[i] || e.NewsID != n.ID {
			t.Errorf("wrong result, event %d is %#v", i, e)
		}
	}
	if received[1].Choice != vote.NotFake {
		t.Errorf("wrong result, expected choice %s, got %s", vote.NotFake, received[1].Choice)
	}
}

type stubImporter struct {
	items []news.Fields
}

func (i stubImporter) Import(add func(f news.Fields, createdAt *time.Time) error, existing map[string]bool) (int, error) {
	n := 0
	for _, f := range i.items {
		if existing[f.Link] {
			continue
		}
		if err := add(f, nil); err != nil {
			return n, err
		}
		n++
	}

	return n, nil
}

func TestAutoImport(t *testing.T) {
	imp := stubImporter{items: []news.Fields{
		{Title: "dup", Link: "https://example.com/news/1"},
		{Title: "fresh", Link: "https://example.com/fresh"},
	}}

	s := newStore(t, storage.NewMemoryRepo(), store.Options{SeedCount: 3, AutoImport: true, Importer: imp})

	list := s.News()
	if len(list) != 4 {
		t.Fatalf("wrong result, expected %d news, got %d", 4, len(list))
	}
	if list[0].Title != "fresh" || !list[0].Imported {
		t.Errorf("wrong result, expected imported item first, got %#v", list[0])
	}
}

func TestLocalize(t *testing.T) {
	s := newStore(t, storage.NewMemoryRepo(), store.Options{SeedCount: 1})

	seed := s.News()[0]
	if got := s.Localize(seed); got.Title != seed.Translations[news.DefaultLanguage].Title {
		t.Errorf("wrong result, expected english title, got %q", got.Title)
	}

	plain := s.AddNews(fields("plain"))
	got := s.Localize(plain)
	if got.Title != "News Report 2" || got.Summary != "Summary for news 2" || got.Content != "Content for news 2" {
		t.Errorf("wrong result, unexpected placeholder %#v", got)
	}
}
