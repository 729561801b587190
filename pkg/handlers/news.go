package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/i18n"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/importer"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/news"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/session"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/store"
	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/internal/vote"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type NewsResponse struct {
	news.News
	Status      vote.Status `json:"status"`
	StatusLabel string      `json:"statusLabel"`
	Votes       vote.Counts `json:"votes"`
	Likes       int         `json:"likes"`
	Comments    int         `json:"comments"`
}

type NewsListResponse struct {
	Items []*NewsResponse `json:"items"`
	Total int             `json:"total"`
	Page  int             `json:"page,omitempty"`
}

type VotesResponse struct {
	NewsID int         `json:"newsId"`
	Counts vote.Counts `json:"counts"`
	Total  int         `json:"total"`
	Status vote.Status `json:"status"`
}

type VoteRequest struct {
	Choice   string `json:"choice"`
	Comment  string `json:"comment"`
	ImageURL string `json:"imageUrl"`
	Voter    string `json:"voter"`
}

type VoteResponse struct {
	Vote    vote.Vote     `json:"vote"`
	Votes   VotesResponse `json:"votes"`
	Message string        `json:"message"`
}

type LikesResponse struct {
	NewsID int `json:"newsId"`
	Likes  int `json:"likes"`
}

type ImportResponse struct {
	Added   int    `json:"added"`
	Skipped int    `json:"skipped"`
	Message string `json:"message"`
}

type CountResponse struct {
	Count   int    `json:"count"`
	Message string `json:"message"`
}

type NewsHandler struct {
	Store      Store
	Translator Translator
	Logger     *logrus.Entry
}

func NewNewsHandler(s Store, t Translator, log *logrus.Entry) *NewsHandler {
	return &NewsHandler{
		Store:      s,
		Translator: t,
		Logger:     log,
	}
}

func (h *NewsHandler) createResponse(n news.News) *NewsResponse {
	counts := h.Store.GetVoteCounts(n.ID)
	status := counts.Status()

	return &NewsResponse{
		News:        h.Store.Localize(n),
		Status:      status,
		StatusLabel: h.Translator.Translate(i18n.StatusKey(status), nil),
		Votes:       counts,
		Likes:       h.Store.GetLikes(n.ID),
		Comments:    len(h.Store.GetComments(n.ID)),
	}
}

// statusFilter maps the ?status= query value onto a vote status.
func statusFilter(value string) (vote.Status, bool) {
	switch value {
	case "fake":
		return vote.StatusFake, true
	case "not_fake":
		return vote.StatusNotFake, true
	case "undecided":
		return vote.StatusUndecided, true
	}

	return "", false
}

func newsID(logger *logrus.Entry, w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := news.ParseID(mux.Vars(r)["id"])
	if err != nil {
		sendMessage(logger, w, r, http.StatusBadRequest, err.Error())
		return 0, false
	}

	return id, true
}

// existingNewsID also answers 404 when the id is well formed but unknown.
func existingNewsID(s Store, logger *logrus.Entry, w http.ResponseWriter, r *http.Request) (int, bool) {
	id, ok := newsID(logger, w, r)
	if !ok {
		return 0, false
	}

	if _, err := s.GetNews(id); err != nil {
		sendMessage(logger, w, r, http.StatusNotFound, err.Error())
		return 0, false
	}

	return id, true
}

func (h *NewsHandler) GetList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var (
		status    vote.Status
		hasFilter bool
	)
	if value := query.Get("status"); value != "" && value != "all" {
		status, hasFilter = statusFilter(value)
		if !hasFilter {
			sendMessage(h.Logger, w, r, http.StatusBadRequest, "unknown status filter")
			return
		}
	}

	items := make([]*NewsResponse, 0)
	for _, n := range h.Store.News() {
		resp := h.createResponse(n)
		if hasFilter && resp.Status != status {
			continue
		}
		items = append(items, resp)
	}

	resp := NewsListResponse{Total: len(items)}
	page, err := pageParam(query.Get("page"))
	if err != nil {
		sendMessage(h.Logger, w, r, http.StatusBadRequest, "page must be a positive number")
		return
	}
	pageSize, err := pageParam(query.Get("pageSize"))
	if err != nil {
		sendMessage(h.Logger, w, r, http.StatusBadRequest, "pageSize must be a positive number")
		return
	}
	if page > 0 {
		if pageSize == 0 {
			pageSize = defaultPageSize
		}
		items = paginate(items, page, pageSize)
		resp.Page = page
	}
	resp.Items = items

	sendJSON(h.Logger, w, r, http.StatusOK, resp)
}

const defaultPageSize = 10

func pageParam(value string) (int, error) {
	if value == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, strconv.ErrSyntax
	}

	return n, nil
}

func paginate(items []*NewsResponse, page, pageSize int) []*NewsResponse {
	start := (page - 1) * pageSize
	if start >= len(items) {
		return make([]*NewsResponse, 0)
	}

	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}

func (h *NewsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := newsID(h.Logger, w, r)
	if !ok {
		return
	}

	n, err := h.Store.GetNews(id)
	if err != nil {
		sendMessage(h.Logger, w, r, http.StatusNotFound, err.Error())
		return
	}

	sendJSON(h.Logger, w, r, http.StatusOK, h.createResponse(n))
}

func (h *NewsHandler) Add(w http.ResponseWriter, r *http.Request) {
	var f news.Fields
	if err := decodeJSON(r, &f); err != nil {
		sendMessage(h.Logger, w, r, http.StatusBadRequest, "bad json in request body")
		return
	}

	if err := f.Trimmed().Validate(); err != nil {
		sendMessage(h.Logger, w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	n := h.Store.AddNews(f)
	sendJSON(h.Logger, w, r, http.StatusCreated, h.createResponse(n))
}

func (h *NewsHandler) Import(w http.ResponseWriter, r *http.Request) {
	var items []importer.Item
	if err := decodeJSON(r, &items); err != nil {
		sendMessage(h.Logger, w, r, http.StatusBadRequest, "bad json in request body")
		return
	}

	add := func(f news.Fields, createdAt *time.Time) error {
		h.Store.AddNewsImported(f, createdAt)
		return nil
	}
	added, skipped, err := importer.Apply(items, add, h.Store.ExistingLinks())
	if err != nil {
		sendInternalError(h.Logger, w, r, "unable import news", err)
		return
	}

	if added == 0 && skipped == 0 {
		sendMessage(h.Logger, w, r, http.StatusBadRequest, h.Translator.Translate("noContentFound", nil))
		return
	}

	message := h.Translator.Translate("importSuccess", map[string]string{"count": strconv.Itoa(added)})
	if skipped > 0 {
		message += ". " + h.Translator.Translate("importSkipped", map[string]string{"count": strconv.Itoa(skipped)})
	}

	sendJSON(h.Logger, w, r, http.StatusCreated, ImportResponse{
		Added:   added,
		Skipped: skipped,
		Message: message,
	})
}

func (h *NewsHandler) ClearImported(w http.ResponseWriter, r *http.Request) {
	count, err := h.Store.ClearImported()
	logPersist(h.Logger, r, err)

	sendJSON(h.Logger, w, r, http.StatusOK, CountResponse{
		Count:   count,
		Message: h.Translator.Translate("importedCleared", map[string]string{"count": strconv.Itoa(count)}),
	})
}

func (h *NewsHandler) RemoveAll(w http.ResponseWriter, r *http.Request) {
	logPersist(h.Logger, r, h.Store.RemoveAllNews())

	sendJSON(h.Logger, w, r, http.StatusOK, MessageResponse{
		Message: h.Translator.Translate("allNewsRemoved", nil),
	})
}

func (h *NewsHandler) votesResponse(id int) VotesResponse {
	counts := h.Store.GetVoteCounts(id)

	return VotesResponse{
		NewsID: id,
		Counts: counts,
		Total:  counts.Total(),
		Status: counts.Status(),
	}
}

func (h *NewsHandler) GetVotes(w http.ResponseWriter, r *http.Request) {
	id, ok := existingNewsID(h.Store, h.Logger, w, r)
	if !ok {
		return
	}

	sendJSON(h.Logger, w, r, http.StatusOK, h.votesResponse(id))
}

func (h *NewsHandler) AddVote(w http.ResponseWriter, r *http.Request) {
	id, ok := existingNewsID(h.Store, h.Logger, w, r)
	if !ok {
		return
	}

	var req VoteRequest
	if err := decodeJSON(r, &req); err != nil {
		sendMessage(h.Logger, w, r, http.StatusBadRequest, "bad json in request body")
		return
	}

	choice, err := vote.ParseChoice(req.Choice)
	if err != nil {
		sendMessage(h.Logger, w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	voter := req.Voter
	if sess, err := session.GetSessionFromContext(r.Context()); err == nil && voter == "" {
		voter = sess.Name
	}

	v, err := h.Store.AddVote(store.VoteInput{
		NewsID:   id,
		Choice:   choice,
		Comment:  req.Comment,
		ImageURL: req.ImageURL,
		Voter:    voter,
	})
	logPersist(h.Logger, r, err)

	sendJSON(h.Logger, w, r, http.StatusCreated, VoteResponse{
		Vote:    v,
		Votes:   h.votesResponse(id),
		Message: h.Translator.Translate("voteRecorded", nil),
	})
}

func (h *NewsHandler) Like(w http.ResponseWriter, r *http.Request) {
	id, ok := existingNewsID(h.Store, h.Logger, w, r)
	if !ok {
		return
	}

	logPersist(h.Logger, r, h.Store.AddLike(id))
	sendJSON(h.Logger, w, r, http.StatusOK, LikesResponse{NewsID: id, Likes: h.Store.GetLikes(id)})
}

func (h *NewsHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	id, ok := existingNewsID(h.Store, h.Logger, w, r)
	if !ok {
		return
	}

	logPersist(h.Logger, r, h.Store.RemoveLike(id))
	sendJSON(h.Logger, w, r, http.StatusOK, LikesResponse{NewsID: id, Likes: h.Store.GetLikes(id)})
}
