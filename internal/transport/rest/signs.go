package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/signphon/internal/domain"
	"github.com/heartmarshall/signphon/internal/service/signbank"
)

// signService defines the operations SignHandler needs.
type signService interface {
	Parse(ctx context.Context, input signbank.ParseInput) (domain.Sign, error)
	Translate(ctx context.Context, text, sep string) (signbank.Translation, error)
	Compare(ctx context.Context, a, b string) (signbank.CompareResult, error)
	Create(ctx context.Context, input signbank.CreateInput) (*domain.SignEntry, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.SignEntry, error)
	List(ctx context.Context, input signbank.ListInput) (signbank.ListResult, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Reparse(ctx context.Context, id uuid.UUID) (*domain.SignEntry, error)
	Similar(ctx context.Context, input signbank.SimilarInput) ([]domain.ScoredEntry, error)
}

// SignHandler serves the transcription and sign bank endpoints.
type SignHandler struct {
	svc signService
	log *slog.Logger
}

// NewSignHandler creates a SignHandler.
func NewSignHandler(svc signService, logger *slog.Logger) *SignHandler {
	return &SignHandler{svc: svc, log: logger.With("handler", "signs")}
}

type parseRequest struct {
	Text      string   `json:"text"`
	ASCII     *bool    `json:"ascii"`
	Separator *string  `json:"separator"`
	Enabled   []string `json:"enabled"`
}

type compareRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

type createRequest struct {
	Gloss  string `json:"gloss"`
	Text   string `json:"text"`
	Source string `json:"source"`
}

type translateResponse struct {
	Text  string   `json:"text"`
	Names []string `json:"names"`
}

type compareResponse struct {
	Distance float64     `json:"distance"`
	A        domain.Sign `json:"a"`
	B        domain.Sign `json:"b"`
}

type signEntryResponse struct {
	ID        string      `json:"id"`
	Gloss     string      `json:"gloss"`
	Text      string      `json:"text"`
	Source    string      `json:"source,omitempty"`
	Sign      domain.Sign `json:"sign"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type listResponse struct {
	Items  []signEntryResponse `json:"items"`
	Total  int                 `json:"total"`
	Limit  int                 `json:"limit"`
	Offset int                 `json:"offset"`
}

type scoredEntryResponse struct {
	Entry    signEntryResponse `json:"entry"`
	Distance float64           `json:"distance"`
}

type similarResponse struct {
	Items []scoredEntryResponse `json:"items"`
}

// Parse handles POST /v1/parse.
func (h *SignHandler) Parse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sign, err := h.svc.Parse(r.Context(), signbank.ParseInput{
		Text:      req.Text,
		ASCII:     req.ASCII,
		Separator: req.Separator,
		Enabled:   req.Enabled,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sign)
}

// Translate handles GET /v1/translate?text=&sep=.
func (h *SignHandler) Translate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	tr, err := h.svc.Translate(r.Context(), q.Get("text"), q.Get("sep"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	names := tr.Names
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, translateResponse{Text: tr.Text, Names: names})
}

// Compare handles POST /v1/compare.
func (h *SignHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.Compare(r.Context(), req.A, req.B)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, compareResponse{Distance: res.Distance, A: res.A, B: res.B})
}

// Create handles POST /v1/signs. Editor only.
func (h *SignHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	entry, err := h.svc.Create(r.Context(), signbank.CreateInput{
		Gloss:  req.Gloss,
		Text:   req.Text,
		Source: req.Source,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Location", "/v1/signs/"+entry.ID.String())
	writeJSON(w, http.StatusCreated, toSignEntryResponse(*entry))
}

// Get handles GET /v1/signs/{id}.
func (h *SignHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	entry, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSignEntryResponse(*entry))
}

// List handles GET /v1/signs?search=&source=&limit=&offset=.
func (h *SignHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, ok := queryInt(w, q.Get("limit"), "limit")
	if !ok {
		return
	}
	offset, ok := queryInt(w, q.Get("offset"), "offset")
	if !ok {
		return
	}

	input := signbank.ListInput{Limit: limit, Offset: offset}
	if q.Has("search") {
		s := q.Get("search")
		input.Search = &s
	}
	if q.Has("source") {
		s := q.Get("source")
		input.Source = &s
	}

	res, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]signEntryResponse, 0, len(res.Entries))
	for _, e := range res.Entries {
		items = append(items, toSignEntryResponse(e))
	}
	writeJSON(w, http.StatusOK, listResponse{
		Items:  items,
		Total:  res.Total,
		Limit:  res.Limit,
		Offset: res.Offset,
	})
}

// Similar handles GET /v1/signs/{id}/similar?limit=.
func (h *SignHandler) Similar(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	limit, ok := queryInt(w, r.URL.Query().Get("limit"), "limit")
	if !ok {
		return
	}

	scored, err := h.svc.Similar(r.Context(), signbank.SimilarInput{ID: id, Limit: limit})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]scoredEntryResponse, 0, len(scored))
	for _, s := range scored {
		items = append(items, scoredEntryResponse{
			Entry:    toSignEntryResponse(s.Entry),
			Distance: s.Distance,
		})
	}
	writeJSON(w, http.StatusOK, similarResponse{Items: items})
}

// Delete handles DELETE /v1/signs/{id}. Editor only.
func (h *SignHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Reparse handles POST /v1/signs/{id}/reparse. Editor only.
func (h *SignHandler) Reparse(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	entry, err := h.svc.Reparse(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSignEntryResponse(*entry))
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  domain.ErrValidation.Error(),
			Fields: []fieldError{{Field: "id", Message: "must be a UUID"}},
		})
		return uuid.Nil, false
	}
	return id, true
}

// queryInt parses an optional integer query parameter. Empty means zero.
func queryInt(w http.ResponseWriter, raw, field string) (int, bool) {
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  domain.ErrValidation.Error(),
			Fields: []fieldError{{Field: field, Message: "must be an integer"}},
		})
		return 0, false
	}
	return n, true
}

func toSignEntryResponse(e domain.SignEntry) signEntryResponse {
	return signEntryResponse{
		ID:        e.ID.String(),
		Gloss:     e.Gloss,
		Text:      e.Text,
		Source:    e.Source,
		Sign:      e.Sign,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
