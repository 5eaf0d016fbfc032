package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jacksmith/deck/internal/model"
	"github.com/jacksmith/deck/internal/ops"
	"github.com/jacksmith/deck/internal/storage"
)

const maxBodyBytes = 10 << 20

// Handler holds API route handlers.
type Handler struct {
	sess *ops.Session
}

// NewHandler creates a new Handler.
func NewHandler(sess *ops.Session) *Handler {
	return &Handler{sess: sess}
}

// GetDeck handles GET /deck.
func (h *Handler) GetDeck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.sess.Snapshot())
}

// ListCards handles GET /cards with an optional ?q= substring filter.
func (h *Handler) ListCards(w http.ResponseWriter, r *http.Request) {
	d := h.sess.Snapshot()

	var positions []int
	if q := r.URL.Query().Get("q"); q != "" {
		positions = ops.Find(d, q)
	} else {
		positions = make([]int, d.Len())
		for i := range positions {
			positions[i] = i
		}
	}

	writeJSON(w, http.StatusOK, CardListResponse{
		Cards: cardItems(d, positions),
		Total: len(positions),
	})
}

// AddCard handles POST /cards.
func (h *Handler) AddCard(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeTagline(w, r)
	if !ok {
		return
	}

	placed, err := h.sess.AddCard(req.Tagline)
	if err != nil {
		writeError(w, "add card", err)
		return
	}
	writeJSON(w, http.StatusCreated, CardItem{Index: placed.Index, Card: placed.Card})
}

// RenameCard handles PUT /cards/{index}.
func (h *Handler) RenameCard(w http.ResponseWriter, r *http.Request) {
	index, ok := cardIndex(w, r)
	if !ok {
		return
	}
	req, ok := decodeTagline(w, r)
	if !ok {
		return
	}

	changed, placed, err := h.sess.RenameCard(index, req.Tagline)
	if err != nil {
		writeError(w, "rename card", err)
		return
	}
	writeJSON(w, http.StatusOK, RenameResponse{
		Changed: changed,
		Card:    CardItem{Index: placed.Index, Card: placed.Card},
	})
}

// DeleteCard handles DELETE /cards/{index}.
func (h *Handler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	index, ok := cardIndex(w, r)
	if !ok {
		return
	}

	if _, err := h.sess.DeleteCard(index); err != nil {
		writeError(w, "delete card", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Import handles POST /import. The body is a deck document; only its
// "proofs" records are merged.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("failed to read body"))
		return
	}

	doc, err := model.ParseImport(body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	result, err := h.sess.ImportDocument(doc)
	if err != nil {
		writeError(w, "import", err)
		return
	}
	writeJSON(w, http.StatusOK, ImportResponse{Added: result.Added, Skipped: result.Skipped})
}

// Save handles POST /save.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	if err := h.sess.Save(); err != nil {
		writeError(w, "save", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeTagline(w http.ResponseWriter, r *http.Request) (TaglineRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req TaglineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return req, false
	}
	return req, true
}

func cardIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("index must be an integer"))
		return 0, false
	}
	return index, true
}

// writeError maps domain errors to status codes. A save failure after a
// mutation is a 500; the mutation itself stays applied in the session.
func writeError(w http.ResponseWriter, op string, err error) {
	var (
		dup   *model.DuplicateTaglineError
		rng   *model.IndexOutOfRangeError
		inval *model.ValidationError
		write *storage.FileWriteError
	)
	switch {
	case errors.As(err, &dup):
		writeJSON(w, http.StatusConflict, errorBody(err.Error()))
	case errors.As(err, &rng):
		writeJSON(w, http.StatusNotFound, errorBody(err.Error()))
	case errors.As(err, &inval):
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
	case errors.As(err, &write):
		slog.Error(op+" failed", slog.String("path", write.Path), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody(err.Error()))
	default:
		slog.Error(op+" failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
	}
}
