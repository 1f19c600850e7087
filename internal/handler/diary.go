package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/wanderplan/wanderplan/internal/auth"
	"github.com/wanderplan/wanderplan/internal/domain"
)

type createDiaryEntryRequest struct {
	Title     string             `json:"title" validate:"required"`
	Content   string             `json:"content" validate:"required"`
	EntryDate openapi_types.Date `json:"entry_date" validate:"required"`
	Location  string             `json:"location,omitempty"`
}

type createDiaryEntryResponse struct {
	Entry   domain.DiaryEntry   `json:"entry"`
	Entries []domain.DiaryEntry `json:"entries"`
}

// ListDiaryEntries handles GET /diary, newest entry date first.
func (s *Server) ListDiaryEntries(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrAuthRequired)
		return
	}

	entries, err := s.diary.List(r.Context(), sess.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
}

// CreateDiaryEntry handles POST /diary.
func (s *Server) CreateDiaryEntry(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrAuthRequired)
		return
	}

	var req createDiaryEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeRequestError(w, "title, content, and entry_date are required")
		return
	}

	created, entries, err := s.diary.Create(r.Context(), domain.DiaryEntry{
		UserID:    sess.UserID,
		Title:     req.Title,
		Content:   req.Content,
		EntryDate: req.EntryDate.Time,
		Location:  req.Location,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, createDiaryEntryResponse{Entry: created, Entries: entries})
}

// DeleteDiaryEntry handles DELETE /diary/{entryID}.
func (s *Server) DeleteDiaryEntry(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrAuthRequired)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "entryID"))
	if err != nil {
		writeRequestError(w, "entry id must be a UUID")
		return
	}

	if err := s.diary.Delete(r.Context(), sess.UserID, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
