package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/edgeskills/edge-backend/internal/domain"
	"github.com/edgeskills/edge-backend/internal/service/journal"
)

type journalService interface {
	ListEntries(ctx context.Context, attributeCode string) ([]domain.EntryRef, error)
	GetEntry(ctx context.Context, entryID int64) (*domain.EntryDetail, error)
	SaveEntry(ctx context.Context, input journal.SaveEntryInput) (int64, error)
	DeleteEntry(ctx context.Context, entryID int64) error
}

type submissionService interface {
	SubmitEntry(ctx context.Context, entryID int64) (string, error)
}

// EntryHandler serves the journal entry endpoints.
type EntryHandler struct {
	journal     journalService
	submissions submissionService
}

// NewEntryHandler creates an EntryHandler.
func NewEntryHandler(journal journalService, submissions submissionService) *EntryHandler {
	return &EntryHandler{journal: journal, submissions: submissions}
}

type entryRefResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Submitted bool   `json:"submitted"`
}

type entryDetailResponse struct {
	ID            int64     `json:"id"`
	ActivityID    int64     `json:"activity_id"`
	ActivityName  string    `json:"activity_name"`
	AttributeCode string    `json:"attribute_code"`
	Title         string    `json:"title"`
	Situation     string    `json:"situation"`
	Task          string    `json:"task"`
	Action        string    `json:"action"`
	Result        string    `json:"result"`
	Link          string    `json:"link"`
	Submitted     bool      `json:"submitted"`
	UpdateTime    time.Time `json:"update_time"`
}

type saveEntryRequest struct {
	ID            int64  `json:"id"`
	ActivityID    int64  `json:"activity_id"`
	AttributeCode string `json:"attribute_code"`
	Title         string `json:"title"`
	Situation     string `json:"situation"`
	Task          string `json:"task"`
	Action        string `json:"action"`
	Result        string `json:"result"`
	Link          string `json:"link"`
}

// List handles GET /entries?attribute_code=...
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	refs, err := h.journal.ListEntries(r.Context(), r.URL.Query().Get("attribute_code"))
	if err != nil {
		handleError(w, err)
		return
	}

	out := make([]entryRefResponse, 0, len(refs))
	for _, ref := range refs {
		out = append(out, entryRefResponse{ID: ref.ID, Title: ref.Title, Submitted: ref.Submitted})
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /entries/{id}.
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, err)
		return
	}

	detail, err := h.journal.GetEntry(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entryDetailResponse{
		ID:            detail.ID,
		ActivityID:    detail.ActivityID,
		ActivityName:  detail.ActivityName,
		AttributeCode: detail.AttributeCode,
		Title:         detail.Title,
		Situation:     detail.Situation,
		Task:          detail.Task,
		Action:        detail.Action,
		Result:        detail.Result,
		Link:          detail.Link,
		Submitted:     detail.Submitted,
		UpdateTime:    detail.UpdateTime,
	})
}

// Save handles POST /entries. A zero or absent id creates, a positive id
// amends.
func (h *EntryHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}

	id, err := h.journal.SaveEntry(r.Context(), journal.SaveEntryInput{
		ID:            req.ID,
		ActivityID:    req.ActivityID,
		AttributeCode: req.AttributeCode,
		Title:         req.Title,
		Situation:     req.Situation,
		Task:          req.Task,
		Action:        req.Action,
		Result:        req.Result,
		Link:          req.Link,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	status := http.StatusCreated
	if req.ID != 0 {
		status = http.StatusOK
	}
	writeJSON(w, status, map[string]int64{"id": id})
}

// Delete handles DELETE /entries/{id}.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.journal.DeleteEntry(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Submit handles POST /entries/{id}/submit and returns the feedback
// message, including the word-count shortfall message on a soft failure.
func (h *EntryHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, err)
		return
	}

	message, err := h.submissions.SubmitEntry(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}
