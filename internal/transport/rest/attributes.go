package rest

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/edgeskills/edge-backend/internal/domain"
	"github.com/edgeskills/edge-backend/internal/service/attribute"
)

type attributeService interface {
	ListAttributes(ctx context.Context) ([]domain.AttributeSummary, error)
	GetAttribute(ctx context.Context, input attribute.GetAttributeInput) (*domain.AttributeDetail, error)
}

// AttributeHandler serves the attribute catalogue endpoints.
type AttributeHandler struct {
	svc attributeService
}

// NewAttributeHandler creates an AttributeHandler.
func NewAttributeHandler(svc attributeService) *AttributeHandler {
	return &AttributeHandler{svc: svc}
}

type attributeSummaryResponse struct {
	AttributeCode             string `json:"attribute_code"`
	AttributeName             string `json:"attribute_name"`
	AttributeEntriesSubmitted int    `json:"attribute_entries_submitted"`
}

type attributeDetailResponse struct {
	AttributeName                string `json:"attribute_name"`
	AttributeDescription         string `json:"attribute_description"`
	AttributeEntriesSubmitted    int    `json:"attribute_entries_submitted"`
	AttributeEntriesNotSubmitted int    `json:"attribute_entries_not_submitted"`
}

// List handles GET /attributes.
func (h *AttributeHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.svc.ListAttributes(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	out := make([]attributeSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, attributeSummaryResponse{
			AttributeCode:             s.Code,
			AttributeName:             s.Name,
			AttributeEntriesSubmitted: s.EntriesSubmitted,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /attributes/{code}?name=...
func (h *AttributeHandler) Get(w http.ResponseWriter, r *http.Request) {
	input := attribute.GetAttributeInput{
		Code: chi.URLParam(r, "code"),
		Name: r.URL.Query().Get("name"),
	}

	detail, err := h.svc.GetAttribute(r.Context(), input)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, attributeDetailResponse{
		AttributeName:                detail.Name,
		AttributeDescription:         detail.Description,
		AttributeEntriesSubmitted:    detail.EntriesSubmitted,
		AttributeEntriesNotSubmitted: detail.EntriesNotSubmitted,
	})
}
