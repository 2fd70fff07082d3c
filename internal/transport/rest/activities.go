package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/edgeskills/edge-backend/internal/domain"
	"github.com/edgeskills/edge-backend/internal/service/activity"
)

type activityService interface {
	ListAllActivities(ctx context.Context) ([]domain.Activity, error)
	ListActivities(ctx context.Context, input activity.ListActivitiesInput) ([]domain.ActivityRef, error)
	GetActivity(ctx context.Context, activityID int64) (*domain.Activity, error)
	GetActivityAttributes(ctx context.Context, activityID int64) ([]string, error)
	JoinActivity(ctx context.Context, activityID int64) error
	LeaveActivity(ctx context.Context, activityID int64) error
}

// ActivityHandler serves the activity catalogue and membership endpoints.
type ActivityHandler struct {
	svc activityService
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(svc activityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

type activityFullResponse struct {
	ActivityID          int64    `json:"activity_id"`
	ActivityName        string   `json:"activity_name"`
	ActivityShortname   string   `json:"activity_shortname"`
	ActivityFaculty     string   `json:"activity_faculty"`
	ActivityMnemonic    string   `json:"activity_mnemonic"`
	ActivityAttributes  []string `json:"activity_attributes"`
	ActivityDescription string   `json:"activity_description"`
}

type activityRefResponse struct {
	ActivityID     int64  `json:"activity_id"`
	ActivityName   string `json:"activity_name"`
	ActivityJoined bool   `json:"activity_joined"`
}

type activityDetailResponse struct {
	ActivityName        string `json:"activity_name"`
	ActivityDescription string `json:"activity_description"`
	ActivityJoined      bool   `json:"activity_joined"`
}

// ListAll handles GET /activities/all.
func (h *ActivityHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	activities, err := h.svc.ListAllActivities(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	out := make([]activityFullResponse, 0, len(activities))
	for _, a := range activities {
		attrs := a.AttributeCodes
		if attrs == nil {
			attrs = []string{}
		}
		out = append(out, activityFullResponse{
			ActivityID:          a.ID,
			ActivityName:        a.Name,
			ActivityShortname:   a.ShortName,
			ActivityFaculty:     a.Faculty,
			ActivityMnemonic:    a.Mnemonic,
			ActivityAttributes:  attrs,
			ActivityDescription: a.Description,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// List handles GET /activities?attribute_code=...
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	input := activity.ListActivitiesInput{
		AttributeCode: r.URL.Query().Get("attribute_code"),
	}

	refs, err := h.svc.ListActivities(r.Context(), input)
	if err != nil {
		handleError(w, err)
		return
	}

	out := make([]activityRefResponse, 0, len(refs))
	for _, ref := range refs {
		out = append(out, activityRefResponse{
			ActivityID:     ref.ID,
			ActivityName:   ref.Name,
			ActivityJoined: ref.Joined,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /activities/{id}.
func (h *ActivityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, err)
		return
	}

	act, err := h.svc.GetActivity(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, activityDetailResponse{
		ActivityName:        act.ShortName,
		ActivityDescription: act.Description,
		ActivityJoined:      act.Joined,
	})
}

// Attributes handles GET /activities/{id}/attributes.
func (h *ActivityHandler) Attributes(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, err)
		return
	}

	codes, err := h.svc.GetActivityAttributes(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	type attributeCodeResponse struct {
		AttributeCode string `json:"attribute_code"`
	}
	out := make([]attributeCodeResponse, 0, len(codes))
	for _, code := range codes {
		out = append(out, attributeCodeResponse{AttributeCode: code})
	}
	writeJSON(w, http.StatusOK, out)
}

// Join handles POST /activities/{id}/join.
func (h *ActivityHandler) Join(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.svc.JoinActivity(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Leave handles POST /activities/{id}/leave.
func (h *ActivityHandler) Leave(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.svc.LeaveActivity(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// pathID parses an integer id path parameter.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return id, nil
}
