package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/edgeskills/edge-backend/internal/domain"
	"github.com/edgeskills/edge-backend/internal/service/activity"
	"github.com/edgeskills/edge-backend/internal/service/attribute"
	"github.com/edgeskills/edge-backend/internal/service/journal"
	"github.com/edgeskills/edge-backend/internal/transport/middleware"
)

// ---------------------------------------------------------------------------
// Test mocks (minimal, inline)
// ---------------------------------------------------------------------------

type mockAttributeService struct {
	listFunc func(ctx context.Context) ([]domain.AttributeSummary, error)
	getFunc  func(ctx context.Context, input attribute.GetAttributeInput) (*domain.AttributeDetail, error)
}

func (m *mockAttributeService) ListAttributes(ctx context.Context) ([]domain.AttributeSummary, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockAttributeService) GetAttribute(ctx context.Context, input attribute.GetAttributeInput) (*domain.AttributeDetail, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, input)
	}
	return nil, domain.ErrNotFound
}

type mockActivityService struct {
	listAllFunc func(ctx context.Context) ([]domain.Activity, error)
	listFunc    func(ctx context.Context, input activity.ListActivitiesInput) ([]domain.ActivityRef, error)
	getFunc     func(ctx context.Context, activityID int64) (*domain.Activity, error)
	attrsFunc   func(ctx context.Context, activityID int64) ([]string, error)
	joinFunc    func(ctx context.Context, activityID int64) error
	leaveFunc   func(ctx context.Context, activityID int64) error
}

func (m *mockActivityService) ListAllActivities(ctx context.Context) ([]domain.Activity, error) {
	if m.listAllFunc != nil {
		return m.listAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockActivityService) ListActivities(ctx context.Context, input activity.ListActivitiesInput) ([]domain.ActivityRef, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, input)
	}
	return nil, nil
}

func (m *mockActivityService) GetActivity(ctx context.Context, activityID int64) (*domain.Activity, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, activityID)
	}
	return nil, domain.ErrNotFound
}

func (m *mockActivityService) GetActivityAttributes(ctx context.Context, activityID int64) ([]string, error) {
	if m.attrsFunc != nil {
		return m.attrsFunc(ctx, activityID)
	}
	return nil, nil
}

func (m *mockActivityService) JoinActivity(ctx context.Context, activityID int64) error {
	if m.joinFunc != nil {
		return m.joinFunc(ctx, activityID)
	}
	return nil
}

func (m *mockActivityService) LeaveActivity(ctx context.Context, activityID int64) error {
	if m.leaveFunc != nil {
		return m.leaveFunc(ctx, activityID)
	}
	return nil
}

type mockJournalService struct {
	listFunc   func(ctx context.Context, attributeCode string) ([]domain.EntryRef, error)
	getFunc    func(ctx context.Context, entryID int64) (*domain.EntryDetail, error)
	saveFunc   func(ctx context.Context, input journal.SaveEntryInput) (int64, error)
	deleteFunc func(ctx context.Context, entryID int64) error
}

func (m *mockJournalService) ListEntries(ctx context.Context, attributeCode string) ([]domain.EntryRef, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, attributeCode)
	}
	return nil, nil
}

func (m *mockJournalService) GetEntry(ctx context.Context, entryID int64) (*domain.EntryDetail, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, entryID)
	}
	return nil, domain.ErrNotFound
}

func (m *mockJournalService) SaveEntry(ctx context.Context, input journal.SaveEntryInput) (int64, error) {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, input)
	}
	return 1, nil
}

func (m *mockJournalService) DeleteEntry(ctx context.Context, entryID int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, entryID)
	}
	return nil
}

type mockSubmissionService struct {
	submitFunc func(ctx context.Context, entryID int64) (string, error)
}

func (m *mockSubmissionService) SubmitEntry(ctx context.Context, entryID int64) (string, error) {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, entryID)
	}
	return "", domain.ErrNotFound
}

type mockPinger struct{}

func (mockPinger) Ping(ctx context.Context) error { return nil }

func testRouter(attrs *mockAttributeService, acts *mockActivityService, entries *mockJournalService, subs *mockSubmissionService) http.Handler {
	if attrs == nil {
		attrs = &mockAttributeService{}
	}
	if acts == nil {
		acts = &mockActivityService{}
	}
	if entries == nil {
		entries = &mockJournalService{}
	}
	if subs == nil {
		subs = &mockSubmissionService{}
	}
	return NewRouter(RouterDeps{
		Attributes: NewAttributeHandler(attrs),
		Activities: NewActivityHandler(acts),
		Entries:    NewEntryHandler(entries, subs),
		Health:     NewHealthHandler(mockPinger{}, "test"),
		Global:     middleware.Chain(middleware.RequestID),
	})
}

// ---------------------------------------------------------------------------
// Routing and payload tests
// ---------------------------------------------------------------------------

func TestAttributes_List(t *testing.T) {
	t.Parallel()

	attrs := &mockAttributeService{
		listFunc: func(ctx context.Context) ([]domain.AttributeSummary, error) {
			return []domain.AttributeSummary{{Code: "COM", Name: "Communication", EntriesSubmitted: 2}}, nil
		},
	}
	router := testRouter(attrs, nil, nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/attributes", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got []map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0]["attribute_code"] != "COM" || got[0]["attribute_entries_submitted"] != float64(2) {
		t.Errorf("unexpected body: %+v", got)
	}
}

func TestAttributes_Get_PassesNameAndCode(t *testing.T) {
	t.Parallel()

	attrs := &mockAttributeService{
		getFunc: func(ctx context.Context, input attribute.GetAttributeInput) (*domain.AttributeDetail, error) {
			if input.Code != "COM" || input.Name != "Communication" {
				t.Errorf("unexpected input: %+v", input)
			}
			return &domain.AttributeDetail{Name: input.Name, EntriesSubmitted: 1, EntriesNotSubmitted: 2}, nil
		},
	}
	router := testRouter(attrs, nil, nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/attributes/COM?name=Communication", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestActivities_List_AttributeFilterQuery(t *testing.T) {
	t.Parallel()

	acts := &mockActivityService{
		listFunc: func(ctx context.Context, input activity.ListActivitiesInput) ([]domain.ActivityRef, error) {
			if input.AttributeCode != "COM" {
				t.Errorf("expected attribute filter COM, got %q", input.AttributeCode)
			}
			return []domain.ActivityRef{{ID: 5, Name: "Business Game", Joined: true}}, nil
		},
	}
	router := testRouter(nil, acts, nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/activities?attribute_code=COM", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"activity_joined":true`) {
		t.Errorf("joined flag missing: %s", rec.Body.String())
	}
}

func TestActivities_Join_EnrolmentUnavailable(t *testing.T) {
	t.Parallel()

	acts := &mockActivityService{
		joinFunc: func(ctx context.Context, activityID int64) error {
			return domain.ErrEnrolmentUnavailable
		},
	}
	router := testRouter(nil, acts, nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/activities/5/join", nil))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rec.Code)
	}
}

func TestActivities_Get_BadID(t *testing.T) {
	t.Parallel()

	router := testRouter(nil, nil, nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/activities/abc", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestEntries_Save_Created(t *testing.T) {
	t.Parallel()

	entries := &mockJournalService{
		saveFunc: func(ctx context.Context, input journal.SaveEntryInput) (int64, error) {
			if input.Title != "Debate night" {
				t.Errorf("unexpected input: %+v", input)
			}
			return 42, nil
		},
	}
	router := testRouter(nil, nil, entries, nil)

	body := strings.NewReader(`{"activity_id":5,"attribute_code":"COM","title":"Debate night","situation":"s","task":"t","action":"a","result":"r"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/entries", body))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"id":42`) {
		t.Errorf("id missing from body: %s", rec.Body.String())
	}
}

func TestEntries_Save_ValidationFields(t *testing.T) {
	t.Parallel()

	entries := &mockJournalService{
		saveFunc: func(ctx context.Context, input journal.SaveEntryInput) (int64, error) {
			return 0, domain.NewValidationError("situation", "required")
		},
	}
	router := testRouter(nil, nil, entries, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/entries", strings.NewReader(`{}`)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"field":"situation"`) {
		t.Errorf("field detail missing: %s", rec.Body.String())
	}
}

func TestEntries_Save_MalformedBody(t *testing.T) {
	t.Parallel()

	router := testRouter(nil, nil, nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/entries", strings.NewReader("{not json")))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestEntries_Submit_ReturnsMessage(t *testing.T) {
	t.Parallel()

	subs := &mockSubmissionService{
		submitFunc: func(ctx context.Context, entryID int64) (string, error) {
			return "Congratulations! You're on your way to getting the EDGE!", nil
		},
	}
	router := testRouter(nil, nil, nil, subs)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/entries/42/submit", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.HasPrefix(got["message"], "Congratulations!") {
		t.Errorf("unexpected message: %q", got["message"])
	}
}

func TestEntries_Delete_NotFound(t *testing.T) {
	t.Parallel()

	entries := &mockJournalService{
		deleteFunc: func(ctx context.Context, entryID int64) error {
			return domain.ErrNotFound
		},
	}
	router := testRouter(nil, nil, entries, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/entries/42", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// Error mapping table
// ---------------------------------------------------------------------------

func TestHandleError_StatusMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err    error
		status int
	}{
		{domain.ErrValidation, http.StatusBadRequest},
		{domain.ErrUnauthorized, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrAlreadyExists, http.StatusConflict},
		{domain.ErrEnrolmentUnavailable, http.StatusUnprocessableEntity},
		{context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		handleError(rec, tc.err)
		if rec.Code != tc.status {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.status, rec.Code)
		}
	}
}
