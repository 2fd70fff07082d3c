package attribute

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/edgeskills/edge-backend/internal/domain"
	"github.com/edgeskills/edge-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Test mocks (minimal, inline)
// ---------------------------------------------------------------------------

type mockCatalogRepo struct {
	attributeTagsFunc    func(ctx context.Context) ([]domain.Attribute, error)
	attributeByLabelFunc func(ctx context.Context, label string) (*domain.Attribute, error)
}

func (m *mockCatalogRepo) AttributeTags(ctx context.Context) ([]domain.Attribute, error) {
	if m.attributeTagsFunc != nil {
		return m.attributeTagsFunc(ctx)
	}
	return nil, nil
}

func (m *mockCatalogRepo) AttributeByLabel(ctx context.Context, label string) (*domain.Attribute, error) {
	if m.attributeByLabelFunc != nil {
		return m.attributeByLabelFunc(ctx, label)
	}
	return nil, domain.ErrNotFound
}

type mockEntryRepo struct {
	countByAttributeFunc func(ctx context.Context, authorID int64, attributeCode string, submitted bool) (int, error)
}

func (m *mockEntryRepo) CountByAttribute(ctx context.Context, authorID int64, attributeCode string, submitted bool) (int, error) {
	if m.countByAttributeFunc != nil {
		return m.countByAttributeFunc(ctx, authorID, attributeCode, submitted)
	}
	return 0, nil
}

type mockAuthzRepo struct {
	hasCapabilityFunc func(ctx context.Context, userID int64, capability string) (bool, error)
}

func (m *mockAuthzRepo) HasCapability(ctx context.Context, userID int64, capability string) (bool, error) {
	if m.hasCapabilityFunc != nil {
		return m.hasCapabilityFunc(ctx, userID, capability)
	}
	return true, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func withCaller(ctx context.Context, id int64) context.Context {
	return ctxutil.WithCaller(ctx, domain.Caller{ID: id, Username: "u1234567"})
}

// ---------------------------------------------------------------------------
// ListAttributes tests
// ---------------------------------------------------------------------------

func TestService_ListAttributes_NoCaller(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &mockCatalogRepo{}, &mockEntryRepo{}, &mockAuthzRepo{})

	_, err := svc.ListAttributes(context.Background())

	if err != domain.ErrUnauthorized {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestService_ListAttributes_NoCapability(t *testing.T) {
	t.Parallel()

	authz := &mockAuthzRepo{
		hasCapabilityFunc: func(ctx context.Context, userID int64, capability string) (bool, error) {
			return false, nil
		},
	}
	svc := NewService(testLogger(), &mockCatalogRepo{}, &mockEntryRepo{}, authz)

	_, err := svc.ListAttributes(withCaller(context.Background(), 7))

	if err != domain.ErrForbidden {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestService_ListAttributes_Counts(t *testing.T) {
	t.Parallel()

	catalog := &mockCatalogRepo{
		attributeTagsFunc: func(ctx context.Context) ([]domain.Attribute, error) {
			return []domain.Attribute{
				{Code: "COM", Name: "Communication"},
				{Code: "LEA", Name: "Leadership"},
			}, nil
		},
	}
	entries := &mockEntryRepo{
		countByAttributeFunc: func(ctx context.Context, authorID int64, attributeCode string, submitted bool) (int, error) {
			if !submitted {
				t.Errorf("expected submitted counts only")
			}
			if attributeCode == "COM" {
				return 3, nil
			}
			return 0, nil
		},
	}
	svc := NewService(testLogger(), catalog, entries, &mockAuthzRepo{})

	got, err := svc.ListAttributes(withCaller(context.Background(), 7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.AttributeSummary{
		{Code: "COM", Name: "Communication", EntriesSubmitted: 3},
		{Code: "LEA", Name: "Leadership", EntriesSubmitted: 0},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d summaries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("summary %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestService_ListAttributes_MissingGroupTag(t *testing.T) {
	t.Parallel()

	catalog := &mockCatalogRepo{
		attributeTagsFunc: func(ctx context.Context) ([]domain.Attribute, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc := NewService(testLogger(), catalog, &mockEntryRepo{}, &mockAuthzRepo{})

	_, err := svc.ListAttributes(withCaller(context.Background(), 7))

	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// GetAttribute tests
// ---------------------------------------------------------------------------

func TestService_GetAttribute_BlankInputFallsThroughToNotFound(t *testing.T) {
	t.Parallel()

	var gotLabel string
	catalog := &mockCatalogRepo{
		attributeByLabelFunc: func(ctx context.Context, label string) (*domain.Attribute, error) {
			gotLabel = label
			return nil, domain.ErrNotFound
		},
	}
	svc := NewService(testLogger(), catalog, &mockEntryRepo{}, &mockAuthzRepo{})

	_, err := svc.GetAttribute(withCaller(context.Background(), 7), GetAttributeInput{})

	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if gotLabel != " ()" {
		t.Errorf("expected lookup with label %q, got %q", " ()", gotLabel)
	}
}

func TestService_GetAttribute_ComposesLabel(t *testing.T) {
	t.Parallel()

	var gotLabel string
	catalog := &mockCatalogRepo{
		attributeByLabelFunc: func(ctx context.Context, label string) (*domain.Attribute, error) {
			gotLabel = label
			return &domain.Attribute{Code: "COM", Name: "Communication", Description: "desc"}, nil
		},
	}
	entries := &mockEntryRepo{
		countByAttributeFunc: func(ctx context.Context, authorID int64, attributeCode string, submitted bool) (int, error) {
			if submitted {
				return 2, nil
			}
			return 1, nil
		},
	}
	svc := NewService(testLogger(), catalog, entries, &mockAuthzRepo{})

	detail, err := svc.GetAttribute(withCaller(context.Background(), 7),
		GetAttributeInput{Name: "Communication", Code: "COM"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotLabel != "Communication (COM)" {
		t.Errorf("expected label %q, got %q", "Communication (COM)", gotLabel)
	}
	if detail.EntriesSubmitted != 2 || detail.EntriesNotSubmitted != 1 {
		t.Errorf("unexpected counts: %+v", detail)
	}
}

func TestService_GetAttribute_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &mockCatalogRepo{}, &mockEntryRepo{}, &mockAuthzRepo{})

	_, err := svc.GetAttribute(withCaller(context.Background(), 7),
		GetAttributeInput{Name: "Nope", Code: "NOP"})

	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
