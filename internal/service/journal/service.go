package journal

import (
	"context"
	"log/slog"
	"time"

	"github.com/edgeskills/edge-backend/internal/domain"
	"github.com/edgeskills/edge-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type entryRepo interface {
	GetByID(ctx context.Context, authorID, entryID int64) (*domain.Entry, error)
	List(ctx context.Context, authorID int64, attributeCode string) ([]domain.EntryRef, error)
	Create(ctx context.Context, e *domain.Entry) (int64, error)
	Update(ctx context.Context, e *domain.Entry) error
	Delete(ctx context.Context, authorID, entryID int64) error
}

type catalogRepo interface {
	GetActivity(ctx context.Context, id int64) (*domain.Activity, error)
}

type authzRepo interface {
	HasCapability(ctx context.Context, userID int64, capability string) (bool, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the journal entry business logic.
type Service struct {
	log     *slog.Logger
	entries entryRepo
	catalog catalogRepo
	authz   authzRepo
	now     func() time.Time
}

// NewService creates a new Journal service.
func NewService(logger *slog.Logger, entries entryRepo, catalog catalogRepo, authz authzRepo) *Service {
	return &Service{
		log:     logger.With("service", "journal"),
		entries: entries,
		catalog: catalog,
		authz:   authz,
		now:     time.Now,
	}
}

// authorize resolves the caller and checks the portfolio capability.
func (s *Service) authorize(ctx context.Context) (domain.Caller, error) {
	caller, ok := ctxutil.CallerFromCtx(ctx)
	if !ok {
		return domain.Caller{}, domain.ErrUnauthorized
	}

	granted, err := s.authz.HasCapability(ctx, caller.ID, domain.CapabilityUseEdge)
	if err != nil {
		return domain.Caller{}, err
	}
	if !granted {
		return domain.Caller{}, domain.ErrForbidden
	}

	return caller, nil
}
