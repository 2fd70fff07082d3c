package attribute

import (
	"context"
	"log/slog"

	"github.com/edgeskills/edge-backend/internal/domain"
	"github.com/edgeskills/edge-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type catalogRepo interface {
	AttributeTags(ctx context.Context) ([]domain.Attribute, error)
	AttributeByLabel(ctx context.Context, label string) (*domain.Attribute, error)
}

type entryRepo interface {
	CountByAttribute(ctx context.Context, authorID int64, attributeCode string, submitted bool) (int, error)
}

type authzRepo interface {
	HasCapability(ctx context.Context, userID int64, capability string) (bool, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the attribute catalogue business logic.
type Service struct {
	log     *slog.Logger
	catalog catalogRepo
	entries entryRepo
	authz   authzRepo
}

// NewService creates a new Attribute service.
func NewService(logger *slog.Logger, catalog catalogRepo, entries entryRepo, authz authzRepo) *Service {
	return &Service{
		log:     logger.With("service", "attribute"),
		catalog: catalog,
		entries: entries,
		authz:   authz,
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
