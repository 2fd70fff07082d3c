package activity

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
	ListEdgeActivities(ctx context.Context) ([]domain.Activity, error)
	GetActivity(ctx context.Context, id int64) (*domain.Activity, error)
}

type enrolmentRepo interface {
	IsEnrolled(ctx context.Context, userID, courseID int64) (bool, error)
	SelfChannel(ctx context.Context, courseID int64) (*domain.EnrolmentChannel, error)
	Enrol(ctx context.Context, userID, channelID int64) error
	Unenrol(ctx context.Context, userID, channelID int64) error
	StudentCategories(ctx context.Context, userID int64) ([]string, error)
}

type authzRepo interface {
	HasCapability(ctx context.Context, userID int64, capability string) (bool, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the activity catalogue and membership business logic.
type Service struct {
	log        *slog.Logger
	catalog    catalogRepo
	enrolments enrolmentRepo
	authz      authzRepo
}

// NewService creates a new Activity service.
func NewService(logger *slog.Logger, catalog catalogRepo, enrolments enrolmentRepo, authz authzRepo) *Service {
	return &Service{
		log:        logger.With("service", "activity"),
		catalog:    catalog,
		enrolments: enrolments,
		authz:      authz,
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

func validateActivityID(id int64) error {
	if id < 1 {
		return domain.NewValidationError("activity_id", "must be a positive integer")
	}
	return nil
}
