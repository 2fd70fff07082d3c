package submission

import (
	"context"
	"log/slog"
	"time"

	"github.com/edgeskills/edge-backend/internal/config"
	"github.com/edgeskills/edge-backend/internal/domain"
	"github.com/edgeskills/edge-backend/internal/i18n"
	"github.com/edgeskills/edge-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type entryRepo interface {
	GetByID(ctx context.Context, authorID, entryID int64) (*domain.Entry, error)
	SetSubmitted(ctx context.Context, authorID, entryID int64, at time.Time) error
	SubmissionTotals(ctx context.Context, authorID int64) (domain.SubmissionTotals, error)
}

type awardRepo interface {
	Exists(ctx context.Context, recipientID int64) (bool, error)
	Create(ctx context.Context, a domain.Award) error
}

type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type authzRepo interface {
	HasCapability(ctx context.Context, userID int64, capability string) (bool, error)
}

type mailer interface {
	Send(ctx context.Context, mail domain.Mail) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the submission and award business logic.
type Service struct {
	log        *slog.Logger
	entries    entryRepo
	awards     awardRepo
	users      userRepo
	authz      authzRepo
	mail       mailer
	tx         txManager
	messages   *i18n.Catalog
	thresholds config.AwardConfig
	now        func() time.Time
}

// NewService creates a new Submission service.
func NewService(
	logger *slog.Logger,
	entries entryRepo,
	awards awardRepo,
	users userRepo,
	authz authzRepo,
	mail mailer,
	tx txManager,
	messages *i18n.Catalog,
	thresholds config.AwardConfig,
) *Service {
	return &Service{
		log:        logger.With("service", "submission"),
		entries:    entries,
		awards:     awards,
		users:      users,
		authz:      authz,
		mail:       mail,
		tx:         tx,
		messages:   messages,
		thresholds: thresholds,
		now:        time.Now,
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
