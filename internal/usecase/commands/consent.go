package commands

import (
	"context"
	"time"

	"workshop-admin-api/internal/domain/consent"
	"workshop-admin-api/internal/infra"
	"workshop-admin-api/internal/pkg/clock"
	"workshop-admin-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type CreateConsentTemplateParams struct {
	Title    string
	Content  string
	Version  int
	Required bool
}

type ConsentRepository interface {
	CreateTemplate(ctx context.Context, t *consent.Template) error
	CreateGrant(ctx context.Context, g *consent.Grant) error
	WithdrawGrant(ctx context.Context, grantID uuid.UUID, at time.Time) error
	HasActiveGrant(ctx context.Context, templateID, customerID uuid.UUID) (bool, error)
}

type ConsentCommands interface {
	CreateTemplate(ctx context.Context, params CreateConsentTemplateParams) (uuid.UUID, error)
	Grant(ctx context.Context, templateID, customerID uuid.UUID) (uuid.UUID, error)
	Withdraw(ctx context.Context, grantID uuid.UUID) error
}

type consentCommandsImpl struct {
	repo  ConsentRepository
	clock clock.Clock
}

func NewConsentCommands(repo ConsentRepository, clock clock.Clock) ConsentCommands {
	return &consentCommandsImpl{repo: repo, clock: clock}
}

func (c *consentCommandsImpl) CreateTemplate(ctx context.Context, params CreateConsentTemplateParams) (uuid.UUID, error) {
	entity, err := consent.NewTemplate(params.Title, params.Content, params.Version, params.Required)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.repo.CreateTemplate(ctx, entity); err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return entity.ID(), nil
}

func (c *consentCommandsImpl) Grant(ctx context.Context, templateID, customerID uuid.UUID) (uuid.UUID, error) {
	active, err := c.repo.HasActiveGrant(ctx, templateID, customerID)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if active {
		return uuid.Nil, errs.Mark(consent.ErrAlreadyGranted, errs.ErrConsentAlreadyGranted)
	}

	grant := consent.NewGrant(templateID, customerID, c.clock.Now())
	if err := c.repo.CreateGrant(ctx, grant); err != nil {
		switch {
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return uuid.Nil, errs.Mark(err, errs.ErrConsentTemplateNotFound)
		case infra.IsKind(err, infra.KindDuplicateKey):
			return uuid.Nil, errs.Mark(err, errs.ErrConsentAlreadyGranted)
		default:
			return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	return grant.ID(), nil
}

func (c *consentCommandsImpl) Withdraw(ctx context.Context, grantID uuid.UUID) error {
	if err := c.repo.WithdrawGrant(ctx, grantID, c.clock.Now()); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrConsentGrantNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
