package repository

import (
	"context"
	"time"

	"workshop-admin-api/internal/domain/consent"
	"workshop-admin-api/internal/infra"
	"workshop-admin-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ConsentRepository struct {
	pool *pgxpool.Pool
}

func NewConsentRepository(pool *pgxpool.Pool) *ConsentRepository {
	return &ConsentRepository{pool: pool}
}

var _ commands.ConsentRepository = (*ConsentRepository)(nil)

func (r *ConsentRepository) CreateTemplate(ctx context.Context, t *consent.Template) error {
	const query = `
		INSERT INTO consent_templates (id, title, content, version, required, created_at)
		VALUES ($1, $2, $3, $4, $5, now())`

	_, err := r.pool.Exec(ctx, query, t.ID(), t.Title(), t.Content(), t.Version(), t.Required())
	if err != nil {
		return infra.WrapRepoErr("failed to insert consent template", err, repoErrKind(err))
	}
	return nil
}

func (r *ConsentRepository) CreateGrant(ctx context.Context, g *consent.Grant) error {
	const query = `
		INSERT INTO consent_grants (id, template_id, customer_id, status, granted_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query, g.ID(), g.TemplateID(), g.CustomerID(), g.Status().String(), g.GrantedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to insert consent grant", err, repoErrKind(err))
	}
	return nil
}

func (r *ConsentRepository) WithdrawGrant(ctx context.Context, grantID uuid.UUID, at time.Time) error {
	const query = `
		UPDATE consent_grants
		SET status = $2, withdrawn_at = $3
		WHERE id = $1 AND status = $4`

	tag, err := r.pool.Exec(ctx, query, grantID,
		consent.GrantStatusWithdrawn.String(), at, consent.GrantStatusGranted.String())
	if err != nil {
		return infra.WrapRepoErr("failed to withdraw consent grant", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("active consent grant not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ConsentRepository) HasActiveGrant(ctx context.Context, templateID, customerID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM consent_grants
			WHERE template_id = $1 AND customer_id = $2 AND status = $3
		)`

	var active bool
	err := r.pool.QueryRow(ctx, query, templateID, customerID, consent.GrantStatusGranted.String()).Scan(&active)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check active consent grant", err)
	}
	return active, nil
}
