package readstore

import (
	"context"
	"errors"

	"workshop-admin-api/internal/infra"
	"workshop-admin-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ConsentReadStore struct {
	pool *pgxpool.Pool
}

func NewConsentReadStore(pool *pgxpool.Pool) *ConsentReadStore {
	return &ConsentReadStore{pool: pool}
}

var _ queries.ConsentReadStore = (*ConsentReadStore)(nil)

func (s *ConsentReadStore) ListTemplates(ctx context.Context) ([]*queries.ConsentTemplateView, error) {
	const query = `
		SELECT id, title, content, version, required, created_at
		FROM consent_templates
		ORDER BY created_at DESC`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list consent templates", err)
	}
	defer rows.Close()

	var views []*queries.ConsentTemplateView
	for rows.Next() {
		var v queries.ConsentTemplateView
		if err := rows.Scan(&v.ID, &v.Title, &v.Content, &v.Version, &v.Required, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan consent template row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate consent template rows", err)
	}
	return views, nil
}

func (s *ConsentReadStore) FindTemplateByID(ctx context.Context, id uuid.UUID) (*queries.ConsentTemplateView, error) {
	const query = `
		SELECT id, title, content, version, required, created_at
		FROM consent_templates
		WHERE id = $1`

	var v queries.ConsentTemplateView
	err := s.pool.QueryRow(ctx, query, id).Scan(&v.ID, &v.Title, &v.Content, &v.Version, &v.Required, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("consent template not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find consent template by ID", err)
	}
	return &v, nil
}

func (s *ConsentReadStore) ListGrantsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*queries.ConsentGrantView, error) {
	const query = `
		SELECT g.id, g.template_id, t.title, g.customer_id, g.status, g.granted_at, g.withdrawn_at
		FROM consent_grants g
		JOIN consent_templates t ON t.id = g.template_id
		WHERE g.customer_id = $1
		ORDER BY g.granted_at DESC`

	rows, err := s.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list consent grants", err)
	}
	defer rows.Close()

	var views []*queries.ConsentGrantView
	for rows.Next() {
		var v queries.ConsentGrantView
		if err := rows.Scan(&v.ID, &v.TemplateID, &v.TemplateTitle, &v.CustomerID, &v.Status, &v.GrantedAt, &v.WithdrawnAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan consent grant row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate consent grant rows", err)
	}
	return views, nil
}
