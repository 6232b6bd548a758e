package queries

import (
	"context"

	"workshop-admin-api/internal/infra"
	"workshop-admin-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type ConsentReadStore interface {
	ListTemplates(ctx context.Context) ([]*ConsentTemplateView, error)
	FindTemplateByID(ctx context.Context, id uuid.UUID) (*ConsentTemplateView, error)
	ListGrantsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*ConsentGrantView, error)
}

type ConsentQueries interface {
	ListTemplates(ctx context.Context) ([]*ConsentTemplateView, error)
	GetTemplate(ctx context.Context, id uuid.UUID) (*ConsentTemplateView, error)
	ListCustomerGrants(ctx context.Context, customerID uuid.UUID) ([]*ConsentGrantView, error)
}

type consentQueriesImpl struct {
	store ConsentReadStore
}

func NewConsentQueries(store ConsentReadStore) ConsentQueries {
	return &consentQueriesImpl{store: store}
}

func (q *consentQueriesImpl) ListTemplates(ctx context.Context) ([]*ConsentTemplateView, error) {
	views, err := q.store.ListTemplates(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *consentQueriesImpl) GetTemplate(ctx context.Context, id uuid.UUID) (*ConsentTemplateView, error) {
	view, err := q.store.FindTemplateByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrConsentTemplateNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *consentQueriesImpl) ListCustomerGrants(ctx context.Context, customerID uuid.UUID) ([]*ConsentGrantView, error) {
	views, err := q.store.ListGrantsByCustomer(ctx, customerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
