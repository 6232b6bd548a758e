package commands

import (
	"context"

	"workshop-admin-api/internal/domain/customer"
	"workshop-admin-api/internal/domain/phone"
	"workshop-admin-api/internal/infra"
	"workshop-admin-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type CreateCustomerParams struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	PhoneCountry string
	CompanyName  string
	Address      string
}

// CustomerPatch carries partial updates; nil fields are left unchanged.
type CustomerPatch struct {
	FirstName    *string
	LastName     *string
	Email        *string
	Phone        *string
	PhoneCountry *string
	CompanyName  *string
	Address      *string
}

type CustomerRepository interface {
	Create(ctx context.Context, c *customer.Customer) error
	Update(ctx context.Context, id uuid.UUID, patch CustomerPatch) error
	Archive(ctx context.Context, id uuid.UUID) error
	GetPhone(ctx context.Context, id uuid.UUID) (phone string, country string, err error)
}

type CustomerCommands interface {
	Create(ctx context.Context, params CreateCustomerParams) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, patch CustomerPatch) error
	Archive(ctx context.Context, id uuid.UUID) error
}

type customerCommandsImpl struct {
	repo CustomerRepository
}

func NewCustomerCommands(repo CustomerRepository) CustomerCommands {
	return &customerCommandsImpl{repo: repo}
}

func (c *customerCommandsImpl) Create(ctx context.Context, params CreateCustomerParams) (uuid.UUID, error) {
	entity, err := customer.NewCustomer(
		params.FirstName,
		params.LastName,
		params.Email,
		params.Phone,
		params.PhoneCountry,
		params.CompanyName,
		params.Address,
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.repo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, errs.ErrDuplicateCustomer)
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return entity.ID(), nil
}

func (c *customerCommandsImpl) Update(ctx context.Context, id uuid.UUID, patch CustomerPatch) error {
	if patch.Phone != nil || patch.PhoneCountry != nil {
		if err := c.normalizePhonePatch(ctx, id, &patch); err != nil {
			return err
		}
	}

	if err := c.repo.Update(ctx, id, patch); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrCustomerNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

// Stored phones are always kept in formatted form. A partial update runs the
// same normalization as Create; when only the country changes, the stored
// digit buffer is regrouped under the new country's rules.
func (c *customerCommandsImpl) normalizePhonePatch(ctx context.Context, id uuid.UUID, patch *CustomerPatch) error {
	storedPhone, storedCountry, err := c.repo.GetPhone(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrCustomerNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	code := storedCountry
	if patch.PhoneCountry != nil {
		code = *patch.PhoneCountry
	}
	country, err := phone.CountryByCode(code)
	if err != nil {
		return errs.Mark(customer.ErrUnknownRegion, errs.ErrDomainValidation)
	}

	var formatted string
	if patch.Phone != nil {
		formatted = phone.Format(*patch.Phone, country)
		if phone.Digits(*patch.Phone) != "" && formatted == "" {
			return errs.Mark(customer.ErrInvalidPhone, errs.ErrDomainValidation)
		}
	} else {
		formatted = phone.Reformat(storedPhone, country)
	}

	patch.Phone = &formatted
	patch.PhoneCountry = &country.Code
	return nil
}

func (c *customerCommandsImpl) Archive(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Archive(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrCustomerNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
