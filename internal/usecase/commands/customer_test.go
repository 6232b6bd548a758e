//go:build unit

package commands_test

import (
	"context"
	"testing"

	"workshop-admin-api/internal/domain/customer"
	"workshop-admin-api/internal/infra"
	"workshop-admin-api/internal/pkg/errs"
	"workshop-admin-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type stubCustomerRepo struct {
	storedPhone   string
	storedCountry string
	getPhoneErr   error
	updateErr     error

	created      *customer.Customer
	updatedID    uuid.UUID
	updatedPatch commands.CustomerPatch
}

func (s *stubCustomerRepo) Create(_ context.Context, c *customer.Customer) error {
	s.created = c
	return nil
}

func (s *stubCustomerRepo) Update(_ context.Context, id uuid.UUID, patch commands.CustomerPatch) error {
	s.updatedID = id
	s.updatedPatch = patch
	return s.updateErr
}

func (s *stubCustomerRepo) Archive(_ context.Context, _ uuid.UUID) error {
	return nil
}

func (s *stubCustomerRepo) GetPhone(_ context.Context, _ uuid.UUID) (string, string, error) {
	if s.getPhoneErr != nil {
		return "", "", s.getPhoneErr
	}
	return s.storedPhone, s.storedCountry, nil
}

type CustomerCommandsTestSuite struct {
	suite.Suite
	repo *stubCustomerRepo
	cmds commands.CustomerCommands
}

func (s *CustomerCommandsTestSuite) SetupTest() {
	s.repo = &stubCustomerRepo{storedPhone: "600 123 456", storedCountry: "PL"}
	s.cmds = commands.NewCustomerCommands(s.repo)
}

func TestCustomerCommandsSuite(t *testing.T) {
	suite.Run(t, new(CustomerCommandsTestSuite))
}

func (s *CustomerCommandsTestSuite) TestUpdateFormatsPatchedPhone() {
	raw := "601-234-567"

	err := s.cmds.Update(context.Background(), uuid.New(), commands.CustomerPatch{Phone: &raw})

	s.Require().NoError(err)
	s.Require().NotNil(s.repo.updatedPatch.Phone)
	s.Equal("601 234 567", *s.repo.updatedPatch.Phone)
	s.Require().NotNil(s.repo.updatedPatch.PhoneCountry)
	s.Equal("PL", *s.repo.updatedPatch.PhoneCountry)
}

func (s *CustomerCommandsTestSuite) TestUpdateRegroupsPhoneOnCountrySwitch() {
	s.repo.storedPhone = "201 555 0123"
	s.repo.storedCountry = "US"
	newCountry := "PL"

	err := s.cmds.Update(context.Background(), uuid.New(), commands.CustomerPatch{PhoneCountry: &newCountry})

	s.Require().NoError(err)
	s.Require().NotNil(s.repo.updatedPatch.Phone)
	s.Equal("201 555 012", *s.repo.updatedPatch.Phone)
	s.Equal("PL", *s.repo.updatedPatch.PhoneCountry)
}

func (s *CustomerCommandsTestSuite) TestUpdateRejectsUnknownCountry() {
	bad := "XX"

	err := s.cmds.Update(context.Background(), uuid.New(), commands.CustomerPatch{PhoneCountry: &bad})

	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrDomainValidation))
	s.Empty(s.repo.updatedID)
}

func (s *CustomerCommandsTestSuite) TestUpdatePhoneForMissingCustomer() {
	s.repo.getPhoneErr = infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	raw := "600123456"

	err := s.cmds.Update(context.Background(), uuid.New(), commands.CustomerPatch{Phone: &raw})

	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrCustomerNotFound))
}

func (s *CustomerCommandsTestSuite) TestUpdateWithoutPhoneSkipsLookup() {
	s.repo.getPhoneErr = infra.WrapRepoErr("must not be called", nil, infra.KindDBFailure)
	name := "Kowalska"

	err := s.cmds.Update(context.Background(), uuid.New(), commands.CustomerPatch{LastName: &name})

	s.Require().NoError(err)
	s.Nil(s.repo.updatedPatch.Phone)
}

func (s *CustomerCommandsTestSuite) TestCreateMapsDuplicate() {
	dup := commands.NewCustomerCommands(&duplicateCustomerRepo{})

	_, err := dup.Create(context.Background(), commands.CreateCustomerParams{
		FirstName: "Anna",
		LastName:  "Nowak",
		Phone:     "600123456",
	})

	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrDuplicateCustomer))
}

type duplicateCustomerRepo struct {
	stubCustomerRepo
}

func (r *duplicateCustomerRepo) Create(_ context.Context, _ *customer.Customer) error {
	return infra.WrapRepoErr("duplicate email", nil, infra.KindDuplicateKey)
}
