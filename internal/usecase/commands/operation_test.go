//go:build unit

package commands_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"workshop-admin-api/internal/infra/upstream"
	"workshop-admin-api/internal/pkg/errs"
	"workshop-admin-api/internal/usecase/commands"

	"github.com/stretchr/testify/suite"
)

type stubGateway struct {
	updateScheduleErr error
	cancelErr         error
	deleteErr         error

	updatedID    string
	updatedStart time.Time
	updatedEnd   time.Time
	cancelledID  string
	deletedID    string
}

func (s *stubGateway) UpdateSchedule(_ context.Context, id string, start, end time.Time) error {
	s.updatedID = id
	s.updatedStart = start
	s.updatedEnd = end
	return s.updateScheduleErr
}

func (s *stubGateway) Cancel(_ context.Context, id string) error {
	s.cancelledID = id
	return s.cancelErr
}

func (s *stubGateway) DeleteOperation(_ context.Context, id string) error {
	s.deletedID = id
	return s.deleteErr
}

type stubNotifier struct {
	notified int
}

func (s *stubNotifier) NotifyOperationsChanged() {
	s.notified++
}

type OperationCommandsTestSuite struct {
	suite.Suite
	gateway  *stubGateway
	notifier *stubNotifier
	cmds     commands.OperationCommands
}

func (s *OperationCommandsTestSuite) SetupTest() {
	s.gateway = &stubGateway{}
	s.notifier = &stubNotifier{}
	s.cmds = commands.NewOperationCommands(s.gateway, s.notifier)
}

func TestOperationCommandsSuite(t *testing.T) {
	suite.Run(t, new(OperationCommandsTestSuite))
}

func (s *OperationCommandsTestSuite) TestUpdateReservationSchedule() {
	start := time.Date(2026, 1, 12, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	err := s.cmds.UpdateReservationSchedule(context.Background(), "r1", start, end)

	s.Require().NoError(err)
	s.Equal("r1", s.gateway.updatedID)
	s.Equal(start, s.gateway.updatedStart)
	s.Equal(end, s.gateway.updatedEnd)
	s.Equal(1, s.notifier.notified)
}

func (s *OperationCommandsTestSuite) TestUpdateRejectsInvertedWindow() {
	start := time.Date(2026, 1, 12, 10, 0, 0, 0, time.UTC)

	err := s.cmds.UpdateReservationSchedule(context.Background(), "r1", start, start)

	s.Require().True(errs.Is(err, errs.ErrInvalidSchedule))
	s.Empty(s.gateway.updatedID, "gateway must not be called on invalid input")
	s.Zero(s.notifier.notified)
}

func (s *OperationCommandsTestSuite) TestUpdateMapsUpstreamNotFound() {
	s.gateway.updateScheduleErr = &upstream.StatusError{Service: "appointments", StatusCode: http.StatusNotFound}
	start := time.Date(2026, 1, 12, 10, 0, 0, 0, time.UTC)

	err := s.cmds.UpdateReservationSchedule(context.Background(), "missing", start, start.Add(time.Hour))

	s.Require().True(errs.Is(err, errs.ErrReservationNotFound))
	s.Zero(s.notifier.notified)
}

func (s *OperationCommandsTestSuite) TestCancelReservation() {
	err := s.cmds.CancelReservation(context.Background(), "r2")

	s.Require().NoError(err)
	s.Equal("r2", s.gateway.cancelledID)
	s.Equal(1, s.notifier.notified)
}

func (s *OperationCommandsTestSuite) TestCancelMapsServerErrorToUpstreamFailure() {
	s.gateway.cancelErr = &upstream.StatusError{Service: "appointments", StatusCode: http.StatusInternalServerError}

	err := s.cmds.CancelReservation(context.Background(), "r2")

	s.Require().True(errs.Is(err, errs.ErrUpstreamFailure))
	s.Zero(s.notifier.notified)
}

func (s *OperationCommandsTestSuite) TestDeleteOperation() {
	err := s.cmds.DeleteOperation(context.Background(), "v1")

	s.Require().NoError(err)
	s.Equal("v1", s.gateway.deletedID)
	s.Equal(1, s.notifier.notified)
}

func (s *OperationCommandsTestSuite) TestDeleteMapsUpstreamNotFound() {
	s.gateway.deleteErr = &upstream.StatusError{Service: "appointments", StatusCode: http.StatusNotFound}

	err := s.cmds.DeleteOperation(context.Background(), "missing")

	s.Require().True(errs.Is(err, errs.ErrOperationNotFound))
	s.Zero(s.notifier.notified)
}
