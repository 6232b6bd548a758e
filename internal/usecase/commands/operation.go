package commands

import (
	"context"
	"errors"
	"net/http"
	"time"

	"workshop-admin-api/internal/infra/upstream"
	"workshop-admin-api/internal/pkg/errs"
)

// AppointmentGateway is the write side of the appointments upstream. The
// aggregated read path is not touched by these calls; callers re-list after a
// mutation, invalidation is owned by the caller's data-fetching layer.
type AppointmentGateway interface {
	UpdateSchedule(ctx context.Context, id string, startDateTime, endDateTime time.Time) error
	Cancel(ctx context.Context, id string) error
	DeleteOperation(ctx context.Context, id string) error
}

// ChangeNotifier lets mutations nudge dashboard clients to refresh.
type ChangeNotifier interface {
	NotifyOperationsChanged()
}

type OperationCommands interface {
	UpdateReservationSchedule(ctx context.Context, id string, startDateTime, endDateTime time.Time) error
	CancelReservation(ctx context.Context, id string) error
	DeleteOperation(ctx context.Context, id string) error
}

type operationCommandsImpl struct {
	gateway  AppointmentGateway
	notifier ChangeNotifier
}

func NewOperationCommands(gateway AppointmentGateway, notifier ChangeNotifier) OperationCommands {
	return &operationCommandsImpl{
		gateway:  gateway,
		notifier: notifier,
	}
}

func (c *operationCommandsImpl) UpdateReservationSchedule(ctx context.Context, id string, startDateTime, endDateTime time.Time) error {
	if !endDateTime.After(startDateTime) {
		return errs.Mark(errs.New("end must be after start"), errs.ErrInvalidSchedule)
	}

	if err := c.gateway.UpdateSchedule(ctx, id, startDateTime, endDateTime); err != nil {
		return mapGatewayError(err, errs.ErrReservationNotFound)
	}

	c.notifier.NotifyOperationsChanged()
	return nil
}

func (c *operationCommandsImpl) CancelReservation(ctx context.Context, id string) error {
	if err := c.gateway.Cancel(ctx, id); err != nil {
		return mapGatewayError(err, errs.ErrReservationNotFound)
	}

	c.notifier.NotifyOperationsChanged()
	return nil
}

func (c *operationCommandsImpl) DeleteOperation(ctx context.Context, id string) error {
	if err := c.gateway.DeleteOperation(ctx, id); err != nil {
		return mapGatewayError(err, errs.ErrOperationNotFound)
	}

	c.notifier.NotifyOperationsChanged()
	return nil
}

func mapGatewayError(err error, notFound error) error {
	var statusErr *upstream.StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		return errs.Mark(err, notFound)
	}
	return errs.Mark(errs.Wrap(err, "appointment gateway call failed"), errs.ErrUpstreamFailure)
}
