package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/carwash-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/carwash-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/carwash-scheduler/internal/models"
)

type UpdateAppointmentInput struct {
	ID           uint
	CustomerName string
	ServiceType  string
	ScheduledAt  time.Time

	RequestID string
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.CustomerName != "" {
		ap.CustomerName = in.CustomerName
	}
	if in.ServiceType != "" {
		ap.ServiceType = in.ServiceType
	}

	// Reagendamento repete a mesma normalização e checagem de
	// conflito da criação, ignorando o próprio registro.
	if !in.ScheduledAt.IsZero() {
		start := domain.NormalizeToSlot(in.ScheduledAt.In(uc.loc))

		if !start.Equal(ap.ScheduledAt) {
			if err := domain.ValidateSlot(start); err != nil {
				return nil, err
			}
			if err := uc.repo.AssertSlotFree(ctx, start, ap.ID); err != nil {
				return nil, err
			}
			ap.ScheduledAt = start
		}
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:    "appointment_updated",
		Entity:    "appointment",
		EntityID:  &ap.ID,
		RequestID: in.RequestID,
	})

	return ap, nil
}
