package appointment

import (
	"context"

	"github.com/BruksfildServices01/carwash-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/carwash-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/carwash-scheduler/internal/models"
	"github.com/BruksfildServices01/carwash-scheduler/internal/timezone"
)

type TransitionStatus struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	tz     string
	strict bool
}

// strict controla a política para estados terminais: por padrão um
// agendamento done/cancelled não volta nem muda; com strict=false o
// serviço replica o comportamento permissivo do sistema antigo.
func NewTransitionStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
	strict bool,
) *TransitionStatus {
	return &TransitionStatus{
		repo:   repo,
		audit:  audit,
		tz:     tz,
		strict: strict,
	}
}

func (uc *TransitionStatus) Execute(
	ctx context.Context,
	id uint,
	next domain.Status,
	requestID string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Transition(ap, next, now, uc.strict); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:    "appointment_status_" + string(next),
		Entity:    "appointment",
		EntityID:  &ap.ID,
		RequestID: requestID,
	})

	return ap, nil
}
