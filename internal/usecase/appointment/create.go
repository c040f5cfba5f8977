package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/carwash-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/carwash-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/carwash-scheduler/internal/httperr"
	"github.com/BruksfildServices01/carwash-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	CarID        uint
	ClientID     *uint
	CustomerName string
	ServiceType  string
	ScheduledAt  time.Time

	RequestID string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Campos obrigatórios — nada é gravado se faltar algo
	// --------------------------------------------------
	if in.CarID == 0 || in.CustomerName == "" ||
		in.ServiceType == "" || in.ScheduledAt.IsZero() {
		return nil, httperr.ErrBusiness("missing_required_fields")
	}

	// --------------------------------------------------
	// Carro precisa existir
	// --------------------------------------------------
	car, err := uc.repo.GetCarByID(ctx, in.CarID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Normalização servidor-side para a fronteira do slot
	// --------------------------------------------------
	start := domain.NormalizeToSlot(in.ScheduledAt.In(uc.loc))
	if err := domain.ValidateSlot(start); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Checagem consultiva de conflito; a garantia final é o
	// índice parcial de unicidade do banco
	// --------------------------------------------------
	if err := uc.repo.AssertSlotFree(ctx, start, 0); err != nil {
		uc.dispatchConflict(in, start, err)
		return nil, err
	}

	// --------------------------------------------------
	// Criação (status inicial centralizado no domínio)
	// --------------------------------------------------
	clientID := in.ClientID
	if clientID == nil {
		clientID = car.ClientID
	}

	ap := &models.Appointment{
		CarID:        car.ID,
		ClientID:     clientID,
		CustomerName: in.CustomerName,
		ServiceType:  in.ServiceType,
		ScheduledAt:  start,
		Status:       string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		uc.dispatchConflict(in, start, err)
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:    "appointment_created",
		Entity:    "appointment",
		EntityID:  &ap.ID,
		RequestID: in.RequestID,
	})

	return ap, nil
}

func (uc *CreateAppointment) dispatchConflict(
	in CreateAppointmentInput,
	start time.Time,
	err error,
) {
	if !httperr.IsBusiness(err, "slot_taken") {
		return
	}

	uc.audit.Dispatch(audit.Event{
		Action:    "appointment_conflict",
		Entity:    "appointment",
		RequestID: in.RequestID,
		Metadata: map[string]any{
			"car_id":       in.CarID,
			"scheduled_at": start,
		},
	})
}
