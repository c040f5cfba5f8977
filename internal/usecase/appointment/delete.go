package appointment

import (
	"context"

	"github.com/BruksfildServices01/carwash-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/carwash-scheduler/internal/domain/appointment"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute remove o registro de forma definitiva. Repetir a exclusão
// de um id já removido devolve appointment_not_found.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	id uint,
	requestID string,
) error {

	if err := uc.repo.DeleteAppointment(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:    "appointment_deleted",
		Entity:    "appointment",
		EntityID:  &id,
		RequestID: requestID,
	})

	return nil
}
