package appointment

import (
	"time"

	"github.com/BruksfildServices01/carwash-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition aplica a mudança de status carimbando o instante da
// ação; nenhum outro campo é alterado.
func Transition(ap *models.Appointment, next Status, now time.Time, strict bool) error {
	if err := CanTransition(Status(ap.Status), next, strict); err != nil {
		return err
	}

	ap.Status = string(next)
	switch next {
	case StatusDone:
		ap.DoneAt = &now
	case StatusCancelled:
		ap.CancelledAt = &now
	}
	return nil
}
