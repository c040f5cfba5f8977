package appointment

import "github.com/BruksfildServices01/carwash-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusDone      Status = "done"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

func IsValidStatus(s Status) bool {
	return s == StatusPending || s == StatusDone || s == StatusCancelled
}

func IsTerminal(s Status) bool {
	return s == StatusDone || s == StatusCancelled
}

// ===============================
// Validations
// ===============================

// CanTransition valida a mudança de status. No fluxo normal só existe
// pending → done e pending → cancelled; com strict=false o serviço
// aceita reabrir registros terminais (comportamento do sistema antigo).
func CanTransition(current, next Status, strict bool) error {
	if !IsValidStatus(next) {
		return httperr.ErrBusiness("invalid_status")
	}
	if next == StatusPending {
		return httperr.ErrBusiness("invalid_status")
	}
	if strict && IsTerminal(current) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
