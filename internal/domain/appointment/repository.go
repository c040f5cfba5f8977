package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/carwash-scheduler/internal/models"
)

// Repository é o contrato de persistência dos agendamentos. Registro
// ausente nas leituras volta como código de negócio (car_not_found,
// appointment_not_found); qualquer outra falha de banco propaga crua.
type Repository interface {
	// -------- Car --------
	GetCarByID(
		ctx context.Context,
		id uint,
	) (*models.Car, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	AssertSlotFree(
		ctx context.Context,
		at time.Time,
		excludeID uint,
	) error

	// -------- Appointment (read / mutate) --------
	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// -------- Listagem --------
	ListAppointmentsForDay(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsWithCars(
		ctx context.Context,
	) ([]models.Appointment, error)

	DeleteFinished(
		ctx context.Context,
	) (int64, error)
}
