package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/carwash-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/carwash-scheduler/internal/dto"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointmentsWithCars(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:           ap.ID,
			CustomerName: ap.CustomerName,
			ServiceType:  ap.ServiceType,
			ScheduledAt:  ap.ScheduledAt,
			Status:       ap.Status,
			CreatedAt:    ap.CreatedAt,
			DoneAt:       ap.DoneAt,
			CancelledAt:  ap.CancelledAt,
			CarID:        ap.CarID,
			Plate:        ap.Car.Plate,
			CarMake:      ap.Car.Make,
			CarModel:     ap.Car.Model,
			CarYear:      ap.Car.Year,
		})
	}

	return out, nil
}
