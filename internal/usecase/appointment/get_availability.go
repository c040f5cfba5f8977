package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/carwash-scheduler/internal/domain/appointment"
)

type GetAvailability struct {
	repo domain.Repository
	loc  *time.Location
	now  func() time.Time
}

func NewGetAvailability(repo domain.Repository, loc *time.Location) *GetAvailability {
	return &GetAvailability{
		repo: repo,
		loc:  loc,
		now:  time.Now,
	}
}

// Execute lê os agendamentos do dia direto do banco — nenhum cache no
// meio — e delega o cálculo puro para domain.ComputeDaySlots.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	dateStr string,
) ([]domain.SlotOffer, error) {

	date, err := domain.ParseLocalDate(dateStr)
	if err != nil {
		return nil, err
	}

	dayStart := date.At(0, uc.loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	existing, err := uc.repo.ListAppointmentsForDay(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	return domain.ComputeDaySlots(date, existing, uc.now().In(uc.loc))
}
