package appointment

import (
	"context"

	"github.com/BruksfildServices01/carwash-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/carwash-scheduler/internal/domain/appointment"
)

// ClearFinished é a varredura da tela de lista: remove de uma vez
// todo registro que não está mais pendente (done e cancelled).
type ClearFinished struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewClearFinished(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ClearFinished {
	return &ClearFinished{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ClearFinished) Execute(
	ctx context.Context,
	requestID string,
) (int64, error) {

	removed, err := uc.repo.DeleteFinished(ctx)
	if err != nil {
		return 0, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:    "appointments_swept",
		Entity:    "appointment",
		RequestID: requestID,
		Metadata:  map[string]any{"removed": removed},
	})

	return removed, nil
}
