package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/carwash-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/carwash-scheduler/internal/httperr"
	"github.com/BruksfildServices01/carwash-scheduler/internal/models"
)

var saoPaulo = time.FixedZone("-03", -3*60*60)

// ======================================================
// FAKE REPOSITORY
// ======================================================

type fakeRepo struct {
	cars         map[uint]*models.Car
	appointments map[uint]*models.Appointment
	nextID       uint
	writes       int

	// erro de banco injetado nas leituras
	readErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		cars:         map[uint]*models.Car{},
		appointments: map[uint]*models.Appointment{},
		nextID:       1,
	}
}

func (f *fakeRepo) addCar(car models.Car) *models.Car {
	f.cars[car.ID] = &car
	return &car
}

func (f *fakeRepo) addAppointment(ap models.Appointment) *models.Appointment {
	ap.ID = f.nextID
	f.nextID++
	f.appointments[ap.ID] = &ap
	return &ap
}

func (f *fakeRepo) GetCarByID(_ context.Context, id uint) (*models.Car, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	car, ok := f.cars[id]
	if !ok {
		return nil, httperr.ErrBusiness("car_not_found")
	}
	return car, nil
}

func (f *fakeRepo) AssertSlotFree(_ context.Context, at time.Time, excludeID uint) error {
	for _, ap := range f.appointments {
		if ap.ID == excludeID {
			continue
		}
		if ap.Status == string(domain.StatusPending) && ap.ScheduledAt.Equal(at) {
			return httperr.ErrBusiness("slot_taken")
		}
	}
	return nil
}

func (f *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	// emula o índice parcial de unicidade do banco
	if err := f.AssertSlotFree(ctx, ap.ScheduledAt, 0); err != nil {
		return err
	}

	ap.ID = f.nextID
	f.nextID++
	stored := *ap
	f.appointments[ap.ID] = &stored
	f.writes++
	return nil
}

func (f *fakeRepo) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	ap, ok := f.appointments[id]
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if _, ok := f.appointments[ap.ID]; !ok {
		return errors.New("record not found")
	}
	if ap.Status == string(domain.StatusPending) {
		if err := f.AssertSlotFree(ctx, ap.ScheduledAt, ap.ID); err != nil {
			return err
		}
	}
	stored := *ap
	f.appointments[ap.ID] = &stored
	f.writes++
	return nil
}

func (f *fakeRepo) DeleteAppointment(_ context.Context, id uint) error {
	if _, ok := f.appointments[id]; !ok {
		return httperr.ErrBusiness("appointment_not_found")
	}
	delete(f.appointments, id)
	f.writes++
	return nil
}

func (f *fakeRepo) ListAppointmentsForDay(
	_ context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.Status != string(domain.StatusPending) {
			continue
		}
		if !ap.ScheduledAt.Before(start) && ap.ScheduledAt.Before(end) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsWithCars(_ context.Context) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		cp := *ap
		if car, ok := f.cars[cp.CarID]; ok {
			cp.Car = *car
		}
		out = append(out, cp)
	}
	return out, nil
}

func (f *fakeRepo) DeleteFinished(_ context.Context) (int64, error) {
	var removed int64
	for id, ap := range f.appointments {
		if ap.Status != string(domain.StatusPending) {
			delete(f.appointments, id)
			removed++
		}
	}
	if removed > 0 {
		f.writes++
	}
	return removed, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// ======================================================
// CREATE
// ======================================================

func saturdayAt(hour, min int) time.Time {
	return time.Date(2024, time.June, 8, hour, min, 0, 0, saoPaulo)
}

func TestCreateAppointment_NormalizesAndPersists(t *testing.T) {
	repo := newFakeRepo()
	ownerID := uint(7)
	repo.addCar(models.Car{ID: 1, Plate: "ABC1234", ClientID: &ownerID})

	uc := NewCreateAppointment(repo, nil, saoPaulo)

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		CarID:        1,
		CustomerName: "João",
		ServiceType:  "completa",
		ScheduledAt:  saturdayAt(10, 37),
	})

	require.NoError(t, err)
	assert.NotZero(t, ap.ID)
	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.True(t, ap.ScheduledAt.Equal(saturdayAt(10, 0)), "horário truncado para a fronteira do slot")

	// sem client_id explícito, herda o dono do carro
	require.NotNil(t, ap.ClientID)
	assert.Equal(t, ownerID, *ap.ClientID)
}

func TestCreateAppointment_MissingNameWritesNothing(t *testing.T) {
	repo := newFakeRepo()
	repo.addCar(models.Car{ID: 1, Plate: "ABC1234"})

	uc := NewCreateAppointment(repo, nil, saoPaulo)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		CarID:       1,
		ServiceType: "simples",
		ScheduledAt: saturdayAt(10, 0),
	})

	assert.True(t, httperr.IsBusiness(err, "missing_required_fields"))
	assert.Zero(t, repo.writes)
}

func TestCreateAppointment_CarMustExist(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, nil, saoPaulo)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		CarID:        99,
		CustomerName: "João",
		ServiceType:  "simples",
		ScheduledAt:  saturdayAt(10, 0),
	})

	assert.True(t, httperr.IsBusiness(err, "car_not_found"))
	assert.Zero(t, repo.writes)
}

func TestCreateAppointment_RejectsWeekday(t *testing.T) {
	repo := newFakeRepo()
	repo.addCar(models.Car{ID: 1, Plate: "ABC1234"})

	uc := NewCreateAppointment(repo, nil, saoPaulo)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		CarID:        1,
		CustomerName: "João",
		ServiceType:  "simples",
		// 2024-06-10 é segunda-feira
		ScheduledAt: time.Date(2024, time.June, 10, 10, 0, 0, 0, saoPaulo),
	})

	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}

func TestCreateAppointment_ConflictOnPendingSlot(t *testing.T) {
	repo := newFakeRepo()
	repo.addCar(models.Car{ID: 1, Plate: "ABC1234"})
	repo.addCar(models.Car{ID: 2, Plate: "XYZ9A87"})

	taken := repo.addAppointment(models.Appointment{
		CarID:        1,
		CustomerName: "Maria",
		ServiceType:  "simples",
		ScheduledAt:  saturdayAt(10, 0),
		Status:       string(domain.StatusPending),
	})

	uc := NewCreateAppointment(repo, nil, saoPaulo)

	in := CreateAppointmentInput{
		CarID:        2,
		CustomerName: "João",
		ServiceType:  "completa",
		ScheduledAt:  saturdayAt(10, 0),
	}

	// conflito é global por horário, independe do carro
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "slot_taken"))

	// cancelar o agendamento existente libera o slot
	repo.appointments[taken.ID].Status = string(domain.StatusCancelled)

	ap, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, ap.ScheduledAt.Equal(saturdayAt(10, 0)))
}

func TestCreateAppointment_StorageFailureIsNotNotFound(t *testing.T) {
	repo := newFakeRepo()
	repo.addCar(models.Car{ID: 1, Plate: "ABC1234"})
	repo.readErr = &pgconn.PgError{Code: "08006"}

	uc := NewCreateAppointment(repo, nil, saoPaulo)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		CarID:        1,
		CustomerName: "João",
		ServiceType:  "simples",
		ScheduledAt:  saturdayAt(10, 0),
	})

	require.Error(t, err)
	assert.False(t, httperr.IsBusiness(err, "car_not_found"),
		"falha de conexão não pode virar 404")
	_, isBusiness := httperr.BusinessCode(err)
	assert.False(t, isBusiness, "erro de banco propaga cru para virar 500 na borda")
}

// ======================================================
// UPDATE
// ======================================================

func TestUpdateAppointment_NotFound(t *testing.T) {
	uc := NewUpdateAppointment(newFakeRepo(), nil, saoPaulo)

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{ID: 42})
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestUpdateAppointment_EditsFields(t *testing.T) {
	repo := newFakeRepo()
	ap := repo.addAppointment(models.Appointment{
		CarID:        1,
		CustomerName: "Maria",
		ServiceType:  "simples",
		ScheduledAt:  saturdayAt(10, 0),
		Status:       string(domain.StatusPending),
	})

	uc := NewUpdateAppointment(repo, nil, saoPaulo)

	got, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:           ap.ID,
		CustomerName: "Maria Silva",
		ServiceType:  "completa",
	})

	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", got.CustomerName)
	assert.Equal(t, "completa", got.ServiceType)
	assert.True(t, got.ScheduledAt.Equal(saturdayAt(10, 0)), "horário não muda sem reagendamento")
}

func TestUpdateAppointment_RescheduleConflict(t *testing.T) {
	repo := newFakeRepo()
	first := repo.addAppointment(models.Appointment{
		CarID:        1,
		CustomerName: "Maria",
		ServiceType:  "simples",
		ScheduledAt:  saturdayAt(10, 0),
		Status:       string(domain.StatusPending),
	})
	repo.addAppointment(models.Appointment{
		CarID:        2,
		CustomerName: "João",
		ServiceType:  "simples",
		ScheduledAt:  saturdayAt(12, 0),
		Status:       string(domain.StatusPending),
	})

	uc := NewUpdateAppointment(repo, nil, saoPaulo)

	// mover para slot ocupado por outro → conflito
	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:          first.ID,
		ScheduledAt: saturdayAt(12, 0),
	})
	assert.True(t, httperr.IsBusiness(err, "slot_taken"))

	// reenviar o próprio horário não conflita consigo mesmo
	got, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:          first.ID,
		ScheduledAt: saturdayAt(10, 25),
	})
	require.NoError(t, err)
	assert.True(t, got.ScheduledAt.Equal(saturdayAt(10, 0)))

	// mover para slot livre funciona
	got, err = uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:          first.ID,
		ScheduledAt: saturdayAt(14, 0),
	})
	require.NoError(t, err)
	assert.True(t, got.ScheduledAt.Equal(saturdayAt(14, 0)))
}

// ======================================================
// STATUS
// ======================================================

func TestTransitionStatus_NotFound(t *testing.T) {
	uc := NewTransitionStatus(newFakeRepo(), nil, "", true)

	_, err := uc.Execute(context.Background(), 42, domain.StatusDone, "")
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestTransitionStatus_PendingToDone(t *testing.T) {
	repo := newFakeRepo()
	ap := repo.addAppointment(models.Appointment{
		CarID:        1,
		CustomerName: "Maria",
		ServiceType:  "simples",
		ScheduledAt:  saturdayAt(10, 0),
		Status:       string(domain.StatusPending),
	})

	uc := NewTransitionStatus(repo, nil, "", true)

	got, err := uc.Execute(context.Background(), ap.ID, domain.StatusDone, "")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusDone), got.Status)
	assert.NotNil(t, got.DoneAt)

	// terminal não muda mais no modo estrito
	_, err = uc.Execute(context.Background(), ap.ID, domain.StatusCancelled, "")
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestTransitionStatus_StorageFailureIsNotNotFound(t *testing.T) {
	repo := newFakeRepo()
	repo.addAppointment(models.Appointment{
		CarID:       1,
		ScheduledAt: saturdayAt(10, 0),
		Status:      string(domain.StatusPending),
	})
	repo.readErr = &pgconn.PgError{Code: "57P01"}

	uc := NewTransitionStatus(repo, nil, "", true)

	_, err := uc.Execute(context.Background(), 1, domain.StatusDone, "")
	require.Error(t, err)
	assert.False(t, httperr.IsBusiness(err, "appointment_not_found"),
		"falha de conexão não pode virar 404")
}

// ======================================================
// DELETE / SWEEP
// ======================================================

func TestDeleteAppointment_IdempotentNotFound(t *testing.T) {
	repo := newFakeRepo()
	ap := repo.addAppointment(models.Appointment{
		CarID:       1,
		ScheduledAt: saturdayAt(10, 0),
		Status:      string(domain.StatusDone),
	})

	uc := NewDeleteAppointment(repo, nil)

	require.NoError(t, uc.Execute(context.Background(), ap.ID, ""))

	err := uc.Execute(context.Background(), ap.ID, "")
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestClearFinished_RemovesOnlyTerminal(t *testing.T) {
	repo := newFakeRepo()
	pending := repo.addAppointment(models.Appointment{
		CarID:       1,
		ScheduledAt: saturdayAt(10, 0),
		Status:      string(domain.StatusPending),
	})
	repo.addAppointment(models.Appointment{
		CarID:       1,
		ScheduledAt: saturdayAt(12, 0),
		Status:      string(domain.StatusDone),
	})
	repo.addAppointment(models.Appointment{
		CarID:       1,
		ScheduledAt: saturdayAt(14, 0),
		Status:      string(domain.StatusCancelled),
	})

	uc := NewClearFinished(repo, nil)

	removed, err := uc.Execute(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	_, ok := repo.appointments[pending.ID]
	assert.True(t, ok, "pendente permanece")
	assert.Len(t, repo.appointments, 1)
}

// ======================================================
// AVAILABILITY
// ======================================================

func TestGetAvailability_OccupiedAndPast(t *testing.T) {
	repo := newFakeRepo()
	repo.addAppointment(models.Appointment{
		CarID:       1,
		ScheduledAt: saturdayAt(16, 0),
		Status:      string(domain.StatusPending),
	})

	uc := NewGetAvailability(repo, saoPaulo)
	uc.now = func() time.Time { return saturdayAt(13, 30) }

	slots, err := uc.Execute(context.Background(), "2024-06-08")
	require.NoError(t, err)
	require.Len(t, slots, 6)

	byHour := map[int]domain.SlotState{}
	for _, s := range slots {
		byHour[s.Hour] = s.State
	}

	assert.Equal(t, domain.SlotPast, byHour[8])
	assert.Equal(t, domain.SlotPast, byHour[10])
	assert.Equal(t, domain.SlotPast, byHour[12])
	assert.Equal(t, domain.SlotAvailable, byHour[14])
	assert.Equal(t, domain.SlotOccupied, byHour[16])
	assert.Equal(t, domain.SlotAvailable, byHour[18])
}

func TestGetAvailability_InvalidDate(t *testing.T) {
	uc := NewGetAvailability(newFakeRepo(), saoPaulo)

	_, err := uc.Execute(context.Background(), "not-a-date")
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))

	_, err = uc.Execute(context.Background(), "2024-06-10")
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}
