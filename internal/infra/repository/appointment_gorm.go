package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/carwash-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/carwash-scheduler/internal/httperr"
	"github.com/BruksfildServices01/carwash-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Car
// --------------------------------------------------

func (r *AppointmentGormRepository) GetCarByID(
	ctx context.Context,
	id uint,
) (*models.Car, error) {

	var car models.Car
	err := withRetry(ctx, func() error {
		return r.db.WithContext(ctx).First(&car, id).Error
	})
	if err != nil {
		// Registro ausente vira código de negócio; falha de banco
		// propaga intacta para virar 500 na borda.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("car_not_found")
		}
		return nil, err
	}
	return &car, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// AssertSlotFree é a checagem consultiva: rejeita cedo com mensagem
// amigável. A garantia real contra corrida é o índice parcial de
// unicidade em (scheduled_at) WHERE status = 'pending'.
func (r *AppointmentGormRepository) AssertSlotFree(
	ctx context.Context,
	at time.Time,
	excludeID uint,
) error {

	var count int64
	err := withRetry(ctx, func() error {
		q := r.db.WithContext(ctx).
			Model(&models.Appointment{}).
			Where(
				"status = ? AND scheduled_at = ?",
				string(domain.StatusPending),
				at,
			)

		if excludeID != 0 {
			q = q.Where("id <> ?", excludeID)
		}

		return q.Count(&count).Error
	})
	if err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness("slot_taken")
	}

	return nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return withRetry(ctx, func() error {
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

			var conflicts []models.Appointment
			if err := tx.
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Where(
					"status = ? AND scheduled_at = ?",
					string(domain.StatusPending),
					ap.ScheduledAt,
				).
				Find(&conflicts).Error; err != nil {
				return err
			}

			if len(conflicts) > 0 {
				return httperr.ErrBusiness("slot_taken")
			}

			return tx.Create(ap).Error
		})

		if httperr.IsUniqueViolation(err) {
			return httperr.ErrBusiness("slot_taken")
		}
		return err
	})
}

// --------------------------------------------------
// Appointment (read / mutate)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := withRetry(ctx, func() error {
		return r.db.WithContext(ctx).First(&ap, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return withRetry(ctx, func() error {
		err := r.db.WithContext(ctx).Save(ap).Error
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrBusiness("slot_taken")
		}
		return err
	})
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {

	return withRetry(ctx, func() error {
		tx := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
		if tx.Error != nil {
			return tx.Error
		}
		if tx.RowsAffected == 0 {
			return httperr.ErrBusiness("appointment_not_found")
		}
		return nil
	})
}

// --------------------------------------------------
// Listagem
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	err := withRetry(ctx, func() error {
		return r.db.WithContext(ctx).
			Select("id", "scheduled_at", "status").
			Where(
				"status = ? AND scheduled_at >= ? AND scheduled_at < ?",
				string(domain.StatusPending),
				start, end,
			).
			Order("scheduled_at ASC").
			Find(&aps).Error
	})
	if err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsWithCars(
	ctx context.Context,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	err := withRetry(ctx, func() error {
		return r.db.WithContext(ctx).
			Preload("Car").
			Order("scheduled_at DESC").
			Find(&aps).Error
	})
	if err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) DeleteFinished(
	ctx context.Context,
) (int64, error) {

	var removed int64
	err := withRetry(ctx, func() error {
		tx := r.db.WithContext(ctx).
			Where("status <> ?", string(domain.StatusPending)).
			Delete(&models.Appointment{})
		removed = tx.RowsAffected
		return tx.Error
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
