package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/carwash-scheduler/internal/httperr"
	"github.com/BruksfildServices01/carwash-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/carwash-scheduler/internal/models"
	"github.com/BruksfildServices01/carwash-scheduler/internal/validators"
)

type CarHandler struct {
	db *gorm.DB
}

func NewCarHandler(db *gorm.DB) *CarHandler {
	return &CarHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateCarRequest struct {
	Plate    string `json:"plate" binding:"required"`
	Make     string `json:"make"`
	Model    string `json:"model"`
	Year     int    `json:"year"`
	Color    string `json:"color"`
	ClientID *uint  `json:"client_id"`
}

type UpdateCarRequest struct {
	Make     *string `json:"make"`
	Model    *string `json:"model"`
	Year     *int    `json:"year"`
	Color    *string `json:"color"`
	ClientID *uint   `json:"client_id"`
}

// ======================================================
// LIST
// ======================================================

func (h *CarHandler) List(c *gin.Context) {
	var cars []models.Car
	if err := h.db.
		Preload("Client").
		Order("id DESC").
		Find(&cars).Error; err != nil {

		httperr.Internal(c, "failed_to_list_cars", "Erro ao listar carros.")
		return
	}

	httpresp.List(c, cars)
}

// ======================================================
// GET BY PLATE (hidrata o formulário de agendamento)
// ======================================================

func (h *CarHandler) GetByPlate(c *gin.Context) {
	plate := validators.NormalizePlate(c.Param("placa"))
	if plate == "" {
		httperr.BadRequest(c, "missing_plate", "Placa não informada.")
		return
	}

	var car models.Car
	if err := h.db.
		Preload("Client").
		Where("plate = ?", plate).
		First(&car).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "car_not_found", "Carro não encontrado.")
			return
		}
		httperr.Internal(c, "storage_error", "Erro ao acessar o banco.")
		return
	}

	httpresp.OK(c, car)
}

// ======================================================
// CREATE
// ======================================================

func (h *CarHandler) Create(c *gin.Context) {
	var req CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_plate", "A placa é obrigatória.")
		return
	}

	plate := validators.NormalizePlate(req.Plate)
	if !validators.IsPlateValid(plate) {
		httperr.BadRequest(c, "invalid_plate", "Placa inválida.")
		return
	}

	car := models.Car{
		Plate:    plate,
		Make:     req.Make,
		Model:    req.Model,
		Year:     req.Year,
		Color:    req.Color,
		ClientID: req.ClientID,
	}

	if err := h.db.Create(&car).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "plate_already_registered", "Esta placa já está cadastrada.")
			return
		}
		httperr.Internal(c, "failed_to_create_car", "Erro ao cadastrar carro.")
		return
	}

	httpresp.Created(c, car)
}

// ======================================================
// UPDATE (parcial — inclui vínculo com cliente)
// ======================================================

func (h *CarHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var car models.Car
	if err := h.db.First(&car, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "car_not_found", "Carro não encontrado.")
			return
		}
		httperr.Internal(c, "storage_error", "Erro ao acessar o banco.")
		return
	}

	var req UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Make != nil {
		car.Make = *req.Make
	}
	if req.Model != nil {
		car.Model = *req.Model
	}
	if req.Year != nil {
		car.Year = *req.Year
	}
	if req.Color != nil {
		car.Color = *req.Color
	}
	if req.ClientID != nil {
		car.ClientID = req.ClientID
	}

	if err := h.db.Save(&car).Error; err != nil {
		httperr.Internal(c, "failed_to_update_car", "Erro ao atualizar carro.")
		return
	}

	httpresp.OK(c, car)
}

// ======================================================
// DELETE (bloqueado enquanto houver agendamentos)
// ======================================================

func (h *CarHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var refs int64
	if err := h.db.
		Model(&models.Appointment{}).
		Where("car_id = ?", id).
		Count(&refs).Error; err != nil {

		httperr.Internal(c, "failed_to_delete_car", "Erro ao excluir carro.")
		return
	}

	if refs > 0 {
		httperr.Conflict(c, "car_in_use", "Carro possui agendamentos vinculados.")
		return
	}

	tx := h.db.Delete(&models.Car{}, id)
	if tx.Error != nil {
		httperr.Internal(c, "failed_to_delete_car", "Erro ao excluir carro.")
		return
	}
	if tx.RowsAffected == 0 {
		httperr.NotFound(c, "car_not_found", "Carro não encontrado.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Carro excluído com sucesso."})
}
