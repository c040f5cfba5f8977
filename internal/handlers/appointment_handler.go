package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/carwash-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/carwash-scheduler/internal/httperr"
	"github.com/BruksfildServices01/carwash-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/carwash-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/carwash-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *ucAppointment.CreateAppointment
	updateUC       *ucAppointment.UpdateAppointment
	transitionUC   *ucAppointment.TransitionStatus
	deleteUC       *ucAppointment.DeleteAppointment
	clearUC        *ucAppointment.ClearFinished
	listUC         *ucAppointment.ListAppointments
	availabilityUC *ucAppointment.GetAvailability
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	transitionUC *ucAppointment.TransitionStatus,
	deleteUC *ucAppointment.DeleteAppointment,
	clearUC *ucAppointment.ClearFinished,
	listUC *ucAppointment.ListAppointments,
	availabilityUC *ucAppointment.GetAvailability,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		updateUC:       updateUC,
		transitionUC:   transitionUC,
		deleteUC:       deleteUC,
		clearUC:        clearUC,
		listUC:         listUC,
		availabilityUC: availabilityUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	CarID        uint      `json:"car_id" binding:"required"`
	ClientID     *uint     `json:"client_id"`
	CustomerName string    `json:"customer_name" binding:"required"`
	ServiceType  string    `json:"service_type" binding:"required"`
	ScheduledAt  time.Time `json:"scheduled_at" binding:"required"`
}

type UpdateAppointmentRequest struct {
	CustomerName string    `json:"customer_name"`
	ServiceType  string    `json:"service_type"`
	ScheduledAt  time.Time `json:"scheduled_at"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// HELPERS
// ======================================================

func writeAppointmentError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "storage_error", "Erro ao acessar o banco.")
		return
	}

	switch code {
	case "slot_taken":
		httperr.Conflict(c, code, "Horário já reservado.")
	case "appointment_not_found":
		httperr.NotFound(c, code, "Agendamento não encontrado.")
	case "car_not_found":
		httperr.NotFound(c, code, "Carro não encontrado.")
	case "invalid_date":
		httperr.BadRequest(c, code, "Atendemos somente aos sábados e domingos.")
	case "invalid_slot":
		httperr.BadRequest(c, code, "Horário fora das janelas de atendimento.")
	case "missing_required_fields":
		httperr.BadRequest(c, code, "Dados obrigatórios faltando.")
	case "invalid_status", "invalid_state":
		httperr.BadRequest(c, code, "Mudança de status inválida.")
	default:
		httperr.BadRequest(c, code, "Requisição inválida.")
	}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), dateStr)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_required_fields", "Dados obrigatórios faltando.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		CarID:        req.CarID,
		ClientID:     req.ClientID,
		CustomerName: req.CustomerName,
		ServiceType:  req.ServiceType,
		ScheduledAt:  req.ScheduledAt,
		RequestID:    middleware.GetRequestID(c),
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// UPDATE (nome / serviço / horário)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		ID:           id,
		CustomerName: req.CustomerName,
		ServiceType:  req.ServiceType,
		ScheduledAt:  req.ScheduledAt,
		RequestID:    middleware.GetRequestID(c),
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// STATUS (Pendente → Feito / Cancelado)
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status obrigatório.")
		return
	}

	ap, err := h.transitionUC.Execute(
		c.Request.Context(),
		id,
		domain.Status(req.Status),
		middleware.GetRequestID(c),
	)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE (individual)
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	err := h.deleteUC.Execute(c.Request.Context(), id, middleware.GetRequestID(c))
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "Agendamento excluído com sucesso."})
}

// ======================================================
// SWEEP (limpar concluídos / cancelados)
// ======================================================

func (h *AppointmentHandler) ClearFinished(c *gin.Context) {
	removed, err := h.clearUC.Execute(c.Request.Context(), middleware.GetRequestID(c))
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"removed": removed})
}

// ======================================================
// LIST (tela de lista)
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	appointments, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.List(c, appointments)
}
