package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/carwash-scheduler/internal/httperr"
	"github.com/BruksfildServices01/carwash-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/carwash-scheduler/internal/models"
	"github.com/BruksfildServices01/carwash-scheduler/internal/validators"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateClientRequest struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone"`
	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
}

type UpdateClientRequest struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	CEP          *string `json:"cep"`
	Street       *string `json:"street"`
	Number       *string `json:"number"`
	Complement   *string `json:"complement"`
	Neighborhood *string `json:"neighborhood"`
	City         *string `json:"city"`
}

// ======================================================
// LIST
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Session(&gorm.Session{})
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR phone LIKE ?", like, like)
	}

	var clients []models.Client
	if err := q.
		Order("id DESC").
		Find(&clients).Error; err != nil {

		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, clients)
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_name", "O nome do cliente é obrigatório.")
		return
	}

	cep := validators.NormalizeCEP(req.CEP)
	if cep != "" && !validators.IsCEPValid(cep) {
		httperr.BadRequest(c, "invalid_cep", "CEP inválido: deve conter 8 dígitos.")
		return
	}

	client := models.Client{
		Name:         req.Name,
		Phone:        req.Phone,
		CEP:          cep,
		Street:       req.Street,
		Number:       req.Number,
		Complement:   req.Complement,
		Neighborhood: req.Neighborhood,
		City:         req.City,
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", "Erro ao cadastrar cliente.")
		return
	}

	httpresp.Created(c, client)
}

// ======================================================
// UPDATE (parcial)
// ======================================================

func (h *ClientHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
			return
		}
		httperr.Internal(c, "storage_error", "Erro ao acessar o banco.")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			httperr.BadRequest(c, "missing_name", "O nome do cliente é obrigatório.")
			return
		}
		client.Name = *req.Name
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.CEP != nil {
		cep := validators.NormalizeCEP(*req.CEP)
		if cep != "" && !validators.IsCEPValid(cep) {
			httperr.BadRequest(c, "invalid_cep", "CEP inválido: deve conter 8 dígitos.")
			return
		}
		client.CEP = cep
	}
	if req.Street != nil {
		client.Street = *req.Street
	}
	if req.Number != nil {
		client.Number = *req.Number
	}
	if req.Complement != nil {
		client.Complement = *req.Complement
	}
	if req.Neighborhood != nil {
		client.Neighborhood = *req.Neighborhood
	}
	if req.City != nil {
		client.City = *req.City
	}

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Erro ao atualizar cliente.")
		return
	}

	httpresp.OK(c, client)
}
