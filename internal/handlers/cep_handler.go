package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/carwash-scheduler/internal/cep"
	"github.com/BruksfildServices01/carwash-scheduler/internal/httperr"
	"github.com/BruksfildServices01/carwash-scheduler/internal/httpresp"
)

type CEPHandler struct {
	resolver cep.Resolver
}

func NewCEPHandler(resolver cep.Resolver) *CEPHandler {
	return &CEPHandler{resolver: resolver}
}

// Lookup faz o proxy para o diretório externo de CEPs, separando
// "CEP inexistente" de falha do serviço.
func (h *CEPHandler) Lookup(c *gin.Context) {
	addr, err := h.resolver.Lookup(c.Request.Context(), c.Param("cep"))
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_cep"):
			httperr.BadRequest(c, "invalid_cep", "CEP inválido: deve conter 8 dígitos.")
		case httperr.IsBusiness(err, "cep_not_found"):
			httperr.NotFound(c, "cep_not_found", "CEP não encontrado.")
		default:
			httperr.BadGateway(c, "cep_upstream_error", "Erro ao consultar o serviço de CEP.")
		}
		return
	}

	httpresp.OK(c, addr)
}
