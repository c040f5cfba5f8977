package cep

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/BruksfildServices01/carwash-scheduler/internal/httperr"
	"github.com/BruksfildServices01/carwash-scheduler/internal/validators"
)

const DefaultBaseURL = "https://viacep.com.br/ws"

// Address é o endereço resolvido no formato do ViaCEP.
type Address struct {
	CEP          string `json:"cep"`
	Street       string `json:"logradouro"`
	Complement   string `json:"complemento"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	State        string `json:"uf"`
}

type Resolver interface {
	Lookup(ctx context.Context, cep string) (*Address, error)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Lookup valida o código antes de qualquer despacho e diferencia
// "CEP inexistente" (o ViaCEP responde 200 com erro=true) de falha
// do serviço externo.
func (c *Client) Lookup(ctx context.Context, cep string) (*Address, error) {
	cep = validators.NormalizeCEP(cep)
	if !validators.IsCEPValid(cep) {
		return nil, httperr.ErrBusiness("invalid_cep")
	}

	url := fmt.Sprintf("%s/%s/json/", c.baseURL, cep)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, httperr.ErrBusiness("cep_upstream_error")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, httperr.ErrBusiness("cep_upstream_error")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, httperr.ErrBusiness("cep_upstream_error")
	}

	var payload struct {
		Address
		Erro bool `json:"erro"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, httperr.ErrBusiness("cep_upstream_error")
	}

	if payload.Erro {
		return nil, httperr.ErrBusiness("cep_not_found")
	}

	return &payload.Address, nil
}

// Compile-time check
var _ Resolver = (*Client)(nil)
