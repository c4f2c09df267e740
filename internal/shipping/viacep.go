package shipping

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Address is the subset of the ViaCEP payload the checkout flow uses.
type Address struct {
	CEP      string `json:"cep"`
	Street   string `json:"logradouro"`
	District string `json:"bairro"`
	City     string `json:"localidade"`
	UF       string `json:"uf"`
}

// AddressLookup resolves a normalized 8-digit CEP into an address.
type AddressLookup interface {
	Lookup(ctx context.Context, cep string) (*Address, error)
}

// ViaCEPClient queries the public ViaCEP service.
type ViaCEPClient struct {
	baseURL string
	client  *http.Client
}

func NewViaCEPClient(baseURL string) *ViaCEPClient {
	return &ViaCEPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (v *ViaCEPClient) Lookup(ctx context.Context, cep string) (*Address, error) {
	url := fmt.Sprintf("%s/ws/%s/json/", v.baseURL, cep)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar CEP: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("erro ao buscar CEP: status %d", resp.StatusCode)
	}

	// ViaCEP answers 200 with {"erro": true} for unknown codes
	var payload struct {
		Address
		Erro bool `json:"erro"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("erro ao buscar CEP: %w", err)
	}

	if payload.Erro {
		return nil, ErrCEPNotFound
	}

	return &payload.Address, nil
}
