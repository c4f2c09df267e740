package shipping

import "context"

// Option is one carrier offer. The pair below is fixed: prices do not
// depend on the address, weight or distance.
type Option struct {
	Carrier  string  `json:"transportadora"`
	Value    float64 `json:"valor"`
	Deadline string  `json:"prazo"`
}

// Options returns the simulated carrier offers, always the same two.
func Options() []Option {
	return []Option{
		{Carrier: "Correios PAC", Value: 25.90, Deadline: "2 dias úteis"},
		{Carrier: "Correios Sedex", Value: 15.50, Deadline: "6 dias úteis"},
	}
}

// Quote is the result of a successful shipping calculation.
type Quote struct {
	Address *Address `json:"endereco"`
	Options []Option `json:"opcoes"`
}

// Quoter validates the CEP, resolves the address and attaches the
// simulated options.
type Quoter struct {
	lookup AddressLookup
}

func NewQuoter(lookup AddressLookup) *Quoter {
	return &Quoter{lookup: lookup}
}

// GetQuote rejects malformed CEPs without touching the lookup service.
func (q *Quoter) GetQuote(ctx context.Context, rawCEP string) (*Quote, error) {
	cep, err := NormalizeCEP(rawCEP)
	if err != nil {
		return nil, err
	}

	address, err := q.lookup.Lookup(ctx, cep)
	if err != nil {
		return nil, err
	}

	return &Quote{Address: address, Options: Options()}, nil
}
