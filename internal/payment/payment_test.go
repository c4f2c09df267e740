package payment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCard() *CardDetails {
	return &CardDetails{
		Number: "4111 1111 1111 1111",
		Name:   "JOSE DA SILVA",
		Expiry: "12/28",
		CVV:    "123",
	}
}

func TestCardPaymentSucceedsOnlyAfterDelay(t *testing.T) {
	sim := NewSimulator(WithDelays(80*time.Millisecond, 80*time.Millisecond))

	tx, err := sim.Start(MethodCredit, validCard())
	require.NoError(t, err)
	assert.Equal(t, StatusProcessing, tx.Status())

	// Must not complete before the delay elapses
	select {
	case <-tx.Done():
		t.Fatal("transaction completed before the simulated delay")
	case <-time.After(20 * time.Millisecond):
	}
	assert.Equal(t, StatusProcessing, tx.Status())

	select {
	case <-tx.Done():
	case <-time.After(time.Second):
		t.Fatal("transaction never completed")
	}
	assert.Equal(t, StatusSucceeded, tx.Status())
}

func TestPixPaymentSucceeds(t *testing.T) {
	sim := NewSimulator(WithDelays(10*time.Millisecond, 30*time.Millisecond))

	// Pix needs no card details
	tx, err := sim.Start(MethodPix, nil)
	require.NoError(t, err)

	select {
	case <-tx.Done():
	case <-time.After(time.Second):
		t.Fatal("pix transaction never completed")
	}
	assert.Equal(t, StatusSucceeded, tx.Status())
}

func TestCancelBeforeDelayAbortsTransaction(t *testing.T) {
	sim := NewSimulator(WithDelays(100*time.Millisecond, 100*time.Millisecond))

	tx, err := sim.Start(MethodDebit, validCard())
	require.NoError(t, err)

	assert.True(t, tx.Cancel())
	assert.Equal(t, StatusIdle, tx.Status())

	// Done must never fire for a canceled transaction
	select {
	case <-tx.Done():
		t.Fatal("canceled transaction completed")
	case <-time.After(150 * time.Millisecond):
	}
	assert.Equal(t, StatusIdle, tx.Status())
}

func TestCancelAfterCompletionIsNoop(t *testing.T) {
	sim := NewSimulator(WithDelays(5*time.Millisecond, 5*time.Millisecond))

	tx, err := sim.Start(MethodCredit, validCard())
	require.NoError(t, err)
	<-tx.Done()

	assert.False(t, tx.Cancel())
	assert.Equal(t, StatusSucceeded, tx.Status())
}

func TestStartValidation(t *testing.T) {
	sim := NewSimulator(WithDelays(time.Millisecond, time.Millisecond))

	tests := []struct {
		name    string
		method  Method
		card    *CardDetails
		wantErr error
	}{
		{name: "unknown method", method: Method("boleto"), wantErr: ErrInvalidMethod},
		{name: "card method without card", method: MethodCredit, wantErr: ErrCardRequired},
		{
			name:    "short card number",
			method:  MethodCredit,
			card:    &CardDetails{Number: "4111 1111", Name: "JOSE DA SILVA", Expiry: "12/28", CVV: "123"},
			wantErr: ErrInvalidCardNumber,
		},
		{
			name:    "short holder name",
			method:  MethodDebit,
			card:    &CardDetails{Number: "4111 1111 1111 1111", Name: "JS", Expiry: "12/28", CVV: "123"},
			wantErr: ErrInvalidCardName,
		},
		{
			name:    "bad expiry",
			method:  MethodCredit,
			card:    &CardDetails{Number: "4111 1111 1111 1111", Name: "JOSE DA SILVA", Expiry: "13/28", CVV: "123"},
			wantErr: ErrInvalidExpiry,
		},
		{
			name:    "short cvv",
			method:  MethodCredit,
			card:    &CardDetails{Number: "4111 1111 1111 1111", Name: "JOSE DA SILVA", Expiry: "12/28", CVV: "12"},
			wantErr: ErrInvalidCVV,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sim.Start(tt.method, tt.card)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStartFormatsRawCardInput(t *testing.T) {
	sim := NewSimulator(WithDelays(time.Millisecond, time.Millisecond))

	card := &CardDetails{Number: "4111111111111111", Name: "JOSE DA SILVA", Expiry: "1228", CVV: "123"}
	tx, err := sim.Start(MethodCredit, card)
	require.NoError(t, err)
	require.NotNil(t, tx)

	// Raw digits are formatted in place before validation
	assert.Equal(t, "4111 1111 1111 1111", card.Number)
	assert.Equal(t, "12/28", card.Expiry)
}

func TestFormatCardNumber(t *testing.T) {
	assert.Equal(t, "4111 1111 1111 1111", FormatCardNumber("4111111111111111"))
	assert.Equal(t, "4111 1111 1111 1111", FormatCardNumber("4111-1111-1111-1111-99"))
	assert.Equal(t, "4111 11", FormatCardNumber("411111"))
	assert.Equal(t, "", FormatCardNumber("abc"))
}

func TestFormatExpiry(t *testing.T) {
	assert.Equal(t, "12/28", FormatExpiry("1228"))
	assert.Equal(t, "12/28", FormatExpiry("12/28"))
	assert.Equal(t, "12", FormatExpiry("12"))
	assert.Equal(t, "12/34", FormatExpiry("123456"))
}

func TestDetectBrand(t *testing.T) {
	assert.Equal(t, "Visa", DetectBrand("4111 1111 1111 1111"))
	assert.Equal(t, "Mastercard", DetectBrand("5500 0000 0000 0004"))
	assert.Equal(t, "American Express", DetectBrand("3400 000000 00009"))
	assert.Equal(t, "Cartão", DetectBrand("6011 0000 0000 0004"))
}
