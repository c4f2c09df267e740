// Package payment simulates the payment gateway. Every transaction that
// runs to completion succeeds: there is no authorization, no failure
// path, only a fixed delay per method. A transaction can be canceled
// while the delay is pending, in which case it never completes.
package payment

import (
	"errors"
	"sync"
	"time"
)

type Method string

const (
	MethodCredit Method = "credit"
	MethodDebit  Method = "debit"
	MethodPix    Method = "pix"
)

func (m Method) Valid() bool {
	return m == MethodCredit || m == MethodDebit || m == MethodPix
}

// IsCard reports whether the method needs card details.
func (m Method) IsCard() bool {
	return m == MethodCredit || m == MethodDebit
}

type Status string

const (
	StatusIdle       Status = "idle"
	StatusProcessing Status = "processing"
	StatusSucceeded  Status = "succeeded"
)

var (
	ErrInvalidMethod = errors.New("método de pagamento inválido")
	ErrCardRequired  = errors.New("dados do cartão são obrigatórios")
)

const (
	// Delays mirror the storefront modal: cards confirm in 2.5s,
	// pix waits for the "transfer" for 5s.
	DefaultCardDelay = 2500 * time.Millisecond
	DefaultPixDelay  = 5 * time.Second
)

// Simulator creates transactions with the configured delays.
type Simulator struct {
	cardDelay time.Duration
	pixDelay  time.Duration
}

type SimulatorOption func(*Simulator)

// WithDelays overrides the processing delays, mainly for tests.
func WithDelays(card, pix time.Duration) SimulatorOption {
	return func(s *Simulator) {
		s.cardDelay = card
		s.pixDelay = pix
	}
}

func NewSimulator(opts ...SimulatorOption) *Simulator {
	s := &Simulator{
		cardDelay: DefaultCardDelay,
		pixDelay:  DefaultPixDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Transaction walks idle -> processing -> succeeded. Cancel while
// processing returns it to idle and Done never fires.
type Transaction struct {
	mu     sync.Mutex
	status Status
	method Method
	timer  *time.Timer
	done   chan struct{}
}

// Start validates the input, moves the transaction to processing and
// arms the timer that will complete it.
func (s *Simulator) Start(method Method, card *CardDetails) (*Transaction, error) {
	if !method.Valid() {
		return nil, ErrInvalidMethod
	}
	if method.IsCard() {
		if card == nil {
			return nil, ErrCardRequired
		}
		// Accept raw digit input the way the storefront form does:
		// format first, then validate the formatted value.
		card.Number = FormatCardNumber(card.Number)
		card.Expiry = FormatExpiry(card.Expiry)
		if err := card.Validate(); err != nil {
			return nil, err
		}
	}

	delay := s.cardDelay
	if method == MethodPix {
		delay = s.pixDelay
	}

	t := &Transaction{
		status: StatusProcessing,
		method: method,
		done:   make(chan struct{}),
	}
	t.timer = time.AfterFunc(delay, t.complete)
	return t, nil
}

func (t *Transaction) complete() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.status != StatusProcessing {
		return
	}
	t.status = StatusSucceeded
	close(t.done)
}

func (t *Transaction) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

func (t *Transaction) Method() Method {
	return t.method
}

// Done is closed when the simulated processing succeeds. It never
// closes for a canceled transaction.
func (t *Transaction) Done() <-chan struct{} {
	return t.done
}

// Cancel aborts a pending transaction. It reports whether the
// cancellation happened before the timer fired.
func (t *Transaction) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.status != StatusProcessing {
		return false
	}
	if !t.timer.Stop() {
		// Timer already fired; complete() holds or will take the lock
		return false
	}
	t.status = StatusIdle
	return true
}
