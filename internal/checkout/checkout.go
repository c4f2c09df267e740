// Package checkout runs the purchase sequence: cart totals, simulated
// payment, order creation, cart clear. Persistence and the payment
// gateway come in as ports so the flow is testable without real
// storage or real delays.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Devjv2007/ecommerce-apple/internal/cart"
	"github.com/Devjv2007/ecommerce-apple/internal/payment"
	"github.com/Devjv2007/ecommerce-apple/internal/shipping"
	"github.com/Devjv2007/ecommerce-apple/models"
)

var ErrEmptyCart = errors.New("carrinho vazio")

// OrderStore persists the order produced by a confirmed checkout.
type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
}

type Service struct {
	carts    cart.Store
	payments *payment.Simulator
	orders   OrderStore
}

func NewService(carts cart.Store, payments *payment.Simulator, orders OrderStore) *Service {
	return &Service{carts: carts, payments: payments, orders: orders}
}

// Request carries everything the buyer chose at checkout.
type Request struct {
	UserID  uint
	Method  payment.Method
	Card    *payment.CardDetails
	Address shipping.Address
	Option  shipping.Option
}

// Confirm charges the simulated gateway and, on success, creates the
// order and clears the cart. Canceling ctx while the payment is
// pending aborts the whole flow: no order is created and the cart is
// left untouched.
func (s *Service) Confirm(ctx context.Context, req Request) (*models.Order, error) {
	userCart, err := cart.Load(ctx, s.carts, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if userCart.TotalItems() == 0 {
		return nil, ErrEmptyCart
	}

	subtotal := userCart.TotalPrice()
	total := subtotal + req.Option.Value

	tx, err := s.payments.Start(req.Method, req.Card)
	if err != nil {
		return nil, err
	}

	select {
	case <-ctx.Done():
		tx.Cancel()
		return nil, ctx.Err()
	case <-tx.Done():
	}

	method := string(req.Method)
	order := &models.Order{
		UserID:          req.UserID,
		Status:          models.OrderStatusProcessing,
		Subtotal:        subtotal,
		ShippingValue:   req.Option.Value,
		Total:           total,
		PaymentMethod:   &method,
		AddressCEP:      req.Address.CEP,
		AddressStreet:   req.Address.Street,
		AddressDistrict: req.Address.District,
		AddressCity:     req.Address.City,
		AddressUF:       req.Address.UF,
		Carrier:         req.Option.Carrier,
		Deadline:        req.Option.Deadline,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	// Clearing the cart is best effort once the order exists; a stale
	// cart is recoverable, a lost order is not.
	if err := userCart.Clear(ctx); err != nil {
		log.Printf("Failed to clear cart for user %d after order %d: %v", req.UserID, order.ID, err)
	}

	return order, nil
}
