package models

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pendente"
	OrderStatusProcessing OrderStatus = "processando"
	OrderStatusShipped    OrderStatus = "enviado"
	OrderStatusDelivered  OrderStatus = "entregue"
	OrderStatusCanceled   OrderStatus = "cancelado"
)

// Valid reports whether s is one of the known order statuses. Transitions
// between statuses are not restricted, only the value itself is checked.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCanceled:
		return true
	}
	return false
}

type Order struct {
	ID     uint        `gorm:"primaryKey" json:"id"`
	UserID uint        `gorm:"column:usuario_id;not null;index" json:"usuario_id"`
	Status OrderStatus `gorm:"size:20;not null;default:'processando'" json:"status"`

	// Valores; total sempre igual a subtotal + valor_frete
	Subtotal      float64 `gorm:"not null" json:"subtotal"`
	ShippingValue float64 `gorm:"column:valor_frete;not null" json:"valor_frete"`
	Total         float64 `gorm:"not null" json:"total"`

	PaymentMethod *string `gorm:"column:metodo_pagamento;size:20" json:"metodo_pagamento"`

	// Endereco de entrega resolvido via CEP no checkout
	AddressCEP      string `gorm:"column:endereco_cep;size:9" json:"endereco_cep"`
	AddressStreet   string `gorm:"column:endereco_logradouro;size:255" json:"endereco_logradouro"`
	AddressDistrict string `gorm:"column:endereco_bairro;size:100" json:"endereco_bairro"`
	AddressCity     string `gorm:"column:endereco_cidade;size:100" json:"endereco_cidade"`
	AddressUF       string `gorm:"column:endereco_uf;size:2" json:"endereco_uf"`

	// Opcao de frete escolhida
	Carrier  string `gorm:"column:frete_transportadora;size:50" json:"frete_transportadora"`
	Deadline string `gorm:"column:frete_prazo;size:30" json:"frete_prazo"`

	CreatedAt time.Time `gorm:"column:data_pedido" json:"data_pedido"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Order) TableName() string {
	return "pedidos"
}
