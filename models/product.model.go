package models

import (
	"time"
)

type Product struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"column:nome;size:255;not null" json:"nome"`
	Description string  `gorm:"column:descricao;type:text" json:"descricao"`
	Price       float64 `gorm:"column:preco;not null" json:"preco"`

	// Primary image is required, the other four slots are optional
	ImageURL string  `gorm:"column:imagem_url" json:"imagem_url"`
	Image2   *string `gorm:"column:imagem_2" json:"imagem_2"`
	Image3   *string `gorm:"column:imagem_3" json:"imagem_3"`
	Image4   *string `gorm:"column:imagem_4" json:"imagem_4"`
	Image5   *string `gorm:"column:imagem_5" json:"imagem_5"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Product) TableName() string {
	return "produtos"
}
