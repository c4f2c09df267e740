package models

import (
	"time"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Informacoes de login
	Name         string `gorm:"column:nome;not null;size:100" json:"nome"`
	Email        string `gorm:"unique;not null;size:100" json:"email"`
	PasswordHash string `gorm:"column:senha_hash;not null" json:"-"`

	CreatedAt time.Time `gorm:"column:data_criacao" json:"data_criacao"`
}

func (User) TableName() string {
	return "usuarios"
}

// PublicUser is the projection returned by the user listing endpoints,
// everything except the password hash.
type PublicUser struct {
	ID        uint      `json:"id"`
	Name      string    `json:"nome"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"data_criacao"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
