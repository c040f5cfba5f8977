package models

import "time"

// Cliente do lava rápido, sem login
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`

	CEP          string `gorm:"size:8" json:"cep"`
	Street       string `gorm:"size:120" json:"street"`
	Number       string `gorm:"size:20" json:"number"`
	Complement   string `gorm:"size:60" json:"complement"`
	Neighborhood string `gorm:"size:60" json:"neighborhood"`
	City         string `gorm:"size:60" json:"city"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
