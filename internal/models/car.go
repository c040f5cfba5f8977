package models

import "time"

type Car struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Placa sempre armazenada em maiúsculas
	Plate string `gorm:"size:10;uniqueIndex;not null" json:"plate"`

	Make  string `gorm:"size:50" json:"make"`
	Model string `gorm:"size:50" json:"model"`
	Year  int    `json:"year"`
	Color string `gorm:"size:30" json:"color"`

	ClientID *uint   `json:"client_id"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
