package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CarID uint `gorm:"not null" json:"car_id"`
	Car   Car  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"car"`

	ClientID *uint   `json:"client_id"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`

	// Nome capturado no momento do agendamento, independente do cadastro
	CustomerName string `gorm:"size:100;not null" json:"customer_name"`

	ServiceType string    `gorm:"size:50;not null" json:"service_type"`
	ScheduledAt time.Time `gorm:"not null" json:"scheduled_at"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	DoneAt      *time.Time `json:"done_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
