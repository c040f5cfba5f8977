package dto

import "time"

// Linha da tela de lista: agendamento com os dados do carro já
// desnormalizados para renderização.
type AppointmentListDTO struct {
	ID           uint       `json:"id"`
	CustomerName string     `json:"customer_name"`
	ServiceType  string     `json:"service_type"`
	ScheduledAt  time.Time  `json:"scheduled_at"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	DoneAt       *time.Time `json:"done_at,omitempty"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`

	CarID    uint   `json:"car_id"`
	Plate    string `json:"plate"`
	CarMake  string `json:"car_make"`
	CarModel string `json:"car_model"`
	CarYear  int    `json:"car_year"`
}
