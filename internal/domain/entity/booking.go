package entity

import "time"

// Booking representa una reserva/cita de un usuario contra una empresa.
// UserID siempre proviene de la identidad del llamador, no del cliente.
type Booking struct {
	ID        string
	CompanyID string
	UserID    string
	ApptDate  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	// Company resumen de la empresa asociada, poblado en lecturas (join).
	Company *Company
}
