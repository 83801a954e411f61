package dto

import "time"

// CreateBookingRequest datos para crear una reserva. UserID se acepta en el
// body por compatibilidad pero SIEMPRE se sobreescribe con la identidad del
// token; el cliente no puede reservar a nombre de otro usuario.
type CreateBookingRequest struct {
	ApptDate string `json:"appt_date"` // RFC3339 o YYYY-MM-DD
	UserID   string `json:"user_id"`
}

// UpdateBookingRequest patch de una reserva: solo la fecha es mutable.
// Repuntar company/user de una reserva existente no está permitido.
type UpdateBookingRequest struct {
	ApptDate *string `json:"appt_date"`
}

// CompanySummary resumen de empresa embebido en la respuesta de reservas.
type CompanySummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Province    string `json:"province"`
	Website     string `json:"website"`
	Description string `json:"description"`
	Tel         string `json:"tel,omitempty"`
}

// BookingResponse representación HTTP de una reserva.
type BookingResponse struct {
	ID        string          `json:"id"`
	CompanyID string          `json:"company_id"`
	UserID    string          `json:"user_id"`
	ApptDate  time.Time       `json:"appt_date"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Company   *CompanySummary `json:"company,omitempty"`
}
