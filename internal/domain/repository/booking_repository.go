package repository

import "github.com/jhoicas/reservas-api/internal/domain/entity"

// BookingRepository define el puerto de persistencia para Booking.
// Las lecturas pueblan el resumen de Company (join); los conteos alimentan
// la verificación de cupos del motor de reservas.
type BookingRepository interface {
	Create(booking *entity.Booking) error
	GetByID(id string) (*entity.Booking, error)
	Update(booking *entity.Booking) error
	Delete(id string) error

	ListAll() ([]*entity.Booking, error)
	ListByUser(userID string) ([]*entity.Booking, error)
	ListByCompany(companyID string) ([]*entity.Booking, error)

	CountByUser(userID string) (int, error)
	CountByCompany(companyID string) (int, error)

	// DeleteByCompany elimina todas las reservas de una empresa (cascade).
	DeleteByCompany(companyID string) error
}
