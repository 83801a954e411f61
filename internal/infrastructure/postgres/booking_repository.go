package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/reservas-api/internal/domain/entity"
	"github.com/jhoicas/reservas-api/internal/domain/repository"
)

var _ repository.BookingRepository = (*BookingRepo)(nil)

// BookingRepo implementación del puerto BookingRepository sobre PostgreSQL.
type BookingRepo struct {
	db querier
}

// NewBookingRepository construye el adaptador de persistencia para reservas.
// Acepta tanto el pool como una transacción.
func NewBookingRepository(db querier) *BookingRepo {
	return &BookingRepo{db: db}
}

// Las lecturas traen el resumen de la empresa en el mismo query (join),
// equivalente al populate del sistema de origen.
const bookingSelect = `
	SELECT b.id, b.company_id, b.user_id, b.appt_date, b.created_at, b.updated_at,
	       c.id, c.name, c.address, c.province, c.website, c.description, c.tel
	FROM bookings b
	JOIN companies c ON c.id = b.company_id`

// Create persiste una nueva reserva.
func (r *BookingRepo) Create(booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, company_id, user_id, appt_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(context.Background(), query,
		booking.ID, booking.CompanyID, booking.UserID, booking.ApptDate,
		booking.CreatedAt, booking.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

// GetByID obtiene una reserva por ID con su empresa poblada.
func (r *BookingRepo) GetByID(id string) (*entity.Booking, error) {
	row := r.db.QueryRow(context.Background(), bookingSelect+` WHERE b.id = $1`, id)
	b, err := scanBooking(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

// Update actualiza la fecha de una reserva existente.
func (r *BookingRepo) Update(booking *entity.Booking) error {
	query := `UPDATE bookings SET appt_date = $2, updated_at = $3 WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		booking.ID, booking.ApptDate, booking.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}
	return nil
}

// Delete elimina una reserva por ID.
func (r *BookingRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	return nil
}

// ListAll devuelve todas las reservas (vista admin).
func (r *BookingRepo) ListAll() ([]*entity.Booking, error) {
	return r.list(bookingSelect + ` ORDER BY b.created_at DESC`)
}

// ListByUser devuelve las reservas de un usuario.
func (r *BookingRepo) ListByUser(userID string) ([]*entity.Booking, error) {
	return r.list(bookingSelect+` WHERE b.user_id = $1 ORDER BY b.created_at DESC`, userID)
}

// ListByCompany devuelve las reservas contra una empresa.
func (r *BookingRepo) ListByCompany(companyID string) ([]*entity.Booking, error) {
	return r.list(bookingSelect+` WHERE b.company_id = $1 ORDER BY b.created_at DESC`, companyID)
}

// CountByUser cuenta las reservas existentes de un usuario (cupo por usuario).
func (r *BookingRepo) CountByUser(userID string) (int, error) {
	return r.count(`SELECT count(*) FROM bookings WHERE user_id = $1`, userID)
}

// CountByCompany cuenta las reservas existentes contra una empresa (cupo por empresa).
func (r *BookingRepo) CountByCompany(companyID string) (int, error) {
	return r.count(`SELECT count(*) FROM bookings WHERE company_id = $1`, companyID)
}

// DeleteByCompany elimina todas las reservas de una empresa (cascade desde
// CompanyUseCase.Delete, dentro de su transacción).
func (r *BookingRepo) DeleteByCompany(companyID string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM bookings WHERE company_id = $1`, companyID)
	if err != nil {
		return fmt.Errorf("delete bookings by company: %w", err)
	}
	return nil
}

func (r *BookingRepo) list(query string, args ...any) ([]*entity.Booking, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var list []*entity.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r *BookingRepo) count(query string, args ...any) (int, error) {
	var total int
	if err := r.db.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return total, nil
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	var c entity.Company
	err := row.Scan(
		&b.ID, &b.CompanyID, &b.UserID, &b.ApptDate, &b.CreatedAt, &b.UpdatedAt,
		&c.ID, &c.Name, &c.Address, &c.Province, &c.Website, &c.Description, &c.Tel,
	)
	if err != nil {
		return nil, err
	}
	b.Company = &c
	return &b, nil
}
