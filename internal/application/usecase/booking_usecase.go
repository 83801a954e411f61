package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/reservas-api/internal/application/dto"
	"github.com/jhoicas/reservas-api/internal/domain"
	"github.com/jhoicas/reservas-api/internal/domain/entity"
	"github.com/jhoicas/reservas-api/internal/domain/repository"
)

// BookingPolicy regla de negocio configurable del motor de reservas:
// ventana de fechas válidas y cupos por usuario y por empresa.
type BookingPolicy struct {
	WindowStart   time.Time // inclusivo
	WindowEnd     time.Time // exclusivo
	MaxPerUser    int
	MaxPerCompany int
}

// InWindow informa si t cae dentro de la ventana [WindowStart, WindowEnd).
func (p BookingPolicy) InWindow(t time.Time) bool {
	return !t.Before(p.WindowStart) && t.Before(p.WindowEnd)
}

// Formatos aceptados para appt_date.
var apptDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseApptDate parsea la fecha de cita. Una fecha ausente o no parseable se
// trata como fuera de la ventana.
func parseApptDate(s string) (time.Time, error) {
	for _, layout := range apptDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, domain.ErrInvalidDate
}

// BookingUseCase motor de autorización y cupos de reservas: decide si un
// create/update/delete es permitido y válido antes de tocar la persistencia.
type BookingUseCase struct {
	bookings  repository.BookingRepository
	companies repository.CompanyRepository
	policy    BookingPolicy
}

// NewBookingUseCase construye el caso de uso con sus puertos y la política.
func NewBookingUseCase(bookings repository.BookingRepository, companies repository.CompanyRepository, policy BookingPolicy) *BookingUseCase {
	return &BookingUseCase{bookings: bookings, companies: companies, policy: policy}
}

// Create crea una reserva contra la empresa companyID. Orden de verificación:
// existencia de la empresa, ventana de fecha, cupo por empresa, cupo por
// usuario. El usuario de la reserva siempre es el del token; los admin no
// están sujetos a cupos.
//
// Los conteos de cupo se leen sin aislamiento transaccional: dos creaciones
// concurrentes al borde del cupo pueden excederlo transitoriamente. Es el
// comportamiento aceptado del sistema.
func (uc *BookingUseCase) Create(companyID string, ident domain.Identity, in dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	company, err := uc.companies.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}

	apptDate, err := parseApptDate(in.ApptDate)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	if !uc.policy.InWindow(apptDate) {
		return nil, domain.ErrInvalidDate
	}

	if !ident.IsAdmin() {
		byCompany, err := uc.bookings.CountByCompany(companyID)
		if err != nil {
			return nil, err
		}
		if byCompany >= uc.policy.MaxPerCompany {
			return nil, domain.ErrCompanyQuotaExceeded
		}
		byUser, err := uc.bookings.CountByUser(ident.UserID)
		if err != nil {
			return nil, err
		}
		if byUser >= uc.policy.MaxPerUser {
			return nil, domain.ErrUserQuotaExceeded
		}
	}

	now := time.Now()
	booking := &entity.Booking{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		UserID:    ident.UserID, // nunca el user_id del body
		ApptDate:  apptDate,
		CreatedAt: now,
		UpdatedAt: now,
		Company:   company,
	}
	if err := uc.bookings.Create(booking); err != nil {
		return nil, err
	}
	return toBookingResponse(booking), nil
}

// Update modifica la fecha de una reserva. Solo el dueño o un admin pueden
// mutarla; la nueva fecha pasa por la misma ventana que en la creación.
func (uc *BookingUseCase) Update(bookingID string, ident domain.Identity, in dto.UpdateBookingRequest) (*dto.BookingResponse, error) {
	booking, err := uc.bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, domain.ErrNotFound
	}
	if !ident.CanMutate(booking.UserID) {
		return nil, domain.ErrUnauthorized
	}

	if in.ApptDate != nil {
		apptDate, err := parseApptDate(*in.ApptDate)
		if err != nil {
			return nil, domain.ErrInvalidDate
		}
		if !uc.policy.InWindow(apptDate) {
			return nil, domain.ErrInvalidDate
		}
		booking.ApptDate = apptDate
	}

	booking.UpdatedAt = time.Now()
	if err := uc.bookings.Update(booking); err != nil {
		return nil, err
	}
	return toBookingResponse(booking), nil
}

// Delete elimina una reserva. Solo dueño o admin. La eliminación es de un
// único registro, sin cascada.
func (uc *BookingUseCase) Delete(bookingID string, ident domain.Identity) error {
	booking, err := uc.bookings.GetByID(bookingID)
	if err != nil {
		return err
	}
	if booking == nil {
		return domain.ErrNotFound
	}
	if !ident.CanMutate(booking.UserID) {
		return domain.ErrUnauthorized
	}
	return uc.bookings.Delete(bookingID)
}

// GetByID obtiene una reserva con el resumen de su empresa.
func (uc *BookingUseCase) GetByID(bookingID string) (*dto.BookingResponse, error) {
	booking, err := uc.bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, domain.ErrNotFound
	}
	return toBookingResponse(booking), nil
}

// List lista reservas según el rol: un usuario normal solo ve las propias
// (el filtro de empresa se ignora); un admin ve todas o las de una empresa.
func (uc *BookingUseCase) List(ident domain.Identity, companyID string) ([]dto.BookingResponse, error) {
	var (
		list []*entity.Booking
		err  error
	)
	switch {
	case !ident.IsAdmin():
		list, err = uc.bookings.ListByUser(ident.UserID)
	case companyID != "":
		list, err = uc.bookings.ListByCompany(companyID)
	default:
		list, err = uc.bookings.ListAll()
	}
	if err != nil {
		return nil, err
	}

	items := make([]dto.BookingResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBookingResponse(b))
	}
	return items, nil
}

func toBookingResponse(b *entity.Booking) *dto.BookingResponse {
	if b == nil {
		return nil
	}
	resp := &dto.BookingResponse{
		ID:        b.ID,
		CompanyID: b.CompanyID,
		UserID:    b.UserID,
		ApptDate:  b.ApptDate,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
	if b.Company != nil {
		resp.Company = &dto.CompanySummary{
			ID:          b.Company.ID,
			Name:        b.Company.Name,
			Address:     b.Company.Address,
			Province:    b.Company.Province,
			Website:     b.Company.Website,
			Description: b.Company.Description,
			Tel:         b.Company.Tel,
		}
	}
	return resp
}
