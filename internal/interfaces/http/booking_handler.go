package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/reservas-api/internal/application/dto"
	"github.com/jhoicas/reservas-api/internal/application/usecase"
	"github.com/jhoicas/reservas-api/internal/domain"
)

// BookingHandler maneja las peticiones HTTP para el recurso Booking.
type BookingHandler struct {
	uc *usecase.BookingUseCase
}

// NewBookingHandler construye el handler inyectando el motor de reservas.
func NewBookingHandler(uc *usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{uc: uc}
}

// bookingError mapea los rechazos del motor a su status HTTP. Cada modo de
// fallo llega como sentinel distinto, por eso el switch es exhaustivo.
func bookingError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrCompanyNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("no existe una empresa con el id " + c.Params("companyId")))
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("no existe una reserva con el id " + c.Params("id")))
	case domain.ErrInvalidDate:
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("la fecha de la cita está fuera de la ventana de reservas"))
	case domain.ErrCompanyQuotaExceeded:
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("la empresa ya alcanzó su cupo máximo de reservas"))
	case domain.ErrUserQuotaExceeded:
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("el usuario ya alcanzó su cupo máximo de reservas"))
	case domain.ErrUnauthorized:
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("el usuario no está autorizado para modificar esta reserva"))
	default:
		return fail500(c, "booking", err)
	}
}

// List godoc
// @Summary      Listar reservas (propias para user, todas para admin)
// @Tags         bookings
// @Produce      json
// @Param        company_id  query  string  false  "Solo admin: filtrar por empresa"
// @Success      200  {object}  dto.Response
// @Security     BearerAuth
// @Router       /api/v1/bookings [get]
func (h *BookingHandler) List(c *fiber.Ctx) error {
	// El filtro de empresa llega por la ruta anidada o por query; para un
	// usuario normal el motor lo ignora.
	companyID := c.Params("companyId")
	if companyID == "" {
		companyID = c.Query("company_id")
	}
	items, err := h.uc.List(GetIdentity(c), companyID)
	if err != nil {
		return fail500(c, "list bookings", err)
	}
	count := len(items)
	return c.JSON(dto.OKList(items, count, nil))
}

// GetByID godoc
// @Summary      Obtener reserva por ID
// @Tags         bookings
// @Produce      json
// @Param        id   path  string  true  "ID de la reserva"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/v1/bookings/{id} [get]
func (h *BookingHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Create godoc
// @Summary      Crear reserva contra una empresa
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        companyId  path  string                    true  "ID de la empresa"
// @Param        body       body  dto.CreateBookingRequest  true  "appt_date"
// @Success      201  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Security     BearerAuth
// @Router       /api/v1/companies/{companyId}/bookings [post]
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBookingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	out, err := h.uc.Create(c.Params("companyId"), GetIdentity(c), in)
	if err != nil {
		return bookingError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// Update godoc
// @Summary      Actualizar la fecha de una reserva (dueño o admin)
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la reserva"
// @Param        body  body  dto.UpdateBookingRequest  true  "appt_date"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Failure      401  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Security     BearerAuth
// @Router       /api/v1/bookings/{id} [put]
func (h *BookingHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBookingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	out, err := h.uc.Update(c.Params("id"), GetIdentity(c), in)
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Delete godoc
// @Summary      Eliminar una reserva (dueño o admin)
// @Tags         bookings
// @Produce      json
// @Param        id   path  string  true  "ID de la reserva"
// @Success      200  {object}  dto.Response
// @Failure      401  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Security     BearerAuth
// @Router       /api/v1/bookings/{id} [delete]
func (h *BookingHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id"), GetIdentity(c)); err != nil {
		return bookingError(c, err)
	}
	return c.JSON(dto.OK(struct{}{}))
}
