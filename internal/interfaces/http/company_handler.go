package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/reservas-api/internal/application/dto"
	"github.com/jhoicas/reservas-api/internal/application/usecase"
	"github.com/jhoicas/reservas-api/internal/domain"
	"github.com/jhoicas/reservas-api/internal/domain/entity"
	"github.com/rs/zerolog/log"
)

// CompanyHandler maneja las peticiones HTTP para el recurso Company.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// fail500 registra el error real del almacén y responde un mensaje genérico;
// el detalle interno nunca viaja al cliente.
func fail500(c *fiber.Ctx, op string, err error) error {
	log.Error().Err(err).Str("op", op).Msg("error inesperado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("error interno del servidor"))
}

// validateCompanyFields valida presencia y límites de los campos requeridos.
// Devuelve un mensaje de error o "" si todo está bien.
func validateCompanyFields(in dto.CreateCompanyRequest) string {
	switch {
	case in.Name == "":
		return "name es requerido"
	case len(in.Name) > entity.CompanyNameMaxLen:
		return "name no puede superar 50 caracteres"
	case in.Address == "":
		return "address es requerido"
	case in.District == "":
		return "district es requerido"
	case in.Province == "":
		return "province es requerido"
	case in.PostalCode == "":
		return "postal_code es requerido"
	case len(in.PostalCode) > entity.CompanyPostalCodeMaxLen:
		return "postal_code no puede superar 5 caracteres"
	case in.Region == "":
		return "region es requerido"
	case in.Website == "":
		return "website es requerido"
	case in.Description == "":
		return "description es requerido"
	}
	return ""
}

// List godoc
// @Summary      Listar empresas
// @Tags         companies
// @Produce      json
// @Param        page      query  int     false  "Página"  default(1)
// @Param        limit     query  int     false  "Límite"  default(25)
// @Param        sort      query  string  false  "created_at | name, prefijo - para desc"
// @Param        name      query  string  false  "Filtro por nombre (parcial)"
// @Param        province  query  string  false  "Filtro por provincia"
// @Param        region    query  string  false  "Filtro por región"
// @Param        district  query  string  false  "Filtro por distrito"
// @Success      200  {object}  dto.Response
// @Router       /api/v1/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	var in dto.ListCompaniesRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("parámetros de listado inválidos"))
	}
	items, count, pagination, err := h.uc.List(in)
	if err != nil {
		return fail500(c, "list companies", err)
	}
	return c.JSON(dto.OKList(items, count, pagination))
}

// GetByID godoc
// @Summary      Obtener empresa por ID
// @Tags         companies
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/v1/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("no existe una empresa con el id " + id))
		}
		return fail500(c, "get company", err)
	}
	return c.JSON(dto.OK(out))
}

// Create godoc
// @Summary      Crear empresa (solo admin)
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Datos de la empresa"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Router       /api/v1/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if msg := validateCompanyFields(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(msg))
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("ya existe una empresa con el nombre " + in.Name))
		}
		return fail500(c, "create company", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// Update godoc
// @Summary      Actualizar empresa (solo admin)
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la empresa"
// @Param        body  body  dto.UpdateCompanyRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/v1/companies/{id} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("no existe una empresa con el id " + id))
		case domain.ErrDuplicate:
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("ya existe una empresa con ese nombre"))
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("campos inválidos en el patch"))
		default:
			return fail500(c, "update company", err)
		}
	}
	return c.JSON(dto.OK(out))
}

// Delete godoc
// @Summary      Eliminar empresa y sus reservas (solo admin)
// @Tags         companies
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/v1/companies/{id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("no existe una empresa con el id " + id))
		}
		return fail500(c, "delete company", err)
	}
	return c.JSON(dto.OK(struct{}{}))
}
