package usecase_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reservas-api/internal/application/dto"
	"github.com/jhoicas/reservas-api/internal/application/usecase"
	"github.com/jhoicas/reservas-api/internal/domain"
	"github.com/jhoicas/reservas-api/internal/domain/entity"
	"github.com/jhoicas/reservas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type memCompanyRepo struct {
	companies map[string]*entity.Company
}

func newMemCompanyRepo() *memCompanyRepo {
	return &memCompanyRepo{companies: map[string]*entity.Company{}}
}

func (r *memCompanyRepo) Create(c *entity.Company) error {
	if existing, _ := r.GetByName(c.Name); existing != nil {
		return domain.ErrDuplicate
	}
	r.companies[c.ID] = c
	return nil
}

func (r *memCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.companies[id], nil
}

func (r *memCompanyRepo) GetByName(name string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memCompanyRepo) Update(c *entity.Company) error {
	r.companies[c.ID] = c
	return nil
}

func (r *memCompanyRepo) List(_ repository.CompanyFilter, _ repository.CompanyListParams) ([]*entity.Company, error) {
	var list []*entity.Company
	for _, c := range r.companies {
		list = append(list, c)
	}
	return list, nil
}

func (r *memCompanyRepo) Count(_ repository.CompanyFilter) (int, error) {
	return len(r.companies), nil
}

func (r *memCompanyRepo) Delete(id string) error {
	delete(r.companies, id)
	return nil
}

type memBookingRepo struct {
	bookings map[string]*entity.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bookings: map[string]*entity.Booking{}}
}

func (r *memBookingRepo) Create(b *entity.Booking) error {
	r.bookings[b.ID] = b
	return nil
}

func (r *memBookingRepo) GetByID(id string) (*entity.Booking, error) {
	return r.bookings[id], nil
}

func (r *memBookingRepo) Update(b *entity.Booking) error {
	r.bookings[b.ID] = b
	return nil
}

func (r *memBookingRepo) Delete(id string) error {
	delete(r.bookings, id)
	return nil
}

func (r *memBookingRepo) ListAll() ([]*entity.Booking, error) {
	var list []*entity.Booking
	for _, b := range r.bookings {
		list = append(list, b)
	}
	return list, nil
}

func (r *memBookingRepo) ListByUser(userID string) ([]*entity.Booking, error) {
	var list []*entity.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			list = append(list, b)
		}
	}
	return list, nil
}

func (r *memBookingRepo) ListByCompany(companyID string) ([]*entity.Booking, error) {
	var list []*entity.Booking
	for _, b := range r.bookings {
		if b.CompanyID == companyID {
			list = append(list, b)
		}
	}
	return list, nil
}

func (r *memBookingRepo) CountByUser(userID string) (int, error) {
	list, _ := r.ListByUser(userID)
	return len(list), nil
}

func (r *memBookingRepo) CountByCompany(companyID string) (int, error) {
	list, _ := r.ListByCompany(companyID)
	return len(list), nil
}

func (r *memBookingRepo) DeleteByCompany(companyID string) error {
	for id, b := range r.bookings {
		if b.CompanyID == companyID {
			delete(r.bookings, id)
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var (
	identUser  = domain.Identity{UserID: "user-1", Role: entity.RoleUser}
	identAdmin = domain.Identity{UserID: "admin-1", Role: entity.RoleAdmin}
	identOther = domain.Identity{UserID: "user-2", Role: entity.RoleUser}
)

// testPolicy ventana [2022-05-10, 2022-05-14), cupos 3/usuario y 10/empresa.
func testPolicy(t *testing.T) usecase.BookingPolicy {
	t.Helper()
	start, err := time.Parse("2006-01-02", "2022-05-10")
	require.NoError(t, err)
	end, err := time.Parse("2006-01-02", "2022-05-14")
	require.NoError(t, err)
	return usecase.BookingPolicy{
		WindowStart:   start,
		WindowEnd:     end,
		MaxPerUser:    3,
		MaxPerCompany: 10,
	}
}

func newEngine(t *testing.T) (*usecase.BookingUseCase, *memBookingRepo, *memCompanyRepo) {
	t.Helper()
	bookings := newMemBookingRepo()
	companies := newMemCompanyRepo()
	return usecase.NewBookingUseCase(bookings, companies, testPolicy(t)), bookings, companies
}

func seedCompany(t *testing.T, repo *memCompanyRepo, id, name string) {
	t.Helper()
	require.NoError(t, repo.Create(&entity.Company{
		ID: id, Name: name, Address: "Calle 1", District: "Centro",
		Province: "Provincia", PostalCode: "11111", Region: "Norte",
		Website: "https://example.com", Description: "empresa de prueba",
	}))
}

func seedBooking(t *testing.T, repo *memBookingRepo, id, companyID, userID string) {
	t.Helper()
	date, err := time.Parse("2006-01-02", "2022-05-11")
	require.NoError(t, err)
	require.NoError(t, repo.Create(&entity.Booking{
		ID: id, CompanyID: companyID, UserID: userID, ApptDate: date,
	}))
}

func apptOn(date string) dto.CreateBookingRequest {
	return dto.CreateBookingRequest{ApptDate: date}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_Exitosa(t *testing.T) {
	engine, _, companies := newEngine(t)
	seedCompany(t, companies, "co-1", "Empresa Uno")

	out, err := engine.Create("co-1", identUser, apptOn("2022-05-10"))
	require.NoError(t, err)
	assert.Equal(t, "co-1", out.CompanyID)
	assert.Equal(t, identUser.UserID, out.UserID)
	require.NotNil(t, out.Company, "la respuesta debe traer el resumen de la empresa")
	assert.Equal(t, "Empresa Uno", out.Company.Name)
}

// El user_id del body nunca prevalece sobre la identidad del token.
func TestCreate_IgnoraUserIDDelBody(t *testing.T) {
	engine, _, companies := newEngine(t)
	seedCompany(t, companies, "co-1", "Empresa Uno")

	in := dto.CreateBookingRequest{ApptDate: "2022-05-11", UserID: "atacante"}
	out, err := engine.Create("co-1", identUser, in)
	require.NoError(t, err)
	assert.Equal(t, identUser.UserID, out.UserID)
}

func TestCreate_EmpresaInexistente(t *testing.T) {
	engine, _, _ := newEngine(t)

	_, err := engine.Create("no-existe", identUser, apptOn("2022-05-10"))
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
}

// La existencia de la empresa se verifica ANTES que cualquier cupo: un
// usuario ya al tope recibe not-found, no quota-exceeded.
func TestCreate_EmpresaInexistenteAntesQueCupo(t *testing.T) {
	engine, bookings, companies := newEngine(t)
	seedCompany(t, companies, "co-1", "Empresa Uno")
	for i := 0; i < 3; i++ {
		seedBooking(t, bookings, fmt.Sprintf("bk-%d", i), "co-1", identUser.UserID)
	}

	_, err := engine.Create("no-existe", identUser, apptOn("2022-05-10"))
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
}

func TestCreate_VentanaDeFechas(t *testing.T) {
	cases := []struct {
		name     string
		apptDate string
		wantErr  bool
	}{
		{"límite inferior inclusivo", "2022-05-10", false},
		{"dentro de la ventana", "2022-05-12", false},
		{"último instante válido", "2022-05-13T23:59", false},
		{"límite superior exclusivo", "2022-05-14", true},
		{"un día antes", "2022-05-09", true},
		{"fecha vacía", "", true},
		{"fecha no parseable", "mañana", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			engine, _, companies := newEngine(t)
			seedCompany(t, companies, "co-1", "Empresa Uno")

			_, err := engine.Create("co-1", identUser, apptOn(tc.apptDate))
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidDate)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// Tras 3 reservas, la 4ta de un usuario normal falla sin importar la empresa.
func TestCreate_CupoPorUsuario(t *testing.T) {
	engine, _, companies := newEngine(t)
	seedCompany(t, companies, "co-1", "Empresa Uno")
	seedCompany(t, companies, "co-2", "Empresa Dos")

	for i := 0; i < 3; i++ {
		_, err := engine.Create("co-1", identUser, apptOn("2022-05-11"))
		require.NoError(t, err)
	}

	_, err := engine.Create("co-2", identUser, apptOn("2022-05-11"))
	assert.ErrorIs(t, err, domain.ErrUserQuotaExceeded,
		"el cupo por usuario aplica aunque la empresa destino sea otra")
}

// Tras 10 reservas contra una empresa, la 11ra de un no-admin falla; la de un
// admin pasa.
func TestCreate_CupoPorEmpresa(t *testing.T) {
	engine, bookings, companies := newEngine(t)
	seedCompany(t, companies, "co-1", "Empresa Uno")
	for i := 0; i < 10; i++ {
		seedBooking(t, bookings, fmt.Sprintf("bk-%d", i), "co-1", fmt.Sprintf("u-%d", i))
	}

	_, err := engine.Create("co-1", identUser, apptOn("2022-05-11"))
	assert.ErrorIs(t, err, domain.ErrCompanyQuotaExceeded)

	_, err = engine.Create("co-1", identAdmin, apptOn("2022-05-11"))
	assert.NoError(t, err, "el admin no está sujeto al cupo por empresa")
}

// Con ambos cupos al tope, el rechazo reporta el cupo por empresa (orden
// observado: empresa antes que usuario).
func TestCreate_CupoEmpresaAntesQueUsuario(t *testing.T) {
	engine, bookings, companies := newEngine(t)
	seedCompany(t, companies, "co-1", "Empresa Uno")
	for i := 0; i < 10; i++ {
		seedBooking(t, bookings, fmt.Sprintf("bk-%d", i), "co-1", identUser.UserID)
	}

	_, err := engine.Create("co-1", identUser, apptOn("2022-05-11"))
	assert.ErrorIs(t, err, domain.ErrCompanyQuotaExceeded)
}

func TestCreate_AdminSinCupos(t *testing.T) {
	engine, _, companies := newEngine(t)
	seedCompany(t, companies, "co-1", "Empresa Uno")

	for i := 0; i < 5; i++ {
		_, err := engine.Create("co-1", identAdmin, apptOn("2022-05-11"))
		require.NoError(t, err)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_SoloDuenoOAdmin(t *testing.T) {
	engine, bookings, companies := newEngine(t)
	seedCompany(t, companies, "co-1", "Empresa Uno")
	seedBooking(t, bookings, "bk-1", "co-1", identUser.UserID)

	newDate := "2022-05-12"
	patch := dto.UpdateBookingRequest{ApptDate: &newDate}

	// otro usuario: rechazado aunque el patch sea válido
	_, err := engine.Update("bk-1", identOther, patch)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// dueño: permitido
	out, err := engine.Update("bk-1", identUser, patch)
	require.NoError(t, err)
	assert.Equal(t, 12, out.ApptDate.Day())

	// admin: permitido
	_, err = engine.Update("bk-1", identAdmin, patch)
	assert.NoError(t, err)
}

func TestUpdate_FechaFueraDeVentana(t *testing.T) {
	engine, bookings, companies := newEngine(t)
	seedCompany(t, companies, "co-1", "Empresa Uno")
	seedBooking(t, bookings, "bk-1", "co-1", identUser.UserID)

	badDate := "2022-05-14"
	_, err := engine.Update("bk-1", identUser, dto.UpdateBookingRequest{ApptDate: &badDate})
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestUpdate_NoExiste(t *testing.T) {
	engine, _, _ := newEngine(t)

	newDate := "2022-05-12"
	_, err := engine.Update("no-existe", identUser, dto.UpdateBookingRequest{ApptDate: &newDate})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_SoloDuenoOAdmin(t *testing.T) {
	engine, bookings, companies := newEngine(t)
	seedCompany(t, companies, "co-1", "Empresa Uno")
	seedBooking(t, bookings, "bk-1", "co-1", identUser.UserID)
	seedBooking(t, bookings, "bk-2", "co-1", identUser.UserID)

	err := engine.Delete("bk-1", identOther)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	require.NoError(t, engine.Delete("bk-1", identUser))
	require.NoError(t, engine.Delete("bk-2", identAdmin))

	assert.ErrorIs(t, engine.Delete("bk-1", identUser), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// List / GetByID
// ──────────────────────────────────────────────────────────────────────────────

func TestList_UsuarioSoloVeLasPropias(t *testing.T) {
	engine, bookings, companies := newEngine(t)
	seedCompany(t, companies, "co-1", "Empresa Uno")
	seedBooking(t, bookings, "bk-1", "co-1", identUser.UserID)
	seedBooking(t, bookings, "bk-2", "co-1", identOther.UserID)

	// el filtro de empresa se ignora para usuarios normales
	items, err := engine.List(identUser, "co-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, identUser.UserID, items[0].UserID)
}

func TestList_AdminVeTodasOFiltraPorEmpresa(t *testing.T) {
	engine, bookings, companies := newEngine(t)
	seedCompany(t, companies, "co-1", "Empresa Uno")
	seedCompany(t, companies, "co-2", "Empresa Dos")
	seedBooking(t, bookings, "bk-1", "co-1", identUser.UserID)
	seedBooking(t, bookings, "bk-2", "co-2", identOther.UserID)

	all, err := engine.List(identAdmin, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := engine.List(identAdmin, "co-2")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "co-2", filtered[0].CompanyID)
}

func TestGetByID_NoExiste(t *testing.T) {
	engine, _, _ := newEngine(t)

	_, err := engine.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
