package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/reservas-api/internal/application/dto"
	"github.com/jhoicas/reservas-api/internal/domain"
	"github.com/jhoicas/reservas-api/internal/domain/entity"
	"github.com/jhoicas/reservas-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repos atados a una transacción.
// Lo implementa postgres.TxRunner; se usa para el delete en cascada.
type TxRunner interface {
	Run(ctx context.Context, fn func(companies repository.CompanyRepository, bookings repository.BookingRepository) error) error
}

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	repo repository.CompanyRepository
	tx   TxRunner
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia y el runner transaccional.
func NewCompanyUseCase(repo repository.CompanyRepository, tx TxRunner) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, tx: tx}
}

// Create crea una nueva empresa. Devuelve domain.ErrDuplicate si el nombre ya existe.
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	company := &entity.Company{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Address:     in.Address,
		District:    in.District,
		Province:    in.Province,
		PostalCode:  in.PostalCode,
		Tel:         in.Tel,
		Region:      in.Region,
		Website:     in.Website,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa por ID. Devuelve domain.ErrNotFound si no existe.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(company), nil
}

// List lista empresas con filtro tipado, orden y paginación por página.
func (uc *CompanyUseCase) List(in dto.ListCompaniesRequest) ([]dto.CompanyResponse, int, *dto.Pagination, error) {
	in.DefaultPage()

	filter := repository.CompanyFilter{
		Name:     in.Name,
		Province: in.Province,
		Region:   in.Region,
		District: in.District,
	}
	total, err := uc.repo.Count(filter)
	if err != nil {
		return nil, 0, nil, err
	}
	list, err := uc.repo.List(filter, repository.CompanyListParams{
		Limit:  in.Limit,
		Offset: in.Offset(),
		Sort:   normalizeSort(in.Sort),
	})
	if err != nil {
		return nil, 0, nil, err
	}

	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return items, len(items), dto.BuildPagination(in.Page, in.Limit, total), nil
}

// Update aplica un patch parcial. Devuelve ErrNotFound si la empresa no
// existe, ErrDuplicate si el nuevo nombre ya pertenece a otra empresa y
// ErrInvalidInput si un campo viola sus límites.
func (uc *CompanyUseCase) Update(id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" || len(name) > entity.CompanyNameMaxLen {
			return nil, domain.ErrInvalidInput
		}
		other, err := uc.repo.GetByName(name)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != company.ID {
			return nil, domain.ErrDuplicate
		}
		company.Name = name
	}
	if in.PostalCode != nil {
		if *in.PostalCode == "" || len(*in.PostalCode) > entity.CompanyPostalCodeMaxLen {
			return nil, domain.ErrInvalidInput
		}
		company.PostalCode = *in.PostalCode
	}
	applyIfPresent(in.Address, &company.Address)
	applyIfPresent(in.District, &company.District)
	applyIfPresent(in.Province, &company.Province)
	applyIfPresent(in.Region, &company.Region)
	applyIfPresent(in.Website, &company.Website)
	applyIfPresent(in.Description, &company.Description)
	if in.Tel != nil {
		company.Tel = *in.Tel // tel es opcional, puede vaciarse
	}

	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Delete elimina una empresa y todas sus reservas en una sola transacción.
// El borrado de reservas es un deleteMany plano: no re-dispara cascadas.
func (uc *CompanyUseCase) Delete(ctx context.Context, id string) error {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	return uc.tx.Run(ctx, func(companies repository.CompanyRepository, bookings repository.BookingRepository) error {
		if err := bookings.DeleteByCompany(id); err != nil {
			return err
		}
		return companies.Delete(id)
	})
}

// normalizeSort valida el campo de orden contra la whitelist; cualquier valor
// fuera de ella cae al default -created_at.
func normalizeSort(sort string) string {
	field := strings.TrimPrefix(sort, "-")
	switch field {
	case repository.CompanySortCreatedAt, repository.CompanySortName:
		return sort
	default:
		return "-" + repository.CompanySortCreatedAt
	}
}

func applyIfPresent(src *string, dst *string) {
	if src != nil && *src != "" {
		*dst = *src
	}
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Address:     c.Address,
		District:    c.District,
		Province:    c.Province,
		PostalCode:  c.PostalCode,
		Tel:         c.Tel,
		Region:      c.Region,
		Website:     c.Website,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
