package repository

import "github.com/jhoicas/reservas-api/internal/domain/entity"

// CompanyFilter filtro tipado para listados de empresas. Reemplaza la
// reescritura de query-string del sistema original: cada campo se traduce a
// un predicado parametrizado, nunca a SQL construido por sustitución.
type CompanyFilter struct {
	Name     string // coincidencia parcial, case-insensitive
	Province string
	Region   string
	District string
}

// Campos de ordenamiento permitidos para List (whitelist).
const (
	CompanySortCreatedAt = "created_at"
	CompanySortName      = "name"
)

// CompanyListParams paginación y orden para List.
type CompanyListParams struct {
	Limit  int
	Offset int
	Sort   string // CompanySort*; prefijo "-" para descendente
}

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByName(name string) (*entity.Company, error)
	Update(company *entity.Company) error
	List(filter CompanyFilter, params CompanyListParams) ([]*entity.Company, error)
	Count(filter CompanyFilter) (int, error)
	Delete(id string) error
}
