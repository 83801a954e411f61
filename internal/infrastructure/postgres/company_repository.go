package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/reservas-api/internal/domain"
	"github.com/jhoicas/reservas-api/internal/domain/entity"
	"github.com/jhoicas/reservas-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	db querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
// Acepta tanto el pool como una transacción.
func NewCompanyRepository(db querier) *CompanyRepo {
	return &CompanyRepo{db: db}
}

const companyColumns = `id, name, address, district, province, postal_code, tel, region, website, description, created_at, updated_at`

// Create persiste una nueva empresa. Devuelve domain.ErrDuplicate si el nombre ya existe.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(context.Background(), query,
		company.ID, company.Name, company.Address, company.District, company.Province,
		company.PostalCode, company.Tel, company.Region, company.Website, company.Description,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	return r.scanOne(r.db.QueryRow(context.Background(), query, id), "get company")
}

// GetByName obtiene una empresa por nombre (único).
func (r *CompanyRepo) GetByName(name string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE name = $1`
	return r.scanOne(r.db.QueryRow(context.Background(), query, name), "get company by name")
}

// Update actualiza una empresa existente. Devuelve domain.ErrDuplicate si el
// nuevo nombre choca con otra empresa.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, address = $3, district = $4, province = $5, postal_code = $6,
			tel = $7, region = $8, website = $9, description = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		company.ID, company.Name, company.Address, company.District, company.Province,
		company.PostalCode, company.Tel, company.Region, company.Website, company.Description,
		company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// List devuelve empresas filtradas, ordenadas y paginadas. El filtro se
// traduce siempre a predicados parametrizados; el orden pasa por whitelist.
func (r *CompanyRepo) List(filter repository.CompanyFilter, params repository.CompanyListParams) ([]*entity.Company, error) {
	where, args := companyWhere(filter)
	args = append(args, params.Limit, params.Offset)
	query := fmt.Sprintf(`SELECT %s FROM companies%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		companyColumns, where, orderBy(params.Sort), len(args)-1, len(args))

	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Address, &c.District, &c.Province, &c.PostalCode,
			&c.Tel, &c.Region, &c.Website, &c.Description, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Count devuelve el total de empresas que satisfacen el filtro.
func (r *CompanyRepo) Count(filter repository.CompanyFilter) (int, error) {
	where, args := companyWhere(filter)
	var total int
	err := r.db.QueryRow(context.Background(), `SELECT count(*) FROM companies`+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count companies: %w", err)
	}
	return total, nil
}

// Delete elimina una empresa por ID.
func (r *CompanyRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *CompanyRepo) scanOne(row rowScanner, op string) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.Address, &c.District, &c.Province, &c.PostalCode,
		&c.Tel, &c.Region, &c.Website, &c.Description, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

// companyWhere arma la cláusula WHERE parametrizada a partir del filtro tipado.
func companyWhere(filter repository.CompanyFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(format string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(format, len(args)))
	}
	if filter.Name != "" {
		add(`name ILIKE '%%' || $%d || '%%'`, filter.Name)
	}
	if filter.Province != "" {
		add(`province = $%d`, filter.Province)
	}
	if filter.Region != "" {
		add(`region = $%d`, filter.Region)
	}
	if filter.District != "" {
		add(`district = $%d`, filter.District)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// orderBy traduce el sort validado a SQL. Cualquier campo fuera de la
// whitelist cae a created_at DESC.
func orderBy(sort string) string {
	desc := strings.HasPrefix(sort, "-")
	field := strings.TrimPrefix(sort, "-")
	switch field {
	case repository.CompanySortName:
		field = "name"
	case repository.CompanySortCreatedAt:
		field = "created_at"
	default:
		return "created_at DESC"
	}
	if desc {
		return field + " DESC"
	}
	return field + " ASC"
}
