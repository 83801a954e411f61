package dto

import "time"

// CreateCompanyRequest datos para registrar una empresa.
type CreateCompanyRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	District    string `json:"district"`
	Province    string `json:"province"`
	PostalCode  string `json:"postal_code"`
	Tel         string `json:"tel"`
	Region      string `json:"region"`
	Website     string `json:"website"`
	Description string `json:"description"`
}

// UpdateCompanyRequest patch parcial de una empresa; solo los campos
// presentes se modifican.
type UpdateCompanyRequest struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	District    *string `json:"district"`
	Province    *string `json:"province"`
	PostalCode  *string `json:"postal_code"`
	Tel         *string `json:"tel"`
	Region      *string `json:"region"`
	Website     *string `json:"website"`
	Description *string `json:"description"`
}

// ListCompaniesRequest filtros tipados + paginación + orden del listado.
type ListCompaniesRequest struct {
	PageRequest
	Name     string `query:"name"`
	Province string `query:"province"`
	Region   string `query:"region"`
	District string `query:"district"`
	Sort     string `query:"sort"` // created_at | name, prefijo "-" para desc
}

// CompanyResponse representación HTTP de una empresa.
type CompanyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	District    string    `json:"district"`
	Province    string    `json:"province"`
	PostalCode  string    `json:"postal_code"`
	Tel         string    `json:"tel,omitempty"`
	Region      string    `json:"region"`
	Website     string    `json:"website"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
