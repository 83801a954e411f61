package entity

import "time"

// Límites de validación de Company (alineados con los constraints de la tabla).
const (
	CompanyNameMaxLen       = 50
	CompanyPostalCodeMaxLen = 5
)

// Company representa una empresa contra la que se crean reservas.
// Name es único. Las reservas referencian a la empresa por FK; al eliminar
// la empresa se eliminan sus reservas en la misma transacción.
type Company struct {
	ID          string
	Name        string
	Address     string
	District    string
	Province    string
	PostalCode  string
	Tel         string // opcional
	Region      string
	Website     string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
