package domain

import "errors"

// Errores de dominio (sin dependencias externas). Cada modo de rechazo del
// motor de reservas es un sentinel propio para que el handler HTTP pueda
// distinguirlos y mapearlos a su status.
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrCompanyNotFound      = errors.New("empresa no encontrada")
	ErrUserNotFound         = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists   = errors.New("el email ya está registrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrForbidden            = errors.New("acceso denegado")
	ErrInvalidDate          = errors.New("fecha de cita fuera de la ventana de reservas")
	ErrUserQuotaExceeded    = errors.New("el usuario alcanzó su cupo de reservas")
	ErrCompanyQuotaExceeded = errors.New("la empresa alcanzó su cupo de reservas")
)
