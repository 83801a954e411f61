package domain

// Identity es la identidad del llamador resuelta por el middleware de auth:
// id de usuario + rol extraídos del token. Es la única fuente del campo user
// de una reserva; nunca se confía en el body del cliente.
type Identity struct {
	UserID string
	Role   string
}

// IsAdmin informa si el llamador tiene rol administrador.
func (i Identity) IsAdmin() bool {
	return i.Role == "admin"
}

// CanMutate es el predicado central de autorización para update/delete de
// reservas: dueño o admin. Los handlers no repiten esta lógica.
func (i Identity) CanMutate(ownerUserID string) bool {
	return i.IsAdmin() || i.UserID == ownerUserID
}
