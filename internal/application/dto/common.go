package dto

// Response envelope estándar de la API: {success, data|message, count?, pagination?}.
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Count      *int        `json:"count,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Data       interface{} `json:"data,omitempty"`
}

// OK respuesta exitosa con payload.
func OK(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// OKList respuesta exitosa de listado con count y paginación opcional.
func OKList(data interface{}, count int, pagination *Pagination) Response {
	return Response{Success: true, Data: data, Count: &count, Pagination: pagination}
}

// Fail respuesta de error con mensaje legible (sin detalle interno).
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

// PageRequest paginación por página para listados.
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// DefaultPage aplica valores por defecto si Page/Limit no vienen.
func (p *PageRequest) DefaultPage() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 25
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

// Offset traduce page/limit al offset del repositorio.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageLink referencia a una página adyacente.
type PageLink struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Pagination enlaces next/prev según el total de registros.
type Pagination struct {
	Next *PageLink `json:"next,omitempty"`
	Prev *PageLink `json:"prev,omitempty"`
}

// BuildPagination arma los enlaces next/prev para la página actual.
func BuildPagination(page, limit, total int) *Pagination {
	p := &Pagination{}
	if page*limit < total {
		p.Next = &PageLink{Page: page + 1, Limit: limit}
	}
	if page > 1 {
		p.Prev = &PageLink{Page: page - 1, Limit: limit}
	}
	if p.Next == nil && p.Prev == nil {
		return nil
	}
	return p
}
