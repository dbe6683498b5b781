package dto

// Paginación por defecto y máxima para listados.
const (
	DefaultLimit = 100
	MaxLimit     = 500
)

// PageRequest paginación para listados (skip/limit).
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"skip"`
}

// Normalize aplica valores por defecto y límites.
func (p *PageRequest) Normalize() {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
