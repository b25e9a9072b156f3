package dto

// ErrorResponse cuerpo de error HTTP. El SPA muestra Error tal cual en un banner.
type ErrorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// MembershipErrorResponse error 403 de membresía; las banderas activan el paywall del SPA.
type MembershipErrorResponse struct {
	Code               string `json:"code"`
	Error              string `json:"error"`
	MembresiaRequerida bool   `json:"membresia_requerida"`
	MembresiaExpirada  bool   `json:"membresia_expirada"`
}

// Principal identidad del usuario autenticado (extraída del token por el middleware).
type Principal struct {
	ID        int64
	Email     string
	Rol       string
	EmpresaID *int64
}

// IsClient informa si el principal es un usuario de empresa cliente.
func (p Principal) IsClient() bool {
	return p.Rol == "cliente"
}

// CompanyID devuelve la empresa del principal (0, false para personal interno).
func (p Principal) CompanyID() (int64, bool) {
	if p.EmpresaID == nil {
		return 0, false
	}
	return *p.EmpresaID, true
}
