package entity

import "time"

// Roles válidos. RoleCliente nunca se persiste: es implícito para usuarios_empresas.
const (
	RoleAdmin   = "admin"
	RoleRH      = "rh"
	RoleUser    = "user"
	RoleCliente = "cliente"
)

// InternalUser personal de la empresa de servicios (usuarios_internos).
type InternalUser struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         string // admin, rh, user
	Active       bool
	CreatedAt    time.Time
}

// ClientUser usuario que pertenece a exactamente una empresa cliente (usuarios_empresas).
type ClientUser struct {
	ID           int64
	Code         string // id_usuario
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	ProfileName  string
	CompanyID    *int64
}
