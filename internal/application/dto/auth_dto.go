package dto

import "time"

// LoginRequest entrada para login (personal interno o cliente).
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionUser datos del usuario devueltos junto al token.
type SessionUser struct {
	ID            int64  `json:"id"`
	Email         string `json:"email"`
	Rol           string `json:"rol"`
	NombreUsuario string `json:"nombre_usuario"`
	EmpresaID     *int64 `json:"empresa_id,omitempty"`
}

// LoginResponse token firmado + usuario.
type LoginResponse struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}

// CreateInternalUserRequest alta de personal interno (solo RH).
type CreateInternalUserRequest struct {
	NombreUsuario   string `json:"nombre_usuario" validate:"required"`
	ApellidoUsuario string `json:"apellido_usuario"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=4,max=8"`
	Rol             string `json:"rol" validate:"omitempty,oneof=admin rh user"`
}

// InternalUserResponse salida de un usuario interno (sin password).
type InternalUserResponse struct {
	ID              int64     `json:"id"`
	NombreUsuario   string    `json:"nombre_usuario"`
	ApellidoUsuario string    `json:"apellido_usuario"`
	Email           string    `json:"email"`
	Rol             string    `json:"rol"`
	Activo          bool      `json:"activo"`
	CreatedAt       time.Time `json:"created_at"`
}

// InternalUserListResponse listado de usuarios internos.
type InternalUserListResponse struct {
	Users []InternalUserResponse `json:"users"`
}

// CreateClientUserRequest alta de un usuario cliente para una empresa (admin).
type CreateClientUserRequest struct {
	IDUsuario       string `json:"id_usuario"`
	NombreUsuario   string `json:"nombre_usuario" validate:"required"`
	ApellidoUsuario string `json:"apellido_usuario"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	NombreProfile   string `json:"nombre_profile"`
}

// ClientUserResponse salida de un usuario cliente.
type ClientUserResponse struct {
	ID              int64  `json:"id"`
	IDUsuario       string `json:"id_usuario"`
	NombreUsuario   string `json:"nombre_usuario"`
	ApellidoUsuario string `json:"apellido_usuario"`
	Email           string `json:"email"`
	NombreProfile   string `json:"nombre_profile"`
	EmpresaID       *int64 `json:"empresa_id"`
}
