package usecase

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/jhoicas/portal-rdp/internal/application/auth"
	"github.com/jhoicas/portal-rdp/internal/application/dto"
	"github.com/jhoicas/portal-rdp/internal/domain"
	"github.com/jhoicas/portal-rdp/internal/domain/access"
	"github.com/jhoicas/portal-rdp/internal/domain/entity"
	"github.com/jhoicas/portal-rdp/internal/domain/repository"
)

// UserUseCase administra el personal interno (solo RH).
type UserUseCase struct {
	repo repository.InternalUserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.InternalUserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista los usuarios internos, más recientes primero.
func (uc *UserUseCase) List(ctx context.Context) (*dto.InternalUserListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InternalUserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, entityToInternalUserResponse(u))
	}
	return &dto.InternalUserListResponse{Users: items}, nil
}

// Create da de alta un usuario interno. El rol por defecto es "user".
// Devuelve ErrPasswordPolicy si la contraseña no cumple y ErrEmailAlreadyExists si el email existe.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateInternalUserRequest) (*dto.InternalUserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	name := strings.TrimSpace(in.NombreUsuario)
	if email == "" || name == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if !ValidInternalPassword(in.Password) {
		return nil, domain.ErrPasswordPolicy
	}
	role := access.Normalize(strings.ToLower(strings.TrimSpace(in.Rol)))
	if role == "" {
		role = entity.RoleUser
	}
	if !access.IsStaff(role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := &entity.InternalUser{
		FirstName:    name,
		LastName:     strings.TrimSpace(in.ApellidoUsuario),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Active:       true,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	resp := entityToInternalUserResponse(user)
	return &resp, nil
}

// ValidInternalPassword regla del personal interno: 4 a 8 caracteres con al menos
// una minúscula, una mayúscula y un dígito.
func ValidInternalPassword(pw string) bool {
	n := len([]rune(pw))
	if n < 4 || n > 8 {
		return false
	}
	var lower, upper, digit bool
	for _, r := range pw {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}

func entityToInternalUserResponse(u *entity.InternalUser) dto.InternalUserResponse {
	return dto.InternalUserResponse{
		ID:              u.ID,
		NombreUsuario:   u.FirstName,
		ApellidoUsuario: u.LastName,
		Email:           u.Email,
		Rol:             u.Role,
		Activo:          u.Active,
		CreatedAt:       u.CreatedAt,
	}
}
