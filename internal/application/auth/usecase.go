package auth

import (
	"context"
	"strings"

	"github.com/jhoicas/portal-rdp/internal/application/dto"
	"github.com/jhoicas/portal-rdp/internal/domain"
	"github.com/jhoicas/portal-rdp/internal/domain/entity"
	"github.com/jhoicas/portal-rdp/internal/domain/repository"
	"github.com/jhoicas/portal-rdp/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación contra las dos tablas de usuarios.
type AuthUseCase struct {
	internalRepo repository.InternalUserRepository
	clientRepo   repository.ClientUserRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(internalRepo repository.InternalUserRepository, clientRepo repository.ClientUserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{internalRepo: internalRepo, clientRepo: clientRepo, jwtCfg: jwtCfg}
}

// Login autentica personal interno (usuarios_internos) y emite el token.
// Email desconocido y password incorrecto devuelven el mismo error.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := validateCredentials(in); err != nil {
		return nil, err
	}
	user, err := uc.internalRepo.FindByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil || !passwordMatches(user.PasswordHash, in.Password) {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.Active {
		return nil, domain.ErrForbidden
	}
	p := jwt.Principal{ID: user.ID, Email: user.Email, Rol: user.Role}
	token, err := jwt.Generate(uc.jwtCfg.Secret, p, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.SessionUser{
			ID:            user.ID,
			Email:         user.Email,
			Rol:           user.Role,
			NombreUsuario: user.FirstName,
		},
	}, nil
}

// LoginClient autentica un usuario de empresa cliente (usuarios_empresas).
// El token lleva rol "cliente" y el empresa_id del usuario.
func (uc *AuthUseCase) LoginClient(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := validateCredentials(in); err != nil {
		return nil, err
	}
	user, err := uc.clientRepo.FindByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil || !passwordMatches(user.PasswordHash, in.Password) {
		return nil, domain.ErrInvalidCredentials
	}
	p := jwt.Principal{ID: user.ID, Email: user.Email, Rol: entity.RoleCliente, EmpresaID: user.CompanyID}
	token, err := jwt.Generate(uc.jwtCfg.Secret, p, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.SessionUser{
			ID:            user.ID,
			Email:         user.Email,
			Rol:           entity.RoleCliente,
			NombreUsuario: user.FirstName,
			EmpresaID:     user.CompanyID,
		},
	}, nil
}

// HashPassword aplica bcrypt con el costo por defecto.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func passwordMatches(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func validateCredentials(in dto.LoginRequest) error {
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return domain.ErrInvalidInput
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
