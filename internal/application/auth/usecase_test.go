package auth

import (
	"context"
	"testing"

	"github.com/jhoicas/portal-rdp/internal/application/dto"
	"github.com/jhoicas/portal-rdp/internal/domain"
	"github.com/jhoicas/portal-rdp/internal/domain/entity"
	"github.com/jhoicas/portal-rdp/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-auth"

type fakeInternalRepo struct{ users map[string]*entity.InternalUser }

func (f *fakeInternalRepo) Create(_ context.Context, u *entity.InternalUser) error {
	f.users[u.Email] = u
	return nil
}
func (f *fakeInternalRepo) FindByEmail(_ context.Context, email string) (*entity.InternalUser, error) {
	return f.users[email], nil
}
func (f *fakeInternalRepo) List(context.Context) ([]*entity.InternalUser, error) { return nil, nil }

type fakeClientRepo struct{ users map[string]*entity.ClientUser }

func (f *fakeClientRepo) Create(_ context.Context, u *entity.ClientUser) error {
	f.users[u.Email] = u
	return nil
}
func (f *fakeClientRepo) FindByEmail(_ context.Context, email string) (*entity.ClientUser, error) {
	return f.users[email], nil
}
func (f *fakeClientRepo) GetByID(context.Context, int64) (*entity.ClientUser, error) { return nil, nil }
func (f *fakeClientRepo) ListByCompany(context.Context, int64) ([]*entity.ClientUser, error) {
	return nil, nil
}

func newUseCase(t *testing.T) *AuthUseCase {
	t.Helper()
	hash, err := HashPassword("Abc123")
	require.NoError(t, err)
	empresa := int64(7)
	internal := &fakeInternalRepo{users: map[string]*entity.InternalUser{
		"admin@rdp.mx":    {ID: 1, Email: "admin@rdp.mx", PasswordHash: hash, Role: entity.RoleAdmin, Active: true, FirstName: "Ana"},
		"inactivo@rdp.mx": {ID: 2, Email: "inactivo@rdp.mx", PasswordHash: hash, Role: entity.RoleUser, Active: false},
	}}
	clients := &fakeClientRepo{users: map[string]*entity.ClientUser{
		"cliente@acme.mx": {ID: 40, Email: "cliente@acme.mx", PasswordHash: hash, FirstName: "Luis", CompanyID: &empresa},
	}}
	return NewAuthUseCase(internal, clients, JWTConfig{Secret: testSecret, ExpMinutes: 480, Issuer: "test"})
}

func TestLogin_PersonalInternoObtieneToken(t *testing.T) {
	uc := newUseCase(t)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Email: "Admin@RDP.mx ", Password: "Abc123"})
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.User.Rol)
	assert.Nil(t, resp.User.EmpresaID)

	claims, err := jwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.ID)
	assert.Equal(t, "admin", claims.Rol)
	assert.Nil(t, claims.EmpresaID)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := newUseCase(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "admin@rdp.mx", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@rdp.mx", Password: "Abc123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UsuarioInactivoEsForbidden(t *testing.T) {
	uc := newUseCase(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "inactivo@rdp.mx", Password: "Abc123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLogin_CamposVacios(t *testing.T) {
	uc := newUseCase(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLoginClient_TokenLlevaEmpresa(t *testing.T) {
	uc := newUseCase(t)

	resp, err := uc.LoginClient(context.Background(), dto.LoginRequest{Email: "cliente@acme.mx", Password: "Abc123"})
	require.NoError(t, err)

	claims, err := jwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "cliente", claims.Rol)
	require.NotNil(t, claims.EmpresaID)
	assert.Equal(t, int64(7), *claims.EmpresaID)
	assert.Equal(t, int64(40), claims.ID)
}

func TestLoginClient_NoAceptaPersonalInterno(t *testing.T) {
	uc := newUseCase(t)

	_, err := uc.LoginClient(context.Background(), dto.LoginRequest{Email: "admin@rdp.mx", Password: "Abc123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
