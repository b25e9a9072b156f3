package membership

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/portal-rdp/internal/application/dto"
	"github.com/jhoicas/portal-rdp/internal/domain"
	"github.com/jhoicas/portal-rdp/internal/domain/entity"
)

type stubPayments struct {
	latest map[int64]*entity.Payment
	err    error
}

func (s *stubPayments) Create(context.Context, *entity.Payment) (bool, error) { return true, nil }
func (s *stubPayments) LatestCompleted(_ context.Context, companyID int64) (*entity.Payment, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.latest[companyID], nil
}
func (s *stubPayments) ListByCompany(context.Context, int64) ([]*entity.Payment, error) {
	return nil, nil
}
func (s *stubPayments) ListAll(context.Context) ([]*entity.Payment, error) { return nil, nil }

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newService(repo *stubPayments) *Service {
	s := NewService(repo)
	s.now = func() time.Time { return now }
	return s
}

func TestCheck(t *testing.T) {
	repo := &stubPayments{latest: map[int64]*entity.Payment{
		1: {Status: entity.PaymentCompleted, ExpiresAt: now.Add(48 * time.Hour)},
		2: {Status: entity.PaymentCompleted, ExpiresAt: now.Add(-time.Hour)},
	}}
	s := newService(repo)

	assert.NoError(t, s.Check(context.Background(), 1))
	assert.ErrorIs(t, s.Check(context.Background(), 2), domain.ErrMembershipExpired)
	assert.ErrorIs(t, s.Check(context.Background(), 3), domain.ErrNoMembership)
}

func TestCheck_ErrorDeInfraestructura(t *testing.T) {
	boom := errors.New("db caída")
	s := newService(&stubPayments{err: boom})

	err := s.Check(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
	assert.False(t, errors.Is(err, domain.ErrNoMembership))
}

func TestStatus(t *testing.T) {
	exp := now.Add(10*24*time.Hour + time.Hour)
	repo := &stubPayments{latest: map[int64]*entity.Payment{
		1: {Status: entity.PaymentCompleted, ExpiresAt: exp, Plan: "mensual"},
		2: {Status: entity.PaymentCompleted, ExpiresAt: now.Add(-time.Hour), Plan: "anual"},
	}}
	s := newService(repo)
	id1, id2, id3 := int64(1), int64(2), int64(3)

	st, err := s.Status(context.Background(), dto.Principal{Rol: "cliente", EmpresaID: &id1})
	require.NoError(t, err)
	assert.True(t, st.Activa)
	assert.Equal(t, 10, st.DiasRestantes)
	assert.Equal(t, "mensual", st.TipoPlan)
	require.NotNil(t, st.FechaExpiracion)
	assert.True(t, exp.Equal(*st.FechaExpiracion))

	st, err = s.Status(context.Background(), dto.Principal{Rol: "cliente", EmpresaID: &id2})
	require.NoError(t, err)
	assert.False(t, st.Activa)
	assert.True(t, st.Expirada)
	assert.Equal(t, 0, st.DiasRestantes)

	st, err = s.Status(context.Background(), dto.Principal{Rol: "cliente", EmpresaID: &id3})
	require.NoError(t, err)
	assert.False(t, st.Activa)
	assert.False(t, st.Expirada)
	assert.Nil(t, st.FechaExpiracion)

	_, err = s.Status(context.Background(), dto.Principal{Rol: "admin"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
