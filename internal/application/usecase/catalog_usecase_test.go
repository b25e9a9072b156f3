package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/portal-rdp/internal/domain"
	"github.com/jhoicas/portal-rdp/internal/domain/entity"
)

type memPrices struct{ list []*entity.ServicePrice }

func (m *memPrices) ListActive(context.Context) ([]*entity.ServicePrice, error) { return m.list, nil }

type memDocuments struct{ byCompany map[int64]*entity.Document }

func (m *memDocuments) UpsertResponsiva(_ context.Context, companyID int64, path string) (*entity.Document, error) {
	d := m.byCompany[companyID]
	if d == nil {
		d = &entity.Document{ID: companyID, CompanyID: companyID}
		m.byCompany[companyID] = d
	}
	d.ResponsivaPath = path
	return d, nil
}

func (m *memDocuments) GetByCompany(_ context.Context, companyID int64) (*entity.Document, error) {
	return m.byCompany[companyID], nil
}

// fakePDF registra los datos recibidos en lugar de renderizar.
type fakePDF struct {
	got ResponsivaData
	err error
}

func (f *fakePDF) GenerateResponsiva(_ context.Context, data ResponsivaData) ([]byte, error) {
	f.got = data
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-fake"), nil
}

// ─── Catálogos ────────────────────────────────────────────────────────────

func TestCatalog_PreciosDeServicios(t *testing.T) {
	prices := &memPrices{list: []*entity.ServicePrice{
		{ID: 1, Code: "soporte", Name: "Soporte remoto", Price: decimal.RequireFromString("450.50"), Currency: "MXN", Active: true},
	}}
	uc := NewCatalogUseCase(prices, nil, nil, nil, nil, nil)

	out, err := uc.ServicePrices(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Precios, 1)
	assert.Equal(t, "soporte", out.Precios[0].Codigo)
	assert.True(t, decimal.RequireFromString("450.5").Equal(out.Precios[0].Precio))
}

func TestCatalog_PlanesOrdenadosPorDuracion(t *testing.T) {
	out := NewCatalogUseCase(nil, nil, nil, nil, nil, nil).Plans()

	require.Len(t, out.Planes, 3)
	assert.Equal(t, []string{"mensual", "trimestral", "anual"},
		[]string{out.Planes[0].Codigo, out.Planes[1].Codigo, out.Planes[2].Codigo})
	assert.Equal(t, 365, out.Planes[2].Dias)
}

func TestCatalog_DocumentosDeLaEmpresa(t *testing.T) {
	docs := &memDocuments{byCompany: map[int64]*entity.Document{
		3: {ID: 9, CompanyID: 3, CSF: "csf.pdf", ResponsivaPath: "responsivas/3/a.pdf"},
	}}
	uc := NewCatalogUseCase(nil, docs, nil, nil, nil, nil)
	ctx := context.Background()

	out, err := uc.Documents(ctx, clientOf(3))
	require.NoError(t, err)
	assert.Equal(t, "responsivas/3/a.pdf", out.ArchivoResponsiva)

	_, err = uc.Documents(ctx, clientOf(4))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Documents(ctx, admin)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ─── Plantilla de responsiva ──────────────────────────────────────────────

func TestResponsivaTemplate_ClientePrellenado(t *testing.T) {
	ctx := context.Background()
	companies := newMemCompanies()
	require.NoError(t, companies.Create(ctx, &entity.Company{Name: "Acme SA de CV", RFC: "ACM010101AAA"}))
	employees := newMemEmployees()
	require.NoError(t, employees.Create(ctx, &entity.Employee{Name: "Luis Pérez", CompanyID: 1}))
	require.NoError(t, employees.Create(ctx, &entity.Employee{Name: "Marta Ruiz", CompanyID: 1}))
	require.NoError(t, employees.Create(ctx, &entity.Employee{Name: "Otro", CompanyID: 2}))
	gen := &fakePDF{}
	uc := NewCatalogUseCase(nil, nil, companies, employees, gen, nil)

	pdf, err := uc.ResponsivaTemplate(ctx, clientOf(1))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(pdf))
	assert.Equal(t, "Acme SA de CV", gen.got.CompanyName)
	assert.Equal(t, "ACM010101AAA", gen.got.RFC)
	assert.ElementsMatch(t, []string{"Luis Pérez", "Marta Ruiz"}, gen.got.Employees)
	assert.False(t, gen.got.Date.IsZero())
}

func TestResponsivaTemplate_PersonalRecibePlantillaEnBlanco(t *testing.T) {
	gen := &fakePDF{}
	uc := NewCatalogUseCase(nil, nil, newMemCompanies(), newMemEmployees(), gen, nil)

	_, err := uc.ResponsivaTemplate(context.Background(), admin)
	require.NoError(t, err)
	assert.Empty(t, gen.got.CompanyName)
	assert.Empty(t, gen.got.Employees)
}

func TestResponsivaTemplate_ErrorDelGenerador(t *testing.T) {
	boom := errors.New("render")
	uc := NewCatalogUseCase(nil, nil, newMemCompanies(), newMemEmployees(), &fakePDF{err: boom}, nil)

	_, err := uc.ResponsivaTemplate(context.Background(), admin)
	assert.ErrorIs(t, err, boom)
}

// ─── Responsiva guardada ──────────────────────────────────────────────────

type memFiles map[string][]byte

func (m memFiles) Open(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return data, nil
}

func TestStoredResponsiva_AlcancePorEmpresa(t *testing.T) {
	docs := &memDocuments{byCompany: map[int64]*entity.Document{
		3: {ID: 9, CompanyID: 3, ResponsivaPath: "responsivas/3/abc.pdf"},
		4: {ID: 10, CompanyID: 4},
	}}
	files := memFiles{"responsivas/3/abc.pdf": []byte("%PDF-firmada")}
	uc := NewCatalogUseCase(nil, docs, nil, nil, nil, files)
	ctx := context.Background()

	name, data, err := uc.StoredResponsiva(ctx, admin, 3)
	require.NoError(t, err)
	assert.Equal(t, "abc.pdf", name)
	assert.Equal(t, "%PDF-firmada", string(data))

	_, data, err = uc.StoredResponsiva(ctx, clientOf(3), 3)
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	_, _, err = uc.StoredResponsiva(ctx, clientOf(4), 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, _, err = uc.StoredResponsiva(ctx, admin, 4)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
