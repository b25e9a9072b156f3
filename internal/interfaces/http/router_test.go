package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/portal-rdp/internal/application/auth"
	"github.com/jhoicas/portal-rdp/internal/application/census"
	"github.com/jhoicas/portal-rdp/internal/application/dto"
	"github.com/jhoicas/portal-rdp/internal/application/membership"
	"github.com/jhoicas/portal-rdp/internal/application/payments"
	"github.com/jhoicas/portal-rdp/internal/application/usecase"
	"github.com/jhoicas/portal-rdp/internal/domain/entity"
	"github.com/jhoicas/portal-rdp/internal/infrastructure/storage"
	apphttp "github.com/jhoicas/portal-rdp/internal/interfaces/http"
	"github.com/jhoicas/portal-rdp/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type clientRepo struct{ users []*entity.ClientUser }

func (r *clientRepo) Create(_ context.Context, u *entity.ClientUser) error {
	u.ID = int64(len(r.users) + 1)
	r.users = append(r.users, u)
	return nil
}

func (r *clientRepo) FindByEmail(_ context.Context, email string) (*entity.ClientUser, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *clientRepo) GetByID(_ context.Context, id int64) (*entity.ClientUser, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *clientRepo) ListByCompany(context.Context, int64) ([]*entity.ClientUser, error) {
	return r.users, nil
}

type internalRepo struct{}

func (internalRepo) Create(context.Context, *entity.InternalUser) error { return nil }
func (internalRepo) FindByEmail(context.Context, string) (*entity.InternalUser, error) {
	return nil, nil
}
func (internalRepo) List(context.Context) ([]*entity.InternalUser, error) { return nil, nil }

type ticketRepo struct{ tickets []*entity.Ticket }

func (r *ticketRepo) Create(_ context.Context, t *entity.Ticket) error {
	t.ID = int64(len(r.tickets) + 1)
	r.tickets = append(r.tickets, t)
	return nil
}
func (r *ticketRepo) GetByID(context.Context, int64) (*entity.Ticket, error) { return nil, nil }
func (r *ticketRepo) ListByCompany(context.Context, int64) ([]*entity.Ticket, error) {
	return r.tickets, nil
}
func (r *ticketRepo) ListAll(context.Context) ([]*entity.Ticket, error) { return r.tickets, nil }
func (r *ticketRepo) Update(context.Context, *entity.Ticket) error       { return nil }
func (r *ticketRepo) Delete(context.Context, int64) error                { return nil }
func (r *ticketRepo) AddMessage(context.Context, *entity.TicketMessage) error {
	return nil
}
func (r *ticketRepo) ListMessages(context.Context, int64) ([]*entity.TicketMessage, error) {
	return nil, nil
}

type paymentRepo struct{ latest *entity.Payment }

func (r *paymentRepo) Create(context.Context, *entity.Payment) (bool, error) { return true, nil }
func (r *paymentRepo) LatestCompleted(context.Context, int64) (*entity.Payment, error) {
	return r.latest, nil
}
func (r *paymentRepo) ListByCompany(context.Context, int64) ([]*entity.Payment, error) {
	return nil, nil
}
func (r *paymentRepo) ListAll(context.Context) ([]*entity.Payment, error) { return nil, nil }

type eventRepo struct{}

func (eventRepo) Record(context.Context, *entity.WebhookEvent) (bool, error) { return true, nil }
func (eventRepo) MarkProcessed(context.Context, int64, string) error        { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

type portal struct {
	app      *fiber.App
	payments *paymentRepo
	tickets  *ticketRepo
	census   *censusDB
}

func newPortal(t *testing.T) *portal {
	t.Helper()
	hash, err := auth.HashPassword("secreto123")
	require.NoError(t, err)
	companyID := int64(7)
	clients := &clientRepo{users: []*entity.ClientUser{{
		ID: 5, Email: "cliente@acme.mx", FirstName: "Ana", PasswordHash: hash, CompanyID: &companyID,
	}}}
	pays := &paymentRepo{}
	tickets := &ticketRepo{}
	db := newCensusDB()
	files := storage.NewFileStore(afero.NewMemMapFs(), "/uploads")

	authUC := auth.NewAuthUseCase(internalRepo{}, clients, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer})
	paymentsUC := payments.NewUseCase(nil, pays, eventRepo{}, payments.Config{Currency: "mxn"}, logger.Nop())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     authUC,
		TicketUC:   usecase.NewTicketUseCase(tickets, clients, internalRepo{}),
		CatalogUC:  usecase.NewCatalogUseCase(nil, documentStore{db}, nil, nil, nil, files),
		CensusUC:   census.NewUseCase(censusRunner{db}, files, employeeStore{db}, equipmentStore{db}, requestStore{db}, logger.Nop()),
		PaymentsUC: paymentsUC,
		Membership: membership.NewService(pays),
		JWTSecret:  testJWTSecret,
		Log:        logger.Nop(),
	})
	return &portal{app: app, payments: pays, tickets: tickets, census: db}
}

func (p *portal) do(t *testing.T, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := p.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out := map[string]interface{}{}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

// postForm envía un multipart; file nil omite la parte "responsiva".
func (p *portal) postForm(t *testing.T, path, token string, fields map[string]string, file []byte) (*http.Response, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if file != nil {
		part, err := w.CreateFormFile(apphttp.ResponsivaField, "responsiva.pdf")
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := p.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out := map[string]interface{}{}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

// raw devuelve la respuesta y el cuerpo sin decodificar (descargas).
func (p *portal) raw(t *testing.T, path, token string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := p.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func (p *portal) loginClient(t *testing.T) string {
	t.Helper()
	resp, body := p.do(t, http.MethodPost, "/auth/login-client", "", dto.LoginRequest{Email: "cliente@acme.mx", Password: "secreto123"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	tok, _ := body["token"].(string)
	require.NotEmpty(t, tok)
	return tok
}

func completedPayment(expiresAt time.Time) *entity.Payment {
	return &entity.Payment{
		ID: 1, CompanyID: 7, Amount: decimal.NewFromInt(299), Currency: "MXN",
		Status: entity.PaymentCompleted, Plan: "mensual", DaysAdded: 30,
		PaidAt: expiresAt.AddDate(0, 0, -30), ExpiresAt: expiresAt,
	}
}

var newTicket = dto.CreateTicketRequest{Asunto: "No enciende", Descripcion: "La laptop no enciende"}

// bareToken JWT sin el prefijo "Bearer ".
func bareToken(t *testing.T, id int64, rol string, empresaID *int64) string {
	return strings.TrimPrefix(tokenFor(t, id, rol, empresaID), "Bearer ")
}

func laptopForm() map[string]string {
	return map[string]string{
		"marca":       "Dell",
		"modelo":      "Latitude 5420",
		"no_serie":    "SN-001",
		"tipo_equipo": "Laptop",
		"empleado_id": "",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujos completos
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_LoginCliente_SinMembresia_TicketBloqueado(t *testing.T) {
	p := newPortal(t)
	tok := p.loginClient(t)

	resp, body := p.do(t, http.MethodPost, "/tickets", tok, newTicket)

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, true, body["membresia_requerida"])
	assert.Empty(t, p.tickets.tickets)
}

func TestRouter_LoginCliente_MembresiaExpirada_403ConBandera(t *testing.T) {
	p := newPortal(t)
	p.payments.latest = completedPayment(time.Now().Add(-time.Hour))
	tok := p.loginClient(t)

	resp, body := p.do(t, http.MethodPost, "/tickets", tok, newTicket)

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, true, body["membresia_expirada"])
	assert.Equal(t, "MEMBRESIA_EXPIRADA", body["code"])
	assert.Equal(t, "tu membresía ha expirado", body["error"])
}

func TestRouter_LoginCliente_MembresiaVigente_CreaTicket(t *testing.T) {
	p := newPortal(t)
	p.payments.latest = completedPayment(time.Now().AddDate(0, 0, 10))
	tok := p.loginClient(t)

	resp, body := p.do(t, http.MethodPost, "/tickets", tok, newTicket)

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "media", body["prioridad"])
	assert.Len(t, p.tickets.tickets, 1)
	assert.Equal(t, int64(7), p.tickets.tickets[0].CompanyID)
}

func TestRouter_ListarTickets_NoRequiereMembresia(t *testing.T) {
	p := newPortal(t)
	tok := p.loginClient(t)

	resp, _ := p.do(t, http.MethodGet, "/tickets", tok, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_EstadoMembresia(t *testing.T) {
	p := newPortal(t)
	p.payments.latest = completedPayment(time.Now().AddDate(0, 0, 10).Add(time.Hour))
	tok := p.loginClient(t)

	resp, body := p.do(t, http.MethodGet, "/membresia/estado", tok, nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["activa"])
	assert.Equal(t, float64(10), body["dias_restantes"])
}

func TestRouter_LoginCliente_CredencialesInvalidas_401(t *testing.T) {
	p := newPortal(t)

	resp, body := p.do(t, http.MethodPost, "/auth/login-client", "", dto.LoginRequest{Email: "cliente@acme.mx", Password: "otra"})

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "credenciales inválidas", body["error"])
}

func TestRouter_ClienteNoAccedeAGestionDeUsuarios(t *testing.T) {
	p := newPortal(t)
	tok := p.loginClient(t)

	resp, _ := p.do(t, http.MethodGet, "/users", tok, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRouter_PlanesDeMembresia(t *testing.T) {
	p := newPortal(t)
	tok := p.loginClient(t)

	resp, body := p.do(t, http.MethodGet, "/pagos/planes", tok, nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	planes, _ := body["planes"].([]interface{})
	assert.Len(t, planes, 3)
}

func TestRouter_Webhook_SinProveedor_503(t *testing.T) {
	p := newPortal(t)

	resp, body := p.do(t, http.MethodPost, "/pagos/webhook", "", map[string]string{"id": "evt_1"})

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "PAYMENTS_UNAVAILABLE", body["code"])
}

func TestRouter_RutaProtegidaSinToken_401(t *testing.T) {
	p := newPortal(t)

	resp, _ := p.do(t, http.MethodGet, "/equipos", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_RutaInexistente_404SinToken(t *testing.T) {
	p := newPortal(t)

	resp, _ := p.do(t, http.MethodGet, "/no-existe", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Censo multipart y descargas
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_CensoLaptop_SinResponsiva_400(t *testing.T) {
	p := newPortal(t)
	p.payments.latest = completedPayment(time.Now().AddDate(0, 0, 10))
	tok := p.loginClient(t)

	resp, body := p.postForm(t, "/equipment-requests", tok, laptopForm(), nil)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "RESPONSIVA_REQUIRED", body["code"])
	assert.Empty(t, p.census.equipment)
}

func TestRouter_CensoLaptop_ConResponsiva_201YDescarga(t *testing.T) {
	p := newPortal(t)
	p.payments.latest = completedPayment(time.Now().AddDate(0, 0, 10))
	tok := p.loginClient(t)

	resp, body := p.postForm(t, "/equipment-requests", tok, laptopForm(), []byte("%PDF-firmada"))

	require.Equal(t, http.StatusCreated, resp.StatusCode, body)
	require.Len(t, p.census.equipment, 1)
	assert.Nil(t, p.census.equipment[0].EmployeeID)
	require.NotNil(t, p.census.documents[7])
	assert.NotEmpty(t, p.census.documents[7].ResponsivaPath)

	// El admin descarga la responsiva guardada; otra empresa no la ve.
	admin := bareToken(t, 1, entity.RoleAdmin, nil)
	resp, data := p.raw(t, "/documentos/7/responsiva", admin)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "%PDF-firmada", data)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "attachment")

	resp, _ = p.raw(t, "/documentos/7/responsiva", tok)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	otra := bareToken(t, 9, entity.RoleCliente, int64Ptr(8))
	resp, _ = p.raw(t, "/documentos/7/responsiva", otra)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_Censo_CampoFaltante_400NombraElCampo(t *testing.T) {
	p := newPortal(t)
	p.payments.latest = completedPayment(time.Now().AddDate(0, 0, 10))
	tok := p.loginClient(t)
	form := laptopForm()
	delete(form, "marca")

	resp, body := p.postForm(t, "/equipment-requests", tok, form, []byte("%PDF"))

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
	assert.Contains(t, body["error"], "marca")
	assert.Empty(t, p.census.equipment)
}

func TestRouter_DescargaScriptDeCenso_Cliente(t *testing.T) {
	p := newPortal(t)
	tok := p.loginClient(t)

	resp, script := p.raw(t, "/download/census-tool-auto", tok)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/x-sh")
	assert.Equal(t, `attachment; filename="censo-rdp.sh"`, resp.Header.Get(fiber.HeaderContentDisposition))
	assert.True(t, strings.HasPrefix(script, "#!/bin/sh"))
	assert.Contains(t, script, "portalctl censo --api 'http://example.com'")
	assert.Contains(t, script, "--token '"+tok+"'")
}

func TestRouter_DescargaScriptDeCenso_SoloCliente(t *testing.T) {
	p := newPortal(t)

	resp, _ := p.raw(t, "/download/census-tool-auto", bareToken(t, 1, entity.RoleAdmin, nil))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
