package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/portal-rdp/internal/application/auth"
	"github.com/jhoicas/portal-rdp/internal/application/census"
	"github.com/jhoicas/portal-rdp/internal/application/membership"
	"github.com/jhoicas/portal-rdp/internal/application/payments"
	"github.com/jhoicas/portal-rdp/internal/application/usecase"
	"github.com/jhoicas/portal-rdp/internal/domain/access"
	"github.com/jhoicas/portal-rdp/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	CompanyUC  *usecase.CompanyUseCase
	EmployeeUC *usecase.EmployeeUseCase
	TicketUC   *usecase.TicketUseCase
	CatalogUC  *usecase.CatalogUseCase
	CensusUC   *census.UseCase
	PaymentsUC *payments.UseCase
	Membership *membership.Service
	JWTSecret  string
	Log        *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	can := RequireCapability
	paid := RequireMembership(deps.Membership, log)

	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC, log)
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.EmployeeUC, log)
	censusHandler := NewCensusHandler(deps.CensusUC, log)
	ticketHandler := NewTicketHandler(deps.TicketUC, log)
	paymentHandler := NewPaymentHandler(deps.PaymentsUC, deps.Membership, log)
	catalogHandler := NewCatalogHandler(deps.CatalogUC, log)

	// Públicas
	app.Post("/auth/login", authHandler.Login)
	app.Post("/auth/login-client", authHandler.LoginClient)
	app.Post("/pagos/webhook", paymentHandler.Webhook)

	// Rutas protegidas (requieren Bearer Token). Cada ruta o grupo lleva su propio
	// middleware para que una ruta inexistente siga respondiendo 404.
	authed := AuthMiddleware(deps.JWTSecret)

	// Personal interno (rh)
	users := app.Group("/users", authed, can(access.ManageInternalUsers))
	users.Get("/", authHandler.ListUsers)
	users.Post("/", authHandler.CreateUser)

	// Empresas (admin)
	empresas := app.Group("/empresas", authed, can(access.ManageCompanies))
	empresas.Get("/", companyHandler.List)
	empresas.Post("/", companyHandler.Create)
	empresas.Get("/:id", companyHandler.GetByID)
	empresas.Put("/:id", companyHandler.Update)
	empresas.Post("/:id/usuarios", companyHandler.CreateClientUser)

	// Empleados
	empleados := app.Group("/empleados", authed, can(access.ManageEmployees))
	empleados.Get("/", companyHandler.ListEmployees)
	empleados.Post("/", companyHandler.CreateEmployee)
	empleados.Put("/:id", companyHandler.UpdateEmployee)
	empleados.Delete("/:id", companyHandler.DeleteEmployee)

	// Censo
	censo := app.Group("/equipment-requests", authed)
	censo.Post("/", can(access.SubmitCensus), paid, censusHandler.Submit)
	censo.Get("/", can(access.ReviewCensus), censusHandler.ListRequests)
	censo.Get("/mine", can(access.ViewOwnCensus), censusHandler.MyRequests)

	// Equipos
	equipos := app.Group("/equipos", authed)
	equipos.Get("/", can(access.ViewOwnEquipment), censusHandler.ListEquipment)
	equipos.Put("/:id", can(access.ViewOwnEquipment), censusHandler.UpdateEquipment)
	equipos.Get("/:id/licencia", can(access.ManageEquipment), censusHandler.License)
	adminEquipos := app.Group("/admin/equipos", authed)
	adminEquipos.Get("/", can(access.ViewAllEquipment), censusHandler.ListEquipment)
	adminEquipos.Patch("/:id/status", can(access.ManageEquipment), censusHandler.ChangeStatus)
	agenda := app.Group("/agenda", authed, can(access.ManageEquipment))
	agenda.Post("/programar-censo", censusHandler.ScheduleCensus)
	agenda.Post("/verificar-censo", censusHandler.VerifyCensus)

	// Tickets y chat
	tickets := app.Group("/tickets", authed, can(access.UseTickets))
	tickets.Get("/", ticketHandler.List)
	tickets.Post("/", paid, ticketHandler.Create)
	tickets.Put("/:id", ticketHandler.Update)
	tickets.Delete("/:id", ticketHandler.Delete)
	chat := app.Group("/chat", authed, can(access.Chat))
	chat.Post("/enviar", ticketHandler.SendMessage)
	chat.Get("/:ticketId", ticketHandler.Messages)

	// Documentos y descargas
	documentos := app.Group("/documentos", authed)
	documentos.Get("/", can(access.ViewDocuments), catalogHandler.Documents)
	documentos.Get("/:empresaId/responsiva", can(access.ViewDocuments, access.ManageCompanies), catalogHandler.StoredResponsiva)
	download := app.Group("/download", authed)
	download.Get("/responsiva-template", catalogHandler.ResponsivaTemplate)
	download.Get("/census-tool-auto", can(access.SubmitCensus), catalogHandler.CensusTool)
	app.Get("/servicios/precios", authed, can(access.ViewCatalog), catalogHandler.ServicePrices)

	// Pagos y membresía
	pagos := app.Group("/pagos", authed)
	pagos.Get("/planes", can(access.ViewCatalog), catalogHandler.Plans)
	pagos.Get("/historial", can(access.ViewPayments), paymentHandler.History)
	app.Get("/membresia/estado", authed, can(access.Pay), paymentHandler.MembershipStatus)
	stripe := app.Group("/stripe", authed, can(access.Pay))
	stripe.Post("/create-payment-intent", paymentHandler.CreatePaymentIntent)
	stripe.Post("/confirm-payment", paymentHandler.ConfirmPayment)
	stripe.Post("/create-checkout-session", paymentHandler.CreateCheckoutSession)
}
