package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/portal-rdp/internal/application/usecase"
	"github.com/jhoicas/portal-rdp/pkg/logger"
)

// CatalogHandler catálogos, documentos y plantillas descargables.
type CatalogHandler struct {
	uc  *usecase.CatalogUseCase
	log *logger.Logger
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, log: log}
}

// ServicePrices godoc
// @Summary      Precios de servicios
// @Tags         catalogo
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ServicePriceListResponse
// @Router       /servicios/precios [get]
func (h *CatalogHandler) ServicePrices(c *fiber.Ctx) error {
	out, err := h.uc.ServicePrices(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Plans godoc
// @Summary      Planes de membresía
// @Tags         catalogo
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.PlanListResponse
// @Router       /pagos/planes [get]
func (h *CatalogHandler) Plans(c *fiber.Ctx) error {
	return c.JSON(h.uc.Plans())
}

// Documents godoc
// @Summary      Documentos de la empresa
// @Tags         documentos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DocumentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /documentos [get]
func (h *CatalogHandler) Documents(c *fiber.Ctx) error {
	out, err := h.uc.Documents(c.UserContext(), GetPrincipal(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// ResponsivaTemplate godoc
// @Summary      Descargar plantilla de responsiva
// @Tags         documentos
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200  {file}  binary
// @Router       /download/responsiva-template [get]
func (h *CatalogHandler) ResponsivaTemplate(c *fiber.Ctx) error {
	pdf, err := h.uc.ResponsivaTemplate(c.UserContext(), GetPrincipal(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="responsiva.pdf"`)
	return c.Send(pdf)
}

// StoredResponsiva godoc
// @Summary      Descargar la responsiva firmada de una empresa
// @Tags         documentos
// @Produce      application/octet-stream
// @Security     BearerAuth
// @Param        empresaId  path  int  true  "ID de la empresa"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /documentos/{empresaId}/responsiva [get]
func (h *CatalogHandler) StoredResponsiva(c *fiber.Ctx) error {
	companyID, err := paramID(c, "empresaId")
	if err != nil {
		return writeError(c, h.log, err)
	}
	name, data, err := h.uc.StoredResponsiva(c.UserContext(), GetPrincipal(c), companyID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Attachment(name)
	return c.Send(data)
}
