package http

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/portal-rdp/internal/application/census"
	"github.com/jhoicas/portal-rdp/internal/application/dto"
	"github.com/jhoicas/portal-rdp/pkg/logger"
)

// ResponsivaField campo multipart con la responsiva firmada.
const ResponsivaField = "responsiva"

// CensusHandler censo de equipos, revisión y agenda.
type CensusHandler struct {
	uc  *census.UseCase
	log *logger.Logger
}

// NewCensusHandler construye el handler.
func NewCensusHandler(uc *census.UseCase, log *logger.Logger) *CensusHandler {
	return &CensusHandler{uc: uc, log: log}
}

// Submit godoc
// @Summary      Enviar censo de un equipo
// @Description  Multipart (con archivo "responsiva") o JSON. Laptop exige responsiva.
// @Tags         censo
// @Accept       multipart/form-data
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body        body      dto.CensusRequest  true   "Datos del equipo"
// @Param        responsiva  formData  file               false  "Responsiva firmada"
// @Success      201  {object}  dto.CensusResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.MembershipErrorResponse
// @Router       /equipment-requests [post]
func (h *CensusHandler) Submit(c *fiber.Ctx) error {
	if err := dropEmptyFormValues(c); err != nil {
		return badBody(c)
	}
	var in dto.CensusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	file, err := uploadedFile(c, ResponsivaField)
	if err != nil {
		return badBody(c)
	}
	out, err := h.uc.Submit(c.UserContext(), GetPrincipal(c), in, file)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// dropEmptyFormValues quita los campos multipart vacíos (empleado_id="" en formularios HTML)
// para que BodyParser los deje en su valor cero. El form queda cacheado en la petición.
func dropEmptyFormValues(c *fiber.Ctx) error {
	if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return err
	}
	for k, v := range form.Value {
		if len(v) == 0 || strings.TrimSpace(v[len(v)-1]) == "" {
			delete(form.Value, k)
		}
	}
	return nil
}

// uploadedFile lee el archivo del campo indicado si la petición es multipart (nil si no viene).
func uploadedFile(c *fiber.Ctx, field string) (*dto.UploadedFile, error) {
	if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return nil, nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}
	headers := form.File[field]
	if len(headers) == 0 {
		return nil, nil
	}
	fh := headers[0]
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &dto.UploadedFile{Filename: fh.Filename, ContentType: fh.Header.Get(fiber.HeaderContentType), Data: data}, nil
}

// ListRequests godoc
// @Summary      Listar solicitudes de censo
// @Tags         censo
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.EquipmentRequestListResponse
// @Router       /equipment-requests [get]
func (h *CensusHandler) ListRequests(c *fiber.Ctx) error {
	out, err := h.uc.ListRequests(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// MyRequests godoc
// @Summary      Mis últimas solicitudes de censo
// @Tags         censo
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.EquipmentRequestListResponse
// @Router       /equipment-requests/mine [get]
func (h *CensusHandler) MyRequests(c *fiber.Ctx) error {
	out, err := h.uc.MyRequests(c.UserContext(), GetPrincipal(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// ListEquipment godoc
// @Summary      Listar equipos
// @Description  El cliente ve los de su empresa; el personal interno ve todos.
// @Tags         equipos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.EquipmentListResponse
// @Router       /equipos [get]
// @Router       /admin/equipos [get]
func (h *CensusHandler) ListEquipment(c *fiber.Ctx) error {
	out, err := h.uc.ListEquipment(c.UserContext(), GetPrincipal(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// UpdateEquipment godoc
// @Summary      Editar datos de un equipo propio
// @Tags         equipos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                         true  "ID del equipo"
// @Param        body  body  dto.UpdateEquipmentRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.EquipmentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /equipos/{id} [put]
func (h *CensusHandler) UpdateEquipment(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, h.log, err)
	}
	var in dto.UpdateEquipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateEquipment(c.UserContext(), GetPrincipal(c), id, in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// ChangeStatus godoc
// @Summary      Cambiar estatus de un equipo
// @Description  pendiente → registrado → por instalar → instalacion programada → activo; rechazado desde cualquiera no activo.
// @Tags         equipos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                      true  "ID del equipo"
// @Param        body  body  dto.StatusChangeRequest  true  "Nuevo estatus"
// @Success      200   {object}  dto.EquipmentResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /admin/equipos/{id}/status [patch]
func (h *CensusHandler) ChangeStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, h.log, err)
	}
	var in dto.StatusChangeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Transition(c.UserContext(), id, in.Estatus)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// License godoc
// @Summary      Código de registro y licencia de un equipo
// @Tags         equipos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID del equipo"
// @Success      200  {object}  dto.LicenseResponse
// @Router       /equipos/{id}/licencia [get]
func (h *CensusHandler) License(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.License(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// ScheduleCensus godoc
// @Summary      Agendar instalación
// @Tags         agenda
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ScheduleCensusRequest  true  "Equipo y fecha"
// @Success      201   {object}  dto.AppointmentResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /agenda/programar-censo [post]
func (h *CensusHandler) ScheduleCensus(c *fiber.Ctx) error {
	var in dto.ScheduleCensusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.ScheduleCensus(c.UserContext(), GetPrincipal(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// VerifyCensus godoc
// @Summary      Verificar censo en sitio y activar equipo
// @Tags         agenda
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.VerifyCensusRequest  true  "Código de registro y licencia"
// @Success      200   {object}  dto.EquipmentResponse
// @Router       /agenda/verificar-censo [post]
func (h *CensusHandler) VerifyCensus(c *fiber.Ctx) error {
	var in dto.VerifyCensusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.VerifyCensus(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
