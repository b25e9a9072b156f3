package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/portal-rdp/internal/application/dto"
	"github.com/jhoicas/portal-rdp/internal/application/usecase"
	"github.com/jhoicas/portal-rdp/pkg/logger"
)

// CompanyHandler maneja empresas, sus usuarios y sus empleados.
type CompanyHandler struct {
	uc        *usecase.CompanyUseCase
	employees *usecase.EmployeeUseCase
	log       *logger.Logger
}

// NewCompanyHandler construye el handler inyectando los casos de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase, employees *usecase.EmployeeUseCase, log *logger.Logger) *CompanyHandler {
	return &CompanyHandler{uc: uc, employees: employees, log: log}
}

// Create godoc
// @Summary      Crear empresa
// @Tags         empresas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateCompanyRequest  true  "Datos de la empresa"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /empresas [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener empresa por ID
// @Tags         empresas
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /empresas/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar empresas
// @Tags         empresas
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.CompanyListResponse
// @Router       /empresas [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar empresa
// @Tags         empresas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                       true  "ID de la empresa"
// @Param        body  body  dto.UpdateCompanyRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /empresas/{id} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, h.log, err)
	}
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// CreateClientUser godoc
// @Summary      Crear usuario de empresa cliente
// @Tags         empresas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                          true  "ID de la empresa"
// @Param        body  body  dto.CreateClientUserRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.ClientUserResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /empresas/{id}/usuarios [post]
func (h *CompanyHandler) CreateClientUser(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, h.log, err)
	}
	var in dto.CreateClientUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateClientUser(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListEmployees godoc
// @Summary      Listar empleados
// @Description  El cliente ve los de su empresa; admin y rh deben indicar empresa_id.
// @Tags         empleados
// @Produce      json
// @Security     BearerAuth
// @Param        empresa_id  query  int  false  "Empresa (personal interno)"
// @Success      200  {object}  dto.EmployeeListResponse
// @Router       /empleados [get]
func (h *CompanyHandler) ListEmployees(c *fiber.Ctx) error {
	companyID, err := queryID(c, "empresa_id")
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.employees.List(c.UserContext(), GetPrincipal(c), companyID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// CreateEmployee godoc
// @Summary      Crear empleado
// @Tags         empleados
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.EmployeeRequest  true  "Datos del empleado"
// @Success      201   {object}  dto.EmployeeResponse
// @Router       /empleados [post]
func (h *CompanyHandler) CreateEmployee(c *fiber.Ctx) error {
	var in dto.EmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.employees.Create(c.UserContext(), GetPrincipal(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateEmployee godoc
// @Summary      Actualizar empleado
// @Tags         empleados
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                  true  "ID del empleado"
// @Param        body  body  dto.EmployeeRequest  true  "Datos del empleado"
// @Success      200   {object}  dto.EmployeeResponse
// @Router       /empleados/{id} [put]
func (h *CompanyHandler) UpdateEmployee(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, h.log, err)
	}
	var in dto.EmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.employees.Update(c.UserContext(), GetPrincipal(c), id, in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// DeleteEmployee godoc
// @Summary      Eliminar empleado
// @Tags         empleados
// @Security     BearerAuth
// @Param        id   path  int  true  "ID del empleado"
// @Success      204
// @Router       /empleados/{id} [delete]
func (h *CompanyHandler) DeleteEmployee(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, h.log, err)
	}
	if err := h.employees.Delete(c.UserContext(), GetPrincipal(c), id); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
