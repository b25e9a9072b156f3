package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/portal-rdp/internal/application/auth"
	"github.com/jhoicas/portal-rdp/internal/application/dto"
	"github.com/jhoicas/portal-rdp/internal/application/usecase"
	"github.com/jhoicas/portal-rdp/pkg/logger"
)

// AuthHandler maneja login y alta de personal interno.
type AuthHandler struct {
	uc    *auth.AuthUseCase
	users *usecase.UserUseCase
	log   *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, users *usecase.UserUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, users: users, log: log}
}

// Login godoc
// @Summary      Iniciar sesión (personal interno)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// LoginClient godoc
// @Summary      Iniciar sesión (usuario de empresa cliente)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /auth/login-client [post]
func (h *AuthHandler) LoginClient(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.LoginClient(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// ListUsers godoc
// @Summary      Listar personal interno
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.InternalUserListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /users [get]
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.users.List(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// CreateUser godoc
// @Summary      Crear usuario interno
// @Description  Contraseña de 4 a 8 caracteres con minúscula, mayúscula y dígito.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateInternalUserRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.InternalUserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /users [post]
func (h *AuthHandler) CreateUser(c *fiber.Ctx) error {
	var in dto.CreateInternalUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.users.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
